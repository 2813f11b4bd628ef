package service

import (
	"testing"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
)

func record(id, title, viewCount, likeCount string) model.VideoRecord {
	return model.VideoRecord{
		ID: id,
		Snippet: model.Snippet{
			Title:       title,
			Description: "short",
		},
		Statistics: model.Statistics{ViewCount: viewCount, LikeCount: likeCount},
	}
}

func TestPerformanceScore_Formula(t *testing.T) {
	rec := record("a", "t", "1000", "20")

	// views*0.7 + (likes/views*100)*1000 + seoScore*10
	// = 700 + 2000 + 500 = 3200
	got := PerformanceScore(rec, 50)
	if got != 3200 {
		t.Errorf("PerformanceScore = %.2f, want 3200.00", got)
	}
}

func TestPerformanceScore_ZeroViews(t *testing.T) {
	rec := record("a", "t", "0", "100")

	// No division by zero; only the SEO component contributes.
	got := PerformanceScore(rec, 40)
	if got != 400 {
		t.Errorf("PerformanceScore = %.2f, want 400.00", got)
	}
}

func TestPerformanceScore_UnparsableCounts(t *testing.T) {
	rec := record("a", "t", "not-a-number", "")
	if got := PerformanceScore(rec, 0); got != 0 {
		t.Errorf("PerformanceScore = %.2f, want 0.00", got)
	}
}

func TestRankWorst_OrdersAscending(t *testing.T) {
	records := []model.VideoRecord{
		record("popular", "t", "100000", "5000"),
		record("flop", "t", "10", "0"),
		record("middling", "t", "2000", "30"),
	}

	ranked := RankWorst(records, 10)

	if len(ranked) != 3 {
		t.Fatalf("len = %d, want 3", len(ranked))
	}
	if ranked[0].ID != "flop" {
		t.Errorf("worst video = %q, want %q", ranked[0].ID, "flop")
	}
	if ranked[2].ID != "popular" {
		t.Errorf("best-of-worst video = %q, want %q", ranked[2].ID, "popular")
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].PerformanceScore > ranked[i].PerformanceScore {
			t.Errorf("ranking not ascending at %d: %.2f > %.2f",
				i, ranked[i-1].PerformanceScore, ranked[i].PerformanceScore)
		}
	}
}

func TestRankWorst_TruncatesToLimit(t *testing.T) {
	var records []model.VideoRecord
	for i := 0; i < 25; i++ {
		records = append(records, record("v", "t", "100", "1"))
	}

	if got := RankWorst(records, 10); len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
	if got := RankWorst(records, 0); len(got) != 25 {
		t.Errorf("limit 0 should keep all, got %d", len(got))
	}
}

func TestRankWorst_AttachesAnalysis(t *testing.T) {
	ranked := RankWorst([]model.VideoRecord{record("v", "tiny title", "0", "0")}, 1)

	if len(ranked) != 1 {
		t.Fatalf("len = %d, want 1", len(ranked))
	}
	a := ranked[0].Analysis
	if a.Score < 0 || a.Score > 100 {
		t.Errorf("score = %d, outside [0,100]", a.Score)
	}
	if len(a.Issues) == 0 {
		t.Error("expected issues for a weak video")
	}
}
