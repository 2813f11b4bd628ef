package report

import (
	"bytes"
	"testing"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
)

func sampleResponse(videoCount int) *model.AnalysisResponse {
	videos := make([]model.AnalyzedVideo, 0, videoCount)
	for i := 0; i < videoCount; i++ {
		videos = append(videos, model.AnalyzedVideo{
			VideoRecord: model.VideoRecord{
				ID: "vid",
				Snippet: model.Snippet{
					Title:       "How to Tune Garbage Collection in Production",
					Description: "short",
				},
				Statistics: model.Statistics{
					ViewCount:    "15000",
					LikeCount:    "300",
					CommentCount: "12",
				},
			},
			Analysis: model.ScoreResult{
				Score:  62,
				Issues: []string{"Description too short (5 chars)"},
				SpecificActions: []model.Action{
					{
						Type:        model.ActionDescription,
						Issue:       "Description too short (5 chars)",
						Current:     "short",
						Recommended: "Write 200+ characters with keywords, timestamps, and links",
					},
					{
						Type:  model.ActionTags,
						Issue: "Only 0 tags (aim for 10-15)",
					},
				},
			},
			PerformanceScore: 11340,
		})
	}
	return &model.AnalysisResponse{
		ChannelID:        "UC0123456789abcdefABCDEF",
		VideosConsidered: videoCount,
		Videos:           videos,
	}
}

func TestGenerate_ProducesPDF(t *testing.T) {
	pdf, err := Generate(sampleResponse(3), model.Lead{Name: "Ada Lovelace", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header")
	}
	if len(pdf) < 1000 {
		t.Errorf("output suspiciously small: %d bytes", len(pdf))
	}
}

func TestGenerate_ManyVideosPaginates(t *testing.T) {
	small, err := Generate(sampleResponse(1), model.Lead{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Generate small: %v", err)
	}
	large, err := Generate(sampleResponse(20), model.Lead{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Generate large: %v", err)
	}
	if len(large) <= len(small) {
		t.Errorf("20-video report (%d bytes) should be larger than 1-video report (%d bytes)", len(large), len(small))
	}
}

func TestGenerate_NoVideos(t *testing.T) {
	pdf, err := Generate(sampleResponse(0), model.Lead{Name: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("empty analysis should still render a valid document")
	}
}

func TestScoreColor(t *testing.T) {
	tests := []struct {
		score int
		want  rgb
	}{
		{100, green},
		{75, green},
		{74, orange},
		{50, orange},
		{49, red},
		{0, red},
	}
	for _, tt := range tests {
		if got := scoreColor(tt.score); got != tt.want {
			t.Errorf("scoreColor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{80, "Excellent Performance"},
		{60, "Needs Improvement"},
		{30, "Critical Issues Detected"},
	}
	for _, tt := range tests {
		if got := scoreLabel(tt.score); got != tt.want {
			t.Errorf("scoreLabel(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAverageScore(t *testing.T) {
	videos := []model.AnalyzedVideo{
		{Analysis: model.ScoreResult{Score: 60}},
		{Analysis: model.ScoreResult{Score: 71}},
	}
	if got := averageScore(videos); got != 66 {
		t.Errorf("averageScore = %d, want 66", got)
	}
	if got := averageScore(nil); got != 0 {
		t.Errorf("averageScore(nil) = %d, want 0", got)
	}
}
