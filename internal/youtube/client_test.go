package youtube

import (
	"testing"

	"google.golang.org/api/youtube/v3"
)

func TestToRecord(t *testing.T) {
	v := &youtube.Video{
		Id: "dQw4w9WgXcQ",
		Snippet: &youtube.VideoSnippet{
			Title:       "Some Video",
			Description: "A description",
			Tags:        []string{"one", "two"},
			PublishedAt: "2026-06-01T10:00:00Z",
			Thumbnails: &youtube.ThumbnailDetails{
				Medium: &youtube.Thumbnail{Url: "https://i.ytimg.com/med.jpg", Width: 320, Height: 180},
				Maxres: &youtube.Thumbnail{Url: "https://i.ytimg.com/max.jpg"},
			},
		},
		Statistics: &youtube.VideoStatistics{
			ViewCount:    12345,
			LikeCount:    678,
			CommentCount: 9,
		},
	}

	rec := ToRecord(v)

	if rec.ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q", rec.ID)
	}
	if rec.Snippet.Title != "Some Video" || rec.Snippet.Description != "A description" {
		t.Errorf("snippet not copied: %+v", rec.Snippet)
	}
	if len(rec.Snippet.Tags) != 2 {
		t.Errorf("tags = %v", rec.Snippet.Tags)
	}
	if rec.Statistics.ViewCount != "12345" || rec.Statistics.LikeCount != "678" || rec.Statistics.CommentCount != "9" {
		t.Errorf("statistics not stringified: %+v", rec.Statistics)
	}
	if rec.Snippet.Thumbnails.Maxres == nil || rec.Snippet.Thumbnails.Maxres.URL != "https://i.ytimg.com/max.jpg" {
		t.Errorf("maxres thumbnail missing: %+v", rec.Snippet.Thumbnails)
	}
	if rec.Snippet.Thumbnails.Default != nil {
		t.Error("default thumbnail should be nil")
	}
}

func TestToRecord_NilSubresources(t *testing.T) {
	rec := ToRecord(&youtube.Video{Id: "x"})

	if rec.Snippet.Title != "" || rec.Statistics.ViewCount != "" {
		t.Errorf("expected zero values, got %+v", rec)
	}
	if rec.Snippet.Thumbnails.Maxres != nil {
		t.Error("expected nil thumbnails")
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	if _, err := NewClient(t.Context(), ""); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
