package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
	"github.com/shadowmoulic/youtube-dashboard/internal/resolver"
	"github.com/shadowmoulic/youtube-dashboard/internal/seo"
	"github.com/shadowmoulic/youtube-dashboard/internal/youtube"
)

// ErrInvalidIdentifier is returned when the input string cannot be classified
// as any known channel reference format.
var ErrInvalidIdentifier = errors.New("invalid channel identifier")

// ErrNoRecentVideos is returned when the channel has no uploads inside the
// analysis window.
var ErrNoRecentVideos = errors.New("no videos in the analysis window")

const (
	// DefaultMaxVideos is how many worst performers an analysis returns
	// when the caller does not ask for a specific count.
	DefaultMaxVideos = 10

	uploadFetchLimit     = 50
	analysisWindowMonths = 3
)

// AnalysisService runs the full channel analysis pipeline: resolve input,
// fetch recent uploads, score every video, rank worst-first. The chain is
// strictly sequential and the first failure aborts the run.
type AnalysisService struct {
	yt    *youtube.Client
	cache *CacheService
	now   func() time.Time
}

func NewAnalysisService(yt *youtube.Client, cache *CacheService) *AnalysisService {
	return &AnalysisService{yt: yt, cache: cache, now: time.Now}
}

// Analyze resolves input to a channel, fetches its uploads from the last
// three months, scores each one, and returns the maxVideos worst performers.
func (s *AnalysisService) Analyze(ctx context.Context, input string, maxVideos int) (*model.AnalysisResponse, error) {
	if maxVideos <= 0 {
		maxVideos = DefaultMaxVideos
	}

	ident := resolver.Resolve(input)
	if ident == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, input)
	}

	channelID := ident.Value
	if ident.Kind != model.KindID {
		id, err := s.yt.SearchChannelID(ctx, ident.Value)
		if err != nil {
			return nil, err
		}
		channelID = id
	}

	if cached := s.cachedResponse(ctx, channelID, maxVideos); cached != nil {
		return cached, nil
	}

	playlistID, err := s.yt.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	items, err := s.yt.RecentUploads(ctx, playlistID, uploadFetchLimit)
	if err != nil {
		return nil, err
	}

	cutoff := s.now().AddDate(0, -analysisWindowMonths, 0)
	var ids []string
	for _, it := range items {
		if it.Snippet == nil || it.Snippet.ResourceId == nil {
			continue
		}
		published, err := time.Parse(time.RFC3339, it.Snippet.PublishedAt)
		if err != nil || published.Before(cutoff) {
			continue
		}
		ids = append(ids, it.Snippet.ResourceId.VideoId)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: channel %s", ErrNoRecentVideos, channelID)
	}

	records, err := s.yt.VideoRecords(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: channel %s", ErrNoRecentVideos, channelID)
	}

	resp := &model.AnalysisResponse{
		ChannelID:        channelID,
		Identifier:       *ident,
		VideosConsidered: len(records),
		Videos:           RankWorst(records, maxVideos),
		GeneratedAt:      s.now().UTC().Format(time.RFC3339),
	}

	if s.cache != nil {
		if err := s.cache.SetAnalysis(ctx, channelID, maxVideos, resp); err != nil {
			log.Printf("cache: analysis set error: %v", err)
		}
	}
	return resp, nil
}

func (s *AnalysisService) cachedResponse(ctx context.Context, channelID string, maxVideos int) *model.AnalysisResponse {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.GetAnalysis(ctx, channelID, maxVideos)
	if err != nil {
		log.Printf("cache: analysis get error: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var resp model.AnalysisResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	resp.Cached = true
	return &resp
}

// RankWorst scores every record and returns the limit lowest performers,
// ordered worst-first by composite performance score.
func RankWorst(records []model.VideoRecord, limit int) []model.AnalyzedVideo {
	out := make([]model.AnalyzedVideo, 0, len(records))
	for _, rec := range records {
		analysis := seo.Analyze(rec)
		out = append(out, model.AnalyzedVideo{
			VideoRecord:      rec,
			Analysis:         analysis,
			PerformanceScore: PerformanceScore(rec, analysis.Score),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PerformanceScore < out[j].PerformanceScore
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// PerformanceScore blends raw reach, engagement, and SEO health into a single
// ranking value. Lower means worse performing:
//
//	performance = views*0.7 + engagementRate*1000 + seoScore*10
//
// where engagementRate is likes/views as a percentage (0 for zero views).
func PerformanceScore(rec model.VideoRecord, seoScore int) float64 {
	views := seo.Count(rec.Statistics.ViewCount)
	likes := seo.Count(rec.Statistics.LikeCount)

	var engagementRate float64
	if views > 0 {
		engagementRate = float64(likes) / float64(views) * 100
	}
	return float64(views)*0.7 + engagementRate*1000 + float64(seoScore)*10
}
