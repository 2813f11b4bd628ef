// Package youtube wraps the YouTube Data API v3 calls the analysis pipeline
// depends on. Calls are strictly sequential with no retry policy; the first
// failure is returned to the caller.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/shadowmoulic/youtube-dashboard/internal/model"
)

// ErrNotFound is returned when the API reports no matching channel, playlist,
// or videos.
var ErrNotFound = errors.New("youtube: not found")

// Client is a read-only, API-key-authenticated YouTube Data API client.
type Client struct {
	svc *youtube.Service
}

// NewClient creates a client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("youtube: API key is required")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// SearchChannelID resolves a handle or legacy username to its canonical
// channel ID via a channel search, taking the top result.
func (c *Client) SearchChannelID(ctx context.Context, query string) (string, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Type("channel").
		Q(query).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapAPIError("search channels", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", fmt.Errorf("%w: no channel matches %q", ErrNotFound, query)
	}
	return resp.Items[0].Snippet.ChannelId, nil
}

// UploadsPlaylistID returns the ID of the channel's uploads playlist.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapAPIError("get channel details", err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("%w: channel %s", ErrNotFound, channelID)
	}
	details := resp.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil || details.RelatedPlaylists.Uploads == "" {
		return "", fmt.Errorf("%w: channel %s has no uploads playlist", ErrNotFound, channelID)
	}
	return details.RelatedPlaylists.Uploads, nil
}

// RecentUploads lists up to max items from an uploads playlist, newest first.
func (c *Client) RecentUploads(ctx context.Context, playlistID string, max int64) ([]*youtube.PlaylistItem, error) {
	resp, err := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(max).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("list uploads", err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("%w: playlist %s has no videos", ErrNotFound, playlistID)
	}
	return resp.Items, nil
}

// VideoRecords fetches snippet and statistics for the given video IDs and
// converts them into the boundary VideoRecord shape.
func (c *Client) VideoRecords(ctx context.Context, ids []string) ([]model.VideoRecord, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError("get video details", err)
	}

	records := make([]model.VideoRecord, 0, len(resp.Items))
	for _, v := range resp.Items {
		records = append(records, ToRecord(v))
	}
	return records, nil
}

// ToRecord converts an API video resource into the VideoRecord boundary
// shape, re-serializing counts as the decimal strings the wire format uses.
// Nil sub-resources become zero values, never panics.
func ToRecord(v *youtube.Video) model.VideoRecord {
	rec := model.VideoRecord{ID: v.Id}

	if s := v.Snippet; s != nil {
		rec.Snippet = model.Snippet{
			Title:       s.Title,
			Description: s.Description,
			Tags:        s.Tags,
			PublishedAt: s.PublishedAt,
			Thumbnails:  toThumbnails(s.Thumbnails),
		}
	}
	if st := v.Statistics; st != nil {
		rec.Statistics = model.Statistics{
			ViewCount:    strconv.FormatUint(st.ViewCount, 10),
			LikeCount:    strconv.FormatUint(st.LikeCount, 10),
			CommentCount: strconv.FormatUint(st.CommentCount, 10),
		}
	}
	return rec
}

func toThumbnails(t *youtube.ThumbnailDetails) model.Thumbnails {
	if t == nil {
		return model.Thumbnails{}
	}
	return model.Thumbnails{
		Default: toThumbnail(t.Default),
		Medium:  toThumbnail(t.Medium),
		High:    toThumbnail(t.High),
		Maxres:  toThumbnail(t.Maxres),
	}
}

func toThumbnail(t *youtube.Thumbnail) *model.Thumbnail {
	if t == nil {
		return nil
	}
	return &model.Thumbnail{URL: t.Url, Width: t.Width, Height: t.Height}
}

// wrapAPIError maps API-level 404s onto ErrNotFound and surfaces everything
// else verbatim.
func wrapAPIError(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
