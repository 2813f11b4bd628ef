package model

// VideoRecord mirrors the public YouTube Data API video resource
// (part=snippet,statistics). The shape is a boundary contract and must stay
// compatible with that REST response: statistics counts arrive as decimal
// strings and may be absent entirely.
type VideoRecord struct {
	ID         string     `json:"id,omitempty"`
	Snippet    Snippet    `json:"snippet"`
	Statistics Statistics `json:"statistics"`
}

// Snippet holds the video metadata fields the scoring engine reads.
type Snippet struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags,omitempty"`
	PublishedAt string     `json:"publishedAt"`
	Thumbnails  Thumbnails `json:"thumbnails"`
}

// Thumbnails lists the available thumbnail renditions. Maxres is only set
// when the channel uploaded a high-resolution custom thumbnail.
type Thumbnails struct {
	Default *Thumbnail `json:"default,omitempty"`
	Medium  *Thumbnail `json:"medium,omitempty"`
	High    *Thumbnail `json:"high,omitempty"`
	Maxres  *Thumbnail `json:"maxres,omitempty"`
}

// Thumbnail is a single thumbnail rendition.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int64  `json:"width,omitempty"`
	Height int64  `json:"height,omitempty"`
}

// Statistics holds view/like/comment counts as returned on the wire.
// Empty or unparsable values are treated as 0 by the scoring engine.
type Statistics struct {
	ViewCount    string `json:"viewCount,omitempty"`
	LikeCount    string `json:"likeCount,omitempty"`
	CommentCount string `json:"commentCount,omitempty"`
}
