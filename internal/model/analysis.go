package model

// AnalyzedVideo pairs a video record with its scoring outcome and the
// composite performance score used for worst-first ranking.
type AnalyzedVideo struct {
	VideoRecord
	Analysis         ScoreResult `json:"analysis"`
	PerformanceScore float64     `json:"performanceScore"`
}

// AnalysisResponse is the API response for a channel analysis run.
type AnalysisResponse struct {
	ChannelID        string            `json:"channelId"`
	Identifier       ChannelIdentifier `json:"identifier"`
	VideosConsidered int               `json:"videosConsidered"`
	Videos           []AnalyzedVideo   `json:"videos"`
	GeneratedAt      string            `json:"generatedAt"`
	Cached           bool              `json:"cached"`
}
