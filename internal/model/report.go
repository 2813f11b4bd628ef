package model

// Lead identifies who a generated report is prepared for.
type Lead struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReportRequest is the API request body for generating a PDF report.
type ReportRequest struct {
	Channel   string `json:"channel"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	MaxVideos int    `json:"maxVideos,omitempty"`
}
