//go:generate easyjson types.go

package server

// easyjson:json
type classifyResponse struct {
	Platform  string `json:"platform"`
	Supported bool   `json:"supported"`
}

// easyjson:json
type mediaResponse struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Platform     string `json:"platform"`
	IsAudio      bool   `json:"is_audio"`
	MimeType     string `json:"mime_type"`
	FileName     string `json:"file_name"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Duration     int64  `json:"duration,omitempty"`
}

// easyjson:json
type errorResponse struct {
	Kind      string `json:"kind"`
	Detail    string `json:"detail,omitempty"`
	Retryable bool   `json:"retryable"`
}
