// ABOUTME: Response DTOs for news endpoints
// ABOUTME: Absent author and date are omitted and flagged instead of sent as empty strings

package responses

import "time"

// NewsItemResponse represents one article in API responses
type NewsItemResponse struct {
	Title       string  `json:"title" doc:"Article headline"`
	SectionName string  `json:"sectionName" doc:"Section the article belongs to"`
	URL         string  `json:"url" doc:"Link to the article"`
	Author      *string `json:"author,omitempty" doc:"Contributor name, omitted when unknown"`
	Date        *string `json:"date,omitempty" doc:"Publication date as sent by the source, omitted when unknown"`
	HasAuthor   bool    `json:"hasAuthor" doc:"Whether an author is known"`
	HasDate     bool    `json:"hasDate" doc:"Whether a publication date is known"`
}

// FeedErrorResponse describes why the last load cycle failed
type FeedErrorResponse struct {
	Message        string `json:"message" doc:"Error message"`
	UpstreamStatus int    `json:"upstreamStatus,omitempty" doc:"Status returned by the news source, when it answered"`
}

// NewsResponse is the latest snapshot of the feed
type NewsResponse struct {
	State      string             `json:"state" enum:"idle,loading,delivered,failed" doc:"Loader state"`
	Items      []NewsItemResponse `json:"items" doc:"Articles from the last successful load, in source order"`
	Count      int                `json:"count" doc:"Number of articles"`
	Error      *FeedErrorResponse `json:"error,omitempty" doc:"Set when the last load failed"`
	UpdatedAt  *time.Time         `json:"updatedAt,omitempty" doc:"When the snapshot last changed"`
	Generation uint64             `json:"generation" doc:"Load cycle counter"`
}

// RefreshResponse reports whether a refresh was triggered
type RefreshResponse struct {
	Started bool   `json:"started" doc:"False when a load was already running"`
	State   string `json:"state" doc:"Loader state after the request"`
}

// SearchResponse holds the items of a one-off search
type SearchResponse struct {
	Items []NewsItemResponse `json:"items" doc:"Articles in source order"`
	Count int                `json:"count" doc:"Number of articles"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" example:"ok" doc:"Always ok while the server is up"`
	State  string `json:"state" doc:"Loader state"`
}
