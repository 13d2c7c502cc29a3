// ABOUTME: Mappers for converting news domain values to API DTOs
// ABOUTME: Keeps the absent/present distinction of author and date visible to clients

package mappers

import (
	"guardian-news-api/api/dto/responses"
	"guardian-news-api/core/domain"
	coreerrors "guardian-news-api/core/errors"
	"guardian-news-api/core/news"
)

// ToNewsItemResponse converts a domain NewsItem to a NewsItemResponse DTO
func ToNewsItemResponse(item domain.NewsItem) responses.NewsItemResponse {
	resp := responses.NewsItemResponse{
		Title:       item.Title(),
		SectionName: item.SectionName(),
		URL:         item.URL(),
		HasAuthor:   item.HasAuthor(),
		HasDate:     item.HasDate(),
	}
	if author, ok := item.Author(); ok {
		resp.Author = &author
	}
	if date, ok := item.PublishedAt(); ok {
		resp.Date = &date
	}
	return resp
}

// ToNewsItemsResponse converts a FeedResult, never returning nil
func ToNewsItemsResponse(result domain.FeedResult) []responses.NewsItemResponse {
	items := make([]responses.NewsItemResponse, 0, len(result))
	for _, item := range result {
		items = append(items, ToNewsItemResponse(item))
	}
	return items
}

// ToNewsResponse converts a service snapshot to a NewsResponse DTO
func ToNewsResponse(snap news.Snapshot) *responses.NewsResponse {
	resp := &responses.NewsResponse{
		State:      snap.State.String(),
		Items:      ToNewsItemsResponse(snap.Items),
		Count:      snap.Items.Len(),
		Generation: snap.Generation,
	}
	if !snap.UpdatedAt.IsZero() {
		updated := snap.UpdatedAt
		resp.UpdatedAt = &updated
	}
	if snap.Err != nil {
		resp.Error = &responses.FeedErrorResponse{
			Message:        snap.Err.Error(),
			UpstreamStatus: coreerrors.StatusCode(snap.Err),
		}
	}
	return resp
}
