// ABOUTME: News handlers for the Huma API
// ABOUTME: Serves the current snapshot, triggers refreshes and runs one-off searches

package handlers

import (
	"context"
	"net/http"

	"guardian-news-api/api/dto/mappers"
	"guardian-news-api/api/dto/responses"
	"guardian-news-api/core/domain"
	"guardian-news-api/core/errors"
	"guardian-news-api/core/interfaces"
	"guardian-news-api/core/news"
	"guardian-news-api/pkg/guardian"

	"github.com/danielgtaylor/huma/v2"
)

// NewsService is the part of news.Service the handlers use
type NewsService interface {
	Snapshot() news.Snapshot
	Refresh() bool
	Reload() bool
}

// FeedLoader performs a synchronous one-shot load
type FeedLoader interface {
	Load(ctx context.Context, url string) (domain.FeedResult, error)
}

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	service  NewsService
	loader   FeedLoader
	defaults guardian.SearchParams
	logger   interfaces.Logger
}

// NewNewsHandler creates a new news handler. defaults supplies the base URL
// and api key for searches.
func NewNewsHandler(service NewsService, loader FeedLoader, defaults guardian.SearchParams, logger interfaces.Logger) *NewsHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &NewsHandler{
		service:  service,
		loader:   loader,
		defaults: defaults,
		logger:   logger,
	}
}

// RegisterRoutes registers all news-related routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getNews",
		Method:      http.MethodGet,
		Path:        "/news",
		Summary:     "Get the latest news",
		Description: "Returns the most recent snapshot of the configured feed. Items from the last successful load stay visible while a refresh runs or after it fails.",
		Tags:        []string{"News"},
	}, h.GetNews)

	huma.Register(api, huma.Operation{
		OperationID:   "refreshNews",
		Method:        http.MethodPost,
		Path:          "/news/refresh",
		Summary:       "Refresh the news",
		Description:   "Starts a background load. Without force the request is ignored while a load is already running.",
		Tags:          []string{"News"},
		DefaultStatus: http.StatusAccepted,
	}, h.RefreshNews)

	huma.Register(api, huma.Operation{
		OperationID: "searchNews",
		Method:      http.MethodGet,
		Path:        "/news/search",
		Summary:     "Search the news",
		Description: "Loads one page of search results synchronously without touching the snapshot",
		Tags:        []string{"News"},
	}, h.SearchNews)
}

// NewsOutput defines the output for the GetNews operation
type NewsOutput struct {
	Body *responses.NewsResponse
}

// GetNews handles the GET /news endpoint
func (h *NewsHandler) GetNews(ctx context.Context, input *struct{}) (*NewsOutput, error) {
	return &NewsOutput{Body: mappers.ToNewsResponse(h.service.Snapshot())}, nil
}

// RefreshInput defines the input for the RefreshNews operation
type RefreshInput struct {
	Force bool `query:"force" doc:"Abandon a running load and start over"`
}

// RefreshOutput defines the output for the RefreshNews operation
type RefreshOutput struct {
	Body responses.RefreshResponse
}

// RefreshNews handles the POST /news/refresh endpoint
func (h *NewsHandler) RefreshNews(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	var started bool
	if input.Force {
		started = h.service.Reload()
	} else {
		started = h.service.Refresh()
	}

	h.logger.Debug("Refresh requested", map[string]interface{}{
		"force":   input.Force,
		"started": started,
	})

	return &RefreshOutput{Body: responses.RefreshResponse{
		Started: started,
		State:   h.service.Snapshot().State.String(),
	}}, nil
}

// SearchInput defines the input for the SearchNews operation
type SearchInput struct {
	Section  string `query:"section" doc:"Section id, e.g. technology"`
	Query    string `query:"q" doc:"Free text query"`
	PageSize int    `query:"page-size" minimum:"1" maximum:"200" doc:"Results per page"`
	OrderBy  string `query:"order-by" enum:"newest,oldest,relevance" doc:"Result ordering"`
}

// SearchOutput defines the output for the SearchNews operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// SearchNews handles the GET /news/search endpoint
func (h *NewsHandler) SearchNews(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	params := h.defaults
	if input.Section != "" {
		params.Section = input.Section
	}
	if input.Query != "" {
		params.Query = input.Query
	}
	if input.PageSize > 0 {
		params.PageSize = input.PageSize
	}
	if input.OrderBy != "" {
		params.OrderBy = input.OrderBy
	}

	url, err := guardian.SearchURL(params)
	if err != nil {
		return nil, toHumaError(&errors.InvalidURLError{Reason: err.Error(), Err: err})
	}

	result, err := h.loader.Load(ctx, url)
	if err != nil {
		h.logger.Warn("Search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: responses.SearchResponse{
		Items: mappers.ToNewsItemsResponse(result),
		Count: result.Len(),
	}}, nil
}
