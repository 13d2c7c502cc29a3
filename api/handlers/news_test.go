package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"guardian-news-api/api/dto/responses"
	"guardian-news-api/core/domain"
	"guardian-news-api/core/errors"
	"guardian-news-api/core/loader"
	"guardian-news-api/core/news"
	"guardian-news-api/pkg/guardian"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = guardian.SearchParams{BaseURL: "https://content.guardianapis.com/", APIKey: "test"}

func TestNewsHandler_RegisterRoutes(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockFeedLoader{}, testDefaults, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	paths := api.OpenAPI().Paths
	require.Contains(t, paths, "/news")
	require.Contains(t, paths, "/news/refresh")
	require.Contains(t, paths, "/news/search")
	assert.NotNil(t, paths["/news"].Get)
	assert.NotNil(t, paths["/news/refresh"].Post)
	assert.NotNil(t, paths["/news/search"].Get)
}

func TestNewsHandler_GetNews(t *testing.T) {
	service := &mockNewsService{snapshot: news.Snapshot{
		State: loader.StateDelivered,
		Items: domain.FeedResult{
			domain.NewNewsItem("T", "S", "u", domain.WithAuthor("A B")),
			domain.NewNewsItem("T2", "S2", "u2", domain.WithPublishedAt("2024-05-01T10:00:00Z")),
		},
		UpdatedAt:  time.Now(),
		Generation: 2,
	}}
	handler := NewNewsHandler(service, &mockFeedLoader{}, testDefaults, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.NewsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "delivered", body.State)
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Items, 2)
	require.NotNil(t, body.Items[0].Author)
	assert.Equal(t, "A B", *body.Items[0].Author)
	assert.Nil(t, body.Items[0].Date)
	assert.Nil(t, body.Items[1].Author)
	assert.True(t, body.Items[1].HasDate)
	assert.Nil(t, body.Error)

	var raw struct {
		Items []map[string]interface{} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &raw))
	assert.NotContains(t, raw.Items[0], "date", "absent date is omitted")
	assert.NotContains(t, raw.Items[1], "author", "absent author is omitted")
}

func TestNewsHandler_GetNews_Failed(t *testing.T) {
	service := &mockNewsService{snapshot: news.Snapshot{
		State: loader.StateFailed,
		Items: domain.FeedResult{},
		Err:   &errors.BadStatusError{URL: "https://content.guardianapis.com/search", StatusCode: 401},
	}}
	handler := NewNewsHandler(service, &mockFeedLoader{}, testDefaults, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.NewsResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "failed", body.State)
	require.NotNil(t, body.Error)
	assert.Equal(t, 401, body.Error.UpstreamStatus)
	assert.Empty(t, body.Items)
}

func TestNewsHandler_RefreshNews(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		refresh       func() bool
		expectStarted bool
		expectReload  bool
	}{
		{name: "starts when idle", path: "/news/refresh", refresh: func() bool { return true }, expectStarted: true},
		{name: "refused while loading", path: "/news/refresh", refresh: func() bool { return false }, expectStarted: false},
		{name: "force reloads", path: "/news/refresh?force=true", refresh: func() bool { return false }, expectStarted: true, expectReload: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reloaded := false
			service := &mockNewsService{
				snapshot:    news.Snapshot{State: loader.StateLoading},
				refreshFunc: tt.refresh,
				reloadFunc: func() bool {
					reloaded = true
					return true
				},
			}
			handler := NewNewsHandler(service, &mockFeedLoader{}, testDefaults, nil)
			_, api := humatest.New(t)
			handler.RegisterRoutes(api)

			resp := api.Post(tt.path)
			require.Equal(t, http.StatusAccepted, resp.Code)

			var body responses.RefreshResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.expectStarted, body.Started)
			assert.Equal(t, "loading", body.State)
			assert.Equal(t, tt.expectReload, reloaded)
		})
	}
}

func TestNewsHandler_SearchNews(t *testing.T) {
	var requested string
	feedLoader := &mockFeedLoader{loadFunc: func(ctx context.Context, rawURL string) (domain.FeedResult, error) {
		requested = rawURL
		return domain.FeedResult{domain.NewNewsItem("T", "technology", "u")}, nil
	}}
	handler := NewNewsHandler(&mockNewsService{}, feedLoader, testDefaults, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/search?section=technology&q=golang&page-size=5&order-by=newest")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.SearchResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)

	u, err := url.Parse(requested)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/search", u.Path)
	assert.Equal(t, "test", q.Get("api-key"))
	assert.Equal(t, "contributor", q.Get("show-tags"))
	assert.Equal(t, "technology", q.Get("section"))
	assert.Equal(t, "golang", q.Get("q"))
	assert.Equal(t, "5", q.Get("page-size"))
	assert.Equal(t, "newest", q.Get("order-by"))
}

func TestNewsHandler_SearchNews_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"upstream 404", &errors.BadStatusError{StatusCode: 404}, http.StatusBadGateway},
		{"upstream 500", &errors.BadStatusError{StatusCode: 500}, http.StatusServiceUnavailable},
		{"upstream 429", &errors.BadStatusError{StatusCode: 429}, http.StatusTooManyRequests},
		{"network", &errors.IOFailureError{Op: "GET", Err: context.DeadlineExceeded}, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feedLoader := &mockFeedLoader{loadFunc: func(ctx context.Context, url string) (domain.FeedResult, error) {
				return nil, tt.err
			}}
			handler := NewNewsHandler(&mockNewsService{}, feedLoader, testDefaults, nil)
			_, api := humatest.New(t)
			handler.RegisterRoutes(api)

			resp := api.Get("/news/search")
			assert.Equal(t, tt.expectedStatus, resp.Code)
		})
	}
}

func TestNewsHandler_SearchNews_Validation(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockFeedLoader{}, testDefaults, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/search?order-by=random")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestNewsHandler_SearchNews_MisconfiguredDefaults(t *testing.T) {
	handler := NewNewsHandler(&mockNewsService{}, &mockFeedLoader{}, guardian.SearchParams{}, nil)
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/news/search")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(&mockNewsService{snapshot: news.Snapshot{State: loader.StateIdle}})
	_, api := humatest.New(t)
	handler.RegisterRoutes(api)

	resp := api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body responses.HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "idle", body.State)
}
