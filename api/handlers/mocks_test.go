package handlers

import (
	"context"

	"guardian-news-api/core/domain"
	"guardian-news-api/core/loader"
	"guardian-news-api/core/news"
)

type mockNewsService struct {
	snapshot    news.Snapshot
	refreshFunc func() bool
	reloadFunc  func() bool
}

func (m *mockNewsService) Snapshot() news.Snapshot {
	return m.snapshot
}

func (m *mockNewsService) Refresh() bool {
	if m.refreshFunc != nil {
		return m.refreshFunc()
	}
	m.snapshot.State = loader.StateLoading
	return true
}

func (m *mockNewsService) Reload() bool {
	if m.reloadFunc != nil {
		return m.reloadFunc()
	}
	m.snapshot.State = loader.StateLoading
	return true
}

type mockFeedLoader struct {
	loadFunc func(ctx context.Context, url string) (domain.FeedResult, error)
}

func (m *mockFeedLoader) Load(ctx context.Context, url string) (domain.FeedResult, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, url)
	}
	return domain.FeedResult{}, nil
}
