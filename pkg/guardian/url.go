// ABOUTME: Builds Guardian content API search URLs from configuration
// ABOUTME: The api-key travels as a query parameter; no other authentication is supported

package guardian

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"guardian-news-api/pkg/config"
)

// DefaultBaseURL is the public content API endpoint
const DefaultBaseURL = "https://content.guardianapis.com/"

// SearchParams describes one results page of the search endpoint
type SearchParams struct {
	BaseURL  string
	APIKey   string
	Section  string
	Query    string
	PageSize int
	OrderBy  string
}

// ParamsFromConfig copies the search parameters out of the application config
func ParamsFromConfig(cfg config.GuardianConfig) SearchParams {
	return SearchParams{
		BaseURL:  cfg.BaseURL,
		APIKey:   cfg.APIKey,
		Section:  cfg.Section,
		Query:    cfg.Query,
		PageSize: cfg.PageSize,
		OrderBy:  cfg.OrderBy,
	}
}

// SearchURL returns base + "search" with show-tags=contributor and the api key.
// Empty optional parameters are left out.
func SearchURL(p SearchParams) (string, error) {
	base := p.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q is not absolute", base)
	}
	if p.APIKey == "" {
		return "", fmt.Errorf("api key is required")
	}

	u = u.JoinPath("search")

	q := u.Query()
	q.Set("show-tags", "contributor")
	q.Set("api-key", p.APIKey)
	if p.Section != "" {
		q.Set("section", p.Section)
	}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.PageSize > 0 {
		q.Set("page-size", strconv.Itoa(p.PageSize))
	}
	if p.OrderBy != "" {
		q.Set("order-by", p.OrderBy)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
