// ABOUTME: NewsItem domain model represents one article extracted from a news search response
// ABOUTME: Optional author and date are tracked explicitly instead of through sentinel strings

package domain

// NewsItem is an immutable article value. Build it with NewNewsItem.
type NewsItem struct {
	title       string
	sectionName string
	url         string

	author    string
	hasAuthor bool

	publishedAt string
	hasDate     bool
}

// NewsItemOption sets an optional field on a NewsItem under construction
type NewsItemOption func(*NewsItem)

// WithAuthor sets the resolved author name
func WithAuthor(name string) NewsItemOption {
	return func(n *NewsItem) {
		n.author = name
		n.hasAuthor = true
	}
}

// WithPublishedAt sets the raw publication date string
func WithPublishedAt(date string) NewsItemOption {
	return func(n *NewsItem) {
		n.publishedAt = date
		n.hasDate = true
	}
}

// NewNewsItem creates a NewsItem from its required fields and any optional ones.
// Fields not supplied through options are absent.
func NewNewsItem(title, sectionName, url string, opts ...NewsItemOption) NewsItem {
	n := NewsItem{
		title:       title,
		sectionName: sectionName,
		url:         url,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// Title returns the article headline
func (n NewsItem) Title() string {
	return n.title
}

// SectionName returns the section the article belongs to
func (n NewsItem) SectionName() string {
	return n.sectionName
}

// URL returns the link to the article
func (n NewsItem) URL() string {
	return n.url
}

// Author returns the author name and whether one is known
func (n NewsItem) Author() (string, bool) {
	return n.author, n.hasAuthor
}

// PublishedAt returns the raw publication date and whether one is known
func (n NewsItem) PublishedAt() (string, bool) {
	return n.publishedAt, n.hasDate
}

// HasAuthor reports whether the author is known
func (n NewsItem) HasAuthor() bool {
	return n.hasAuthor
}

// HasDate reports whether the publication date is known
func (n NewsItem) HasDate() bool {
	return n.hasDate
}

// FeedResult is an ordered sequence of news items in source order.
// An empty FeedResult is a successful load with zero articles.
type FeedResult []NewsItem

// Len returns the number of items
func (r FeedResult) Len() int {
	return len(r)
}

// WithAuthors returns the number of items that have a known author
func (r FeedResult) WithAuthors() int {
	count := 0
	for _, item := range r {
		if item.HasAuthor() {
			count++
		}
	}
	return count
}
