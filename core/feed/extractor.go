// ABOUTME: Feed extractor walks a news search response and builds NewsItem values
// ABOUTME: Absorbs malformed JSON and per-record gaps so callers always get a result

package feed

import (
	"bytes"
	"encoding/json"
	"errors"

	"guardian-news-api/core/domain"
	coreerrors "guardian-news-api/core/errors"
	"guardian-news-api/core/interfaces"
)

// Extractor converts response bodies of the shape
//
//	{"response": {"results": [{"webTitle", "sectionName", "webUrl", "webPublicationDate"?, "tags"?}]}}
//
// into a FeedResult. Malformed JSON yields an empty result rather than an
// error, while fetch failures upstream fail the whole load cycle. Consumers
// cannot tell "bad JSON" from "zero articles"; this mirrors the behavior the
// feed has always had.
type Extractor struct {
	logger interfaces.Logger
}

// NewExtractor creates an extractor. A nil logger discards output.
func NewExtractor(logger interfaces.Logger) *Extractor {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Extractor{logger: logger}
}

// jsonObject keeps values raw so each field is decoded on its own
type jsonObject map[string]json.RawMessage

// Extract returns the items found in body, in array order
func (e *Extractor) Extract(body []byte) domain.FeedResult {
	if len(bytes.TrimSpace(body)) == 0 {
		return domain.FeedResult{}
	}

	results, err := decodeResults(body)
	if err != nil {
		e.logger.Error("Problem parsing the news JSON results", map[string]interface{}{
			"error": err.Error(),
		})
		return domain.FeedResult{}
	}

	items := make(domain.FeedResult, 0, len(results))
	for i, raw := range results {
		item, err := extractItem(i, raw)
		if err != nil {
			e.logger.Debug("Skipping news record", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		items = append(items, item)
	}

	if skipped := len(results) - len(items); skipped > 0 {
		e.logger.Warn("Skipped incomplete news records", map[string]interface{}{
			"skipped": skipped,
			"kept":    len(items),
		})
	}

	return items
}

// decodeResults returns the raw elements of response.results
func decodeResults(body []byte) ([]json.RawMessage, error) {
	var root jsonObject
	if err := json.Unmarshal(body, &root); err != nil {
		return nil, &coreerrors.MalformedJSONError{Err: err}
	}

	response, ok := objectField(root, "response")
	if !ok {
		return nil, &coreerrors.MalformedJSONError{Path: "response", Err: errors.New("missing or not an object")}
	}

	results, ok := arrayField(response, "results")
	if !ok {
		return nil, &coreerrors.MalformedJSONError{Path: "response.results", Err: errors.New("missing or not an array")}
	}

	return results, nil
}

// extractItem builds one NewsItem or reports why the record was skipped
func extractItem(index int, raw json.RawMessage) (domain.NewsItem, error) {
	obj, ok := asObject(raw)
	if !ok {
		return domain.NewsItem{}, &coreerrors.RecordSkippedError{Index: index}
	}

	title, ok := stringField(obj, "webTitle")
	if !ok {
		return domain.NewsItem{}, &coreerrors.RecordSkippedError{Index: index, Field: "webTitle"}
	}
	section, ok := stringField(obj, "sectionName")
	if !ok {
		return domain.NewsItem{}, &coreerrors.RecordSkippedError{Index: index, Field: "sectionName"}
	}
	link, ok := stringField(obj, "webUrl")
	if !ok {
		return domain.NewsItem{}, &coreerrors.RecordSkippedError{Index: index, Field: "webUrl"}
	}

	var opts []domain.NewsItemOption
	if date, ok := stringField(obj, "webPublicationDate"); ok {
		opts = append(opts, domain.WithPublishedAt(date))
	}
	if author, ok := resolveAuthor(obj); ok {
		opts = append(opts, domain.WithAuthor(author))
	}

	return domain.NewNewsItem(title, section, link, opts...), nil
}

// resolveAuthor looks at the first tag only: its webTitle wins, then
// "firstName lastName" when both are present
func resolveAuthor(obj jsonObject) (string, bool) {
	tags, ok := arrayField(obj, "tags")
	if !ok || len(tags) == 0 {
		return "", false
	}

	tag, ok := asObject(tags[0])
	if !ok {
		return "", false
	}

	if name, ok := stringField(tag, "webTitle"); ok {
		return name, true
	}

	first, hasFirst := stringField(tag, "firstName")
	last, hasLast := stringField(tag, "lastName")
	if hasFirst && hasLast {
		return first + " " + last, true
	}

	return "", false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func asObject(raw json.RawMessage) (jsonObject, bool) {
	if isNull(raw) {
		return nil, false
	}
	var obj jsonObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func objectField(obj jsonObject, key string) (jsonObject, bool) {
	raw, ok := obj[key]
	if !ok {
		return nil, false
	}
	return asObject(raw)
}

func arrayField(obj jsonObject, key string) ([]json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, false
	}
	return arr, true
}

// stringField reports a value only when the key holds a JSON string
func stringField(obj jsonObject, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
