package feed

import "net/url"

// RangeKind identifies what a styled sub-span of block text points at.
// Unknown server kinds are preserved verbatim.
type RangeKind string

const (
	RangeLink    RangeKind = "link"
	RangeUser    RangeKind = "user"
	RangePost    RangeKind = "post"
	RangeComment RangeKind = "comment"
	RangeSite    RangeKind = "site"
)

// Range is a styled sub-span of a block's text, optionally linking to a
// URL or to one of the entities referenced by the notification.
type Range struct {
	Kind      RangeKind
	URL       *url.URL // nil when missing or unparseable
	SiteID    *int64
	PostID    *int64
	CommentID *int64
	UserID    *int64
	Start     int
	End       int
}

func parseRange(raw map[string]any) Range {
	r := Range{
		Kind: RangeLink, // spans without an explicit type are plain links
		URL:  urlValue(raw, "url"),
	}
	if kind, ok := stringValue(raw, "type"); ok {
		r.Kind = RangeKind(kind)
	}
	if id, ok := idValue(raw, "site_id"); ok {
		r.SiteID = &id
	}
	if id, ok := idValue(raw, "post_id"); ok {
		r.PostID = &id
	}
	if id, ok := idValue(raw, "id"); ok && r.Kind == RangeComment {
		r.CommentID = &id
	}
	if id, ok := idValue(raw, "id"); ok && r.Kind == RangeUser {
		r.UserID = &id
	}
	if indices, ok := listValue(raw, "indices"); ok && len(indices) == 2 {
		if start, ok := toInt(indices[0]); ok {
			r.Start = start
		}
		if end, ok := toInt(indices[1]); ok {
			r.End = end
		}
	}
	return r
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}

// ParseRangeList parses the raw "ranges" array of a block payload.
// Entries that are not objects are skipped. Missing or empty input
// yields an empty slice, never an error.
func ParseRangeList(raw []any) []Range {
	ranges := make([]Range, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		ranges = append(ranges, parseRange(m))
	}
	return ranges
}
