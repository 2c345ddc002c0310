package feed

import "net/url"

// MediaKind identifies what kind of asset a media entry is. Kinds other
// than the well-known ones are preserved verbatim so callers can still
// distinguish them.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaBadge MediaKind = "badge"
)

// Media is an image, badge, or other asset attached to a block.
type Media struct {
	Kind   MediaKind
	URL    *url.URL // nil when missing or unparseable
	Width  int
	Height int
}

// IsImage reports whether the media entry is an image.
func (m Media) IsImage() bool { return m.Kind == MediaImage }

// IsBadge reports whether the media entry is a badge.
func (m Media) IsBadge() bool { return m.Kind == MediaBadge }

func parseMedia(raw map[string]any) Media {
	m := Media{URL: urlValue(raw, "url")}
	if kind, ok := stringValue(raw, "type"); ok {
		m.Kind = MediaKind(kind)
	}
	if w, ok := idValue(raw, "width"); ok {
		m.Width = int(w)
	}
	if h, ok := idValue(raw, "height"); ok {
		m.Height = int(h)
	}
	return m
}

// ParseMediaList parses the raw "media" array of a block payload.
// Entries that are not objects are skipped. Missing or empty input
// yields an empty slice, never an error.
func ParseMediaList(raw []any) []Media {
	media := make([]Media, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		media = append(media, parseMedia(m))
	}
	return media
}
