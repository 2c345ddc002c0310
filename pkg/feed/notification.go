package feed

import (
	"net/url"
	"strconv"
	"time"
)

// Well-known notification type strings declared by the service.
const (
	NoteComment     = "comment"
	NoteLike        = "like"
	NoteCommentLike = "comment_like"
	NoteFollow      = "follow"
	NoteMatcher     = "automattcher"
)

// Notification is one entry of the remote notification feed: an ordered
// tree of blocks split into subject, header, and body sections, plus
// feed-level metadata. It exclusively owns its blocks; each block holds
// a non-owning back-reference used for classification and for the
// override-change callback.
type Notification struct {
	ID        string
	Type      string
	Read      bool
	Timestamp time.Time // zero when missing or malformed
	Icon      *url.URL
	URL       *url.URL
	Title     string

	Subject []*Block
	Header  []*Block
	Body    []*Block

	meta Meta

	// overridesObserver is invoked whenever any owned block mutates its
	// local override state. Set by the container, nil by default.
	overridesObserver func(*Notification)
}

// ParseNotification builds a Notification from a raw feed payload. Like
// block construction it is total: malformed fields degrade to absent or
// zero values rather than failing.
func ParseNotification(payload Payload) *Notification {
	n := &Notification{
		Icon: urlValue(payload, "icon"),
		URL:  urlValue(payload, "url"),
	}
	if id, ok := stringValue(payload, "id"); ok {
		n.ID = id
	} else if id, ok := idValue(payload, "id"); ok {
		// Older feed endpoints send numeric ids.
		n.ID = strconv.FormatInt(id, 10)
	}
	n.Type, _ = stringValue(payload, "type")
	n.Read, _ = boolValue(payload, "read")
	n.Title, _ = stringValue(payload, "title")
	if ts, ok := stringValue(payload, "timestamp"); ok {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			n.Timestamp = parsed
		}
	}
	if rawMeta, ok := mapValue(payload, "meta"); ok {
		n.meta = parseMeta(rawMeta)
	}
	if raw, ok := listValue(payload, "subject"); ok {
		n.Subject = ParseBlocks(raw, n)
	} else {
		n.Subject = []*Block{}
	}
	if raw, ok := listValue(payload, "header"); ok {
		n.Header = ParseBlocks(raw, n)
	} else {
		n.Header = []*Block{}
	}
	if raw, ok := listValue(payload, "body"); ok {
		n.Body = ParseBlocks(raw, n)
	} else {
		n.Body = []*Block{}
	}
	return n
}

// ParseNotifications builds the ordered notification sequence from a
// raw feed response array, skipping entries that are not objects.
func ParseNotifications(raw []any) []*Notification {
	notes := make([]*Notification, 0, len(raw))
	for _, entry := range raw {
		payload, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		notes = append(notes, ParseNotification(payload))
	}
	return notes
}

// Meta returns the notification's own parsed meta.
func (n *Notification) Meta() Meta { return n.meta }

// MetaCommentID returns the comment id from the notification's own
// meta, if any. Block classification reads it to detect the block that
// renders the comment body.
func (n *Notification) MetaCommentID() (int64, bool) {
	if n == nil || n.meta.IDs.Comment == nil {
		return 0, false
	}
	return *n.meta.IDs.Comment, true
}

// IsComment reports whether the notification is about a comment.
func (n *Notification) IsComment() bool { return n.Type == NoteComment }

// IsLike reports whether the notification is a post like.
func (n *Notification) IsLike() bool { return n.Type == NoteLike }

// IsCommentLike reports whether the notification is a comment like.
func (n *Notification) IsCommentLike() bool { return n.Type == NoteCommentLike }

// IsFollow reports whether the notification is a new follower.
func (n *Notification) IsFollow() bool { return n.Type == NoteFollow }

// IsMatcher reports whether the notification came from a keyword
// matcher subscription.
func (n *Notification) IsMatcher() bool { return n.Type == NoteMatcher }

// MarkRead marks the notification as read.
func (n *Notification) MarkRead() { n.Read = true }

// SetOverridesObserver installs the callback invoked whenever any owned
// block mutates its override state. Passing nil removes the callback.
func (n *Notification) SetOverridesObserver(fn func(*Notification)) {
	n.overridesObserver = fn
}

// didChangeOverrides delivers a block's override mutation to the
// registered observer. Called by owned blocks only.
func (n *Notification) didChangeOverrides() {
	if n.overridesObserver != nil {
		n.overridesObserver(n)
	}
}

// Equal reports whether two notifications refer to the same feed entry:
// by id when both carry one, by identity otherwise.
func (n *Notification) Equal(other *Notification) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.ID != "" && other.ID != "" {
		return n.ID == other.ID
	}
	return n == other
}
