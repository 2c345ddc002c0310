package feed

import "net/url"

// BlockKind classifies a block for rendering purposes. Classification is
// a heuristic over loosely typed server data: the most specific signal
// wins, falling back to plain text.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockImage
	BlockUser
	BlockComment
)

func (k BlockKind) String() string {
	switch k {
	case BlockImage:
		return "image"
	case BlockUser:
		return "user"
	case BlockComment:
		return "comment"
	default:
		return "text"
	}
}

// Block is one structured unit of a notification's body: a piece of
// text plus its attached media, styled ranges, and actionable state.
//
// Media, ranges, and the parsed fields are immutable after construction.
// The only mutable state is the text override, the action overrides, and
// the attribute cache; override writes notify the owning notification so
// the UI layer can react to optimistic state changes. A Block is not
// safe for concurrent use; the caller serializes access.
type Block struct {
	text    string
	hasText bool
	rawType string
	media   []Media
	ranges  []Range
	actions map[string]bool
	meta    Meta
	parent  *Notification // non-owning back-reference

	textOverride    *string
	actionsOverride map[Action]bool
	attributeCache  map[string]any
}

// newBlock builds a Block from a raw payload. It is total: any missing
// or malformed field degrades to absent or empty rather than failing.
func newBlock(payload Payload, parent *Notification) *Block {
	b := &Block{parent: parent}
	b.text, b.hasText = stringValue(payload, "text")
	b.rawType, _ = stringValue(payload, "type")
	rawMedia, _ := listValue(payload, "media")
	b.media = ParseMediaList(rawMedia)
	rawRanges, _ := listValue(payload, "ranges")
	b.ranges = ParseRangeList(rawRanges)
	if rawActions, ok := mapValue(payload, "actions"); ok {
		b.actions = parseActions(rawActions)
	}
	if rawMeta, ok := mapValue(payload, "meta"); ok {
		b.meta = parseMeta(rawMeta)
	}
	return b
}

// ParseBlocks builds the ordered block sequence for one notification
// from the raw payload array. Entries that are not objects are skipped;
// construction itself never fails.
func ParseBlocks(raw []any, parent *Notification) []*Block {
	blocks := make([]*Block, 0, len(raw))
	for _, entry := range raw {
		payload, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		blocks = append(blocks, newBlock(payload, parent))
	}
	return blocks
}

// Kind classifies the block. Precedence is significant, first match
// wins:
//
//  1. a raw type of "user" always wins,
//  2. a block whose meta comment id matches the owning notification's
//     comment id, with a site id present, renders as the comment body,
//  3. a leading image or badge media entry makes it an image block,
//  4. everything else is text.
func (b *Block) Kind() BlockKind {
	if b.rawType == "user" {
		return BlockUser
	}
	if blockComment, ok := b.MetaCommentID(); ok {
		if parentComment, ok := b.parentCommentID(); ok {
			if _, siteOK := b.MetaSiteID(); siteOK && blockComment == parentComment {
				return BlockComment
			}
		}
	}
	if len(b.media) > 0 && (b.media[0].IsImage() || b.media[0].IsBadge()) {
		return BlockImage
	}
	return BlockText
}

func (b *Block) parentCommentID() (int64, bool) {
	if b.parent == nil {
		return 0, false
	}
	return b.parent.MetaCommentID()
}

// Text returns the display text, preferring a local override when one
// is set.
func (b *Block) Text() string {
	if b.textOverride != nil {
		return *b.textOverride
	}
	return b.text
}

// RawText returns the parsed text as it appeared in the payload,
// ignoring any local override; ok is false when the payload carried no
// text field.
func (b *Block) RawText() (string, bool) {
	return b.text, b.hasText
}

// TextOverride returns the local text override, if set.
func (b *Block) TextOverride() (string, bool) {
	if b.textOverride == nil {
		return "", false
	}
	return *b.textOverride, true
}

// SetTextOverride installs a local replacement for the block text and
// notifies the owning notification. The notification fires even when
// the new value equals the current one.
func (b *Block) SetTextOverride(text string) {
	b.textOverride = &text
	b.notifyParent()
}

// ClearTextOverride removes the local text override and notifies the
// owning notification.
func (b *Block) ClearTextOverride() {
	b.textOverride = nil
	b.notifyParent()
}

// Media returns the block's media entries in payload order. The slice
// must not be modified.
func (b *Block) Media() []Media { return b.media }

// Ranges returns the block's text ranges in payload order. The slice
// must not be modified.
func (b *Block) Ranges() []Range { return b.ranges }

// RawType returns the server-declared block type string, if any.
func (b *Block) RawType() string { return b.rawType }

// Parent returns the owning notification.
func (b *Block) Parent() *Notification { return b.parent }

// ImageURLs returns the URLs of the block's image media entries,
// skipping non-image entries and entries without a URL, in payload
// order.
func (b *Block) ImageURLs() []*url.URL {
	var urls []*url.URL
	for _, m := range b.media {
		if m.IsImage() && m.URL != nil {
			urls = append(urls, m.URL)
		}
	}
	return urls
}

// IsCommentApproved reports whether the comment the block represents
// reads as approved: either the approve action is toggled on, or the
// action is not available at all, in which case there is nothing to
// disapprove.
func (b *Block) IsCommentApproved() bool {
	return b.IsActionOn(ActionApprove) || !b.IsActionEnabled(ActionApprove)
}

// MetaCommentID returns the comment id from the block's meta, if any.
func (b *Block) MetaCommentID() (int64, bool) {
	if b.meta.IDs.Comment == nil {
		return 0, false
	}
	return *b.meta.IDs.Comment, true
}

// MetaSiteID returns the site id from the block's meta, if any.
func (b *Block) MetaSiteID() (int64, bool) {
	if b.meta.IDs.Site == nil {
		return 0, false
	}
	return *b.meta.IDs.Site, true
}

// MetaLinksHome returns the home link from the block's meta, parsed as
// a URL; absent when the link is missing or not a valid URL.
func (b *Block) MetaLinksHome() (*url.URL, bool) {
	u := parseURL(b.meta.Links.Home)
	if u == nil {
		return nil, false
	}
	return u, true
}

// MetaTitlesHome returns the home title from the block's meta, if any.
func (b *Block) MetaTitlesHome() (string, bool) {
	if b.meta.Titles.Home == "" {
		return "", false
	}
	return b.meta.Titles.Home, true
}

// Meta returns the block's parsed meta.
func (b *Block) Meta() Meta { return b.meta }

// resolveAction resolves the effective value of an action: a local
// override shadows the server-declared value; absent from both means
// the action is unavailable.
func (b *Block) resolveAction(action Action) (value, ok bool) {
	if v, ok := b.actionsOverride[action]; ok {
		return v, true
	}
	if v, ok := b.actions[action.Key()]; ok {
		return v, true
	}
	return false, false
}

// IsActionEnabled reports whether the action is available on this
// block, regardless of its current boolean value.
func (b *Block) IsActionEnabled(action Action) bool {
	_, ok := b.resolveAction(action)
	return ok
}

// IsActionOn returns the effective value of the action, false when the
// action is unavailable.
func (b *Block) IsActionOn(action Action) bool {
	v, _ := b.resolveAction(action)
	return v
}

// SetActionOverride installs a local override for the action, shadowing
// the server-declared value until removed, and notifies the owning
// notification. The notification fires even when the value is
// unchanged.
func (b *Block) SetActionOverride(action Action, value bool) {
	if b.actionsOverride == nil {
		b.actionsOverride = make(map[Action]bool, len(actionKeys))
	}
	b.actionsOverride[action] = value
	b.notifyParent()
}

// RemoveActionOverride clears the local override for the action,
// reverting resolution to the server-declared value. The owning
// notification is notified unconditionally, including when no override
// was present; the UI layer relies on the callback to re-render after
// an attempted mutation settles.
func (b *Block) RemoveActionOverride(action Action) {
	delete(b.actionsOverride, action)
	b.notifyParent()
}

// CacheValue returns the cached attribute stored under key, if any.
func (b *Block) CacheValue(key string) (any, bool) {
	v, ok := b.attributeCache[key]
	return v, ok
}

// SetCacheValue stores an attribute under key; a nil value removes the
// key. The cache is UI-layer scratch space and does not notify the
// owning notification.
func (b *Block) SetCacheValue(key string, value any) {
	if value == nil {
		delete(b.attributeCache, key)
		return
	}
	if b.attributeCache == nil {
		b.attributeCache = make(map[string]any)
	}
	b.attributeCache[key] = value
}

// RangeByURL returns the first range whose URL matches rawURL, in
// payload order, or nil when none matches.
func (b *Block) RangeByURL(rawURL string) *Range {
	for i := range b.ranges {
		if b.ranges[i].URL != nil && b.ranges[i].URL.String() == rawURL {
			return &b.ranges[i]
		}
	}
	return nil
}

// RangeByCommentID returns the first range carrying the given comment
// id, in payload order, or nil when none matches.
func (b *Block) RangeByCommentID(id int64) *Range {
	for i := range b.ranges {
		if b.ranges[i].CommentID != nil && *b.ranges[i].CommentID == id {
			return &b.ranges[i]
		}
	}
	return nil
}

// Equal reports whether two blocks are interchangeable for rendering:
// same kind, same parsed text, same parent, and the same number of
// ranges and media entries. It deliberately does not compare range or
// media contents, nor action state.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Kind() != other.Kind() {
		return false
	}
	if b.text != other.text || b.hasText != other.hasText {
		return false
	}
	if !b.parent.Equal(other.parent) {
		return false
	}
	return len(b.ranges) == len(other.ranges) && len(b.media) == len(other.media)
}

func (b *Block) notifyParent() {
	if b.parent != nil {
		b.parent.didChangeOverrides()
	}
}
