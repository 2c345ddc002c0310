package feed

// Meta carries the well-known identifiers, links, and titles the service
// attaches to notifications and blocks under the nested "meta" object.
//
// It is populated once at parse time; any missing or mis-shaped nesting
// level simply leaves the corresponding fields absent, so reads never
// fail regardless of the payload shape.
type Meta struct {
	IDs    MetaIDs
	Links  MetaLinks
	Titles MetaTitles
}

// MetaIDs holds entity identifiers from meta.ids. Nil means absent.
type MetaIDs struct {
	Site         *int64
	Post         *int64
	Comment      *int64
	ReplyComment *int64
	Home         *int64
}

// MetaLinks holds raw link strings from meta.links. Empty means absent.
type MetaLinks struct {
	Site         string
	Post         string
	Comment      string
	ReplyComment string
	Home         string
}

// MetaTitles holds display titles from meta.titles. Empty means absent.
type MetaTitles struct {
	Home string
	Site string
}

func parseMeta(raw map[string]any) Meta {
	var meta Meta
	if ids, ok := mapValue(raw, "ids"); ok {
		meta.IDs.Site = idPtr(ids, "site")
		meta.IDs.Post = idPtr(ids, "post")
		meta.IDs.Comment = idPtr(ids, "comment")
		meta.IDs.ReplyComment = idPtr(ids, "reply_comment")
		meta.IDs.Home = idPtr(ids, "home")
	}
	if links, ok := mapValue(raw, "links"); ok {
		meta.Links.Site, _ = stringValue(links, "site")
		meta.Links.Post, _ = stringValue(links, "post")
		meta.Links.Comment, _ = stringValue(links, "comment")
		meta.Links.ReplyComment, _ = stringValue(links, "reply_comment")
		meta.Links.Home, _ = stringValue(links, "home")
	}
	if titles, ok := mapValue(raw, "titles"); ok {
		meta.Titles.Home, _ = stringValue(titles, "home")
		meta.Titles.Site, _ = stringValue(titles, "site")
	}
	return meta
}

func idPtr(m map[string]any, key string) *int64 {
	id, ok := idValue(m, key)
	if !ok {
		return nil
	}
	return &id
}
