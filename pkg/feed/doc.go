// Package feed parses the loosely typed notification payloads served by
// a remote notification endpoint into strongly structured, queryable
// in-memory objects.
//
// The package is a pure data-model layer: it owns no transport, no
// persistence, and no rendering. It is designed to sit between a fetch
// layer (HTTP, WebSocket, polling, anything that yields decoded JSON
// maps) and a UI layer that renders notifications and mutates their
// optimistic action state.
//
// # Architecture
//
// A Notification owns ordered sequences of Blocks split into subject,
// header, and body sections. Each Block owns its parsed Media and Range
// entries plus its raw action map, and holds a non-owning back-reference
// to the notification for classification and change callbacks. The
// Inbox is an optional in-memory container that keeps notifications in
// arrival order and fans override-change callbacks out to listeners.
//
// # Defensive parsing
//
// Payloads are not treated as a strict contract. Construction is total:
// any missing, malformed, or mis-typed field degrades to an absent or
// empty value, never an error. This keeps partial and evolving server
// schemas from crashing the client.
//
//	note := feed.ParseNotification(payload)
//	for _, block := range note.Body {
//	    switch block.Kind() {
//	    case feed.BlockComment:
//	        render(block.Text(), block.Ranges())
//	    case feed.BlockImage:
//	        render(block.ImageURLs())
//	    }
//	}
//
// # Optimistic action state
//
// Blocks carry server-declared actions (approve, like, trash, ...) and
// a local override layer that shadows them while a network mutation is
// in flight. Override writes always notify the owning notification, so
// the UI can re-render immediately:
//
//	inbox := feed.NewInbox()
//	inbox.Subscribe(func(n *feed.Notification) {
//	    rerender(n)
//	})
//
//	block.SetActionOverride(feed.ActionApprove, true)
//	// ... network call settles ...
//	block.RemoveActionOverride(feed.ActionApprove)
//
// Clearing the override on success or failure is the caller's job; the
// package only does the local bookkeeping.
//
// # Concurrency
//
// Notifications and Blocks are single-owner objects and are not safe
// for concurrent use. The Inbox serializes its own bookkeeping with a
// mutex, but block mutations must still come from one owning context,
// typically the UI loop.
package feed
