package feed_test

import (
	"fmt"

	"github.com/dmitrymomot/notekit/pkg/feed"
)

func ExampleParseNotification() {
	// A payload as decoded from the feed endpoint response.
	payload := feed.Payload{
		"id":   "note-1",
		"type": "comment",
		"body": []any{
			map[string]any{"type": "user", "text": "Alice"},
			map[string]any{
				"text": "Nice post!",
				"meta": map[string]any{
					"ids": map[string]any{"comment": float64(9), "site": float64(2)},
				},
				"actions": map[string]any{"approve-comment": false},
			},
		},
		"meta": map[string]any{
			"ids": map[string]any{"comment": float64(9)},
		},
	}

	note := feed.ParseNotification(payload)
	for _, block := range note.Body {
		fmt.Printf("%s: %s\n", block.Kind(), block.Text())
	}
	// Output:
	// user: Alice
	// comment: Nice post!
}

func ExampleBlock_SetActionOverride() {
	note := feed.ParseNotification(feed.Payload{
		"id":   "note-1",
		"type": "comment",
		"body": []any{map[string]any{
			"text":    "Nice post!",
			"actions": map[string]any{"approve-comment": false},
		}},
	})
	block := note.Body[0]

	// Reflect the pending approval immediately, before the network
	// call settles.
	block.SetActionOverride(feed.ActionApprove, true)
	fmt.Println("approved:", block.IsActionOn(feed.ActionApprove))

	// The call failed; drop the optimistic state.
	block.RemoveActionOverride(feed.ActionApprove)
	fmt.Println("approved:", block.IsActionOn(feed.ActionApprove))
	// Output:
	// approved: true
	// approved: false
}

func ExampleInbox() {
	inbox := feed.NewInbox()
	inbox.Add(
		feed.Payload{"id": "a", "type": "like"},
		feed.Payload{"id": "b", "type": "comment"},
	)

	inbox.MarkRead("a")
	fmt.Println("unread:", inbox.CountUnread())

	for _, n := range inbox.List(feed.ListOptions{OnlyUnread: true}) {
		fmt.Println(n.ID, n.Type)
	}
	// Output:
	// unread: 1
	// b comment
}
