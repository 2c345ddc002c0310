package feed

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notekit/pkg/logger"
)

// ErrNotificationNotFound is returned when a notification is not in the
// inbox.
var ErrNotificationNotFound = errors.New("notification not found")

// Inbox is an in-memory container for parsed notifications, keyed by id
// and kept in arrival order. It installs itself as the overrides
// observer on every notification it owns and fans block override
// mutations out to subscribed listeners, so the UI layer has a single
// place to watch for optimistic-state changes.
//
// Inbox methods are safe for concurrent use; the notifications and
// blocks themselves are not, and must be mutated from a single owning
// context.
type Inbox struct {
	mu        sync.RWMutex
	notes     map[string]*Notification
	order     []string
	listeners map[string]func(*Notification)
	logger    *slog.Logger
}

// InboxOption configures an Inbox.
type InboxOption func(*Inbox)

// WithInboxLogger sets the logger for the Inbox.
func WithInboxLogger(l *slog.Logger) InboxOption {
	return func(ib *Inbox) {
		if l != nil {
			ib.logger = l
		}
	}
}

// NewInbox creates an empty inbox.
func NewInbox(opts ...InboxOption) *Inbox {
	ib := &Inbox{
		notes:     make(map[string]*Notification),
		listeners: make(map[string]func(*Notification)),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(ib)
	}
	return ib
}

// Add parses the given raw payloads and stores the resulting
// notifications. A payload without an id is assigned a generated one so
// it stays addressable. A notification with the id of an existing entry
// replaces it in place, keeping its position in the feed order.
// Construction is total, so every payload yields a notification.
func (ib *Inbox) Add(payloads ...Payload) []*Notification {
	added := make([]*Notification, 0, len(payloads))
	ib.mu.Lock()
	for _, payload := range payloads {
		n := ParseNotification(payload)
		if n.ID == "" {
			n.ID = uuid.New().String()
			ib.logger.LogAttrs(context.Background(), slog.LevelDebug, "Assigned local id to notification without one",
				logger.NoteID(n.ID),
				logger.NoteType(n.Type),
			)
		}
		n.SetOverridesObserver(ib.dispatchOverridesChange)
		if _, exists := ib.notes[n.ID]; !exists {
			ib.order = append(ib.order, n.ID)
		}
		ib.notes[n.ID] = n
		added = append(added, n)
	}
	ib.mu.Unlock()
	return added
}

// Get returns the notification with the given id.
func (ib *Inbox) Get(id string) (*Notification, error) {
	ib.mu.RLock()
	defer ib.mu.RUnlock()

	n, ok := ib.notes[id]
	if !ok {
		return nil, ErrNotificationNotFound
	}
	return n, nil
}

// ListOptions filters inbox listings.
type ListOptions struct {
	OnlyUnread bool       // when true, only unread notifications
	Types      []string   // when set, only notifications of these types
	Since      *time.Time // when set, only notifications after this time
}

// List returns notifications in arrival order, filtered by opts.
func (ib *Inbox) List(opts ListOptions) []*Notification {
	ib.mu.RLock()
	defer ib.mu.RUnlock()

	out := make([]*Notification, 0, len(ib.order))
	for _, id := range ib.order {
		n := ib.notes[id]
		if opts.OnlyUnread && n.Read {
			continue
		}
		if len(opts.Types) > 0 && !containsString(opts.Types, n.Type) {
			continue
		}
		if opts.Since != nil && !n.Timestamp.After(*opts.Since) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// MarkRead marks the given notifications as read. Unknown ids are
// ignored.
func (ib *Inbox) MarkRead(ids ...string) {
	ib.mu.Lock()
	defer ib.mu.Unlock()

	for _, id := range ids {
		if n, ok := ib.notes[id]; ok {
			n.MarkRead()
		}
	}
}

// CountUnread returns the number of unread notifications.
func (ib *Inbox) CountUnread() int {
	ib.mu.RLock()
	defer ib.mu.RUnlock()

	count := 0
	for _, n := range ib.notes {
		if !n.Read {
			count++
		}
	}
	return count
}

// Len returns the number of notifications in the inbox.
func (ib *Inbox) Len() int {
	ib.mu.RLock()
	defer ib.mu.RUnlock()
	return len(ib.notes)
}

// Subscribe registers a listener invoked whenever any owned block
// mutates its override state, and returns a token for Unsubscribe.
func (ib *Inbox) Subscribe(fn func(*Notification)) string {
	token := uuid.New().String()
	ib.mu.Lock()
	ib.listeners[token] = fn
	ib.mu.Unlock()
	return token
}

// Unsubscribe removes a previously registered listener. Unknown tokens
// are ignored.
func (ib *Inbox) Unsubscribe(token string) {
	ib.mu.Lock()
	delete(ib.listeners, token)
	ib.mu.Unlock()
}

func (ib *Inbox) dispatchOverridesChange(n *Notification) {
	ib.mu.RLock()
	listeners := make([]func(*Notification), 0, len(ib.listeners))
	for _, fn := range ib.listeners {
		listeners = append(listeners, fn)
	}
	ib.mu.RUnlock()

	if len(listeners) == 0 {
		return
	}
	ib.logger.LogAttrs(context.Background(), slog.LevelDebug, "Dispatching override change",
		logger.NoteID(n.ID),
		logger.ListenerCount(len(listeners)),
	)
	for _, fn := range listeners {
		fn(n)
	}
}
