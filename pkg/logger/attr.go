package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// NoteID records a notification identifier under the key "note_id".
// If id is empty, it returns an empty Attr.
func NoteID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("note_id", id)
}

// NoteType records the notification type under the key "note_type".
// If t is empty, it returns an empty Attr.
func NoteType(t string) slog.Attr {
	if t == "" {
		return slog.Attr{}
	}
	return slog.String("note_type", t)
}

// ActionName records an action name under the key "action".
// If name is empty, it returns an empty Attr.
func ActionName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("action", name)
}

// ListenerCount records the number of notified listeners under the key
// "listener_count".
func ListenerCount(n int) slog.Attr {
	return slog.Int("listener_count", n)
}
