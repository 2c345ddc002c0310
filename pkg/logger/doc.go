// Package logger provides a thin factory around Go's slog package plus
// helper attribute constructors shared across the notekit packages.
//
// New creates a *slog.Logger configured by a set of Option functions:
// output format (text or json), minimum level, output destination, and
// default attributes applied to every record.
//
// Helper constructors such as Group, Error, NoteID, and ActionName live
// in attr.go and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("notifications-ui"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Info("feed refreshed",
//	    logger.NoteID(note.ID),
//	    logger.NoteType(note.Type),
//	)
package logger
