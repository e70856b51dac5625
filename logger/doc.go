// Package logger provides a small leveled logger that writes each message to
// the console, an append-only file, or both.
//
// # Transports
//
// A Logger writes to the transports it was built with. ConsoleTransport sends
// log and info lines to stdout and warn and error lines to stderr, with
// warnings highlighted in yellow and errors in red when the terminal supports
// color. FileTransport appends every line, plus a newline, to a file. Both are
// selected by default and the file defaults to log.log in the working
// directory.
//
// # Usage
//
//	log, err := logger.New()
//	if err != nil {
//	    return err
//	}
//	defer log.Close()
//
//	log.Info("server started")
//	log.Warn("disk almost full")
//	log.Errorf("failed to connect: %v", err)
//
// Select a single transport or another file:
//
//	logger.New(logger.WithTransports(logger.ConsoleTransport))
//	logger.New(logger.WithFile("/var/log/app/app.log"))
//
// An empty file path disables file output even when FileTransport is selected.
//
// # Formatting
//
// Lines look like
//
//	2024-05-01 12:00:00 : [WARN] : disk almost full
//
// and untagged Log lines drop the bracketed level. WithFormatter replaces the
// template entirely; Format returns the exact text a call would emit.
//
// # File handling
//
// New creates the parent directory and the file if they do not exist. An
// existing file is appended to, never truncated. By default one handle stays
// open until Close; WithAppendPerWrite opens and closes the file on every
// call instead. There is no rotation and no coordination between Loggers
// sharing a path.
//
// Write errors are returned to the caller. Nothing is retried.
package logger
