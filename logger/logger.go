package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// options holds the configuration New resolves before building a Logger.
type options struct {
	// transports selects the active sinks.
	// Default: file and console
	transports []Transport
	// file is the target append file; empty disables the file sink.
	// Default: "log.log" in the working directory
	file string
	// formatter renders each line.
	// Default: DefaultFormatter
	formatter Formatter
	// fs is the filesystem the file sink goes through.
	// Default: afero.NewOsFs()
	fs afero.Fs
	// stdout receives log and info lines, stderr receives warn and error lines.
	// Default: os.Stdout, os.Stderr
	stdout io.Writer
	stderr io.Writer
	// profile forces the console color profile; nil detects it from stderr.
	// Default: nil
	profile *termenv.Profile
	// perWrite opens, appends and closes the file on every call instead of
	// holding one handle for the logger's lifetime.
	// Default: false
	perWrite bool
}

func defaultOptions() options {
	return options{
		transports: DefaultTransports(),
		file:       DefaultFile,
		formatter:  DefaultFormatter,
		fs:         afero.NewOsFs(),
		stdout:     outStdout,
		stderr:     outStderr,
	}
}

// Option overrides one default of New.
type Option func(*options)

// WithTransports replaces the default transport set. Calling it with no
// values selects no transports. Unknown names are ignored.
func WithTransports(ts ...Transport) Option {
	return func(o *options) {
		o.transports = append([]Transport{}, ts...)
	}
}

// WithFile sets the log file path. An empty path disables the file sink even
// when FileTransport is selected.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithFormatter installs a custom formatter. A nil formatter keeps the default.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithFs sets the filesystem used by the file sink.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithConsole sets the console writers. Nil writers keep their default.
func WithConsole(stdout, stderr io.Writer) Option {
	return func(o *options) {
		if stdout != nil {
			o.stdout = stdout
		}
		if stderr != nil {
			o.stderr = stderr
		}
	}
}

// WithColorProfile forces the console color profile. termenv.Ascii disables
// highlighting; termenv.ANSI always enables it.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *options) {
		o.profile = &p
	}
}

// WithAppendPerWrite makes every file write open, append and close the file.
func WithAppendPerWrite() Option {
	return func(o *options) {
		o.perWrite = true
	}
}

// Logger formats messages and dispatches them to the selected transports.
// A Logger is safe for concurrent use; lines are written whole and in call
// order per goroutine.
type Logger struct {
	mu sync.Mutex

	transports transportSet
	path       string
	formatter  Formatter
	fs         afero.Fs
	console    *console

	perWrite bool
	stream   afero.File
	closed   bool
}

// New builds a Logger. When the file sink is active it creates the parent
// directory and the file if they are missing, then opens the append handle.
// Filesystem failures are returned as is, wrapped with the failing path.
func New(opts ...Option) (*Logger, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	path, err := resolvePath(o.file)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		transports: newTransportSet(o.transports),
		path:       path,
		formatter:  o.formatter,
		fs:         o.fs,
		console:    newConsole(o.stdout, o.stderr, o.profile),
		perWrite:   o.perWrite,
	}

	if !l.fileActive() {
		return l, nil
	}
	if err := prepareFile(l.fs, l.path); err != nil {
		return nil, err
	}
	if !l.perWrite {
		stream, err := openAppend(l.fs, l.path)
		if err != nil {
			return nil, err
		}
		l.stream = stream
	}
	return l, nil
}

func (l *Logger) fileActive() bool {
	return l.transports.file && l.path != ""
}

// Format returns the exact line the logger would emit for message at level.
func (l *Logger) Format(message string, level Level) string {
	return l.formatter(message, level)
}

// LogFilePath returns the resolved absolute log file path, or "" when no
// file is configured.
func (l *Logger) LogFilePath() string {
	return l.path
}

// LogStream returns the persistent file handle, or nil when the file sink is
// inactive, closed or in per-write mode.
func (l *Logger) LogStream() io.Writer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stream == nil {
		return nil
	}
	return l.stream
}

// Close releases the persistent file handle. It is safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.stream == nil {
		return nil
	}
	err := l.stream.Close()
	l.stream = nil
	return errors.Wrapf(err, "close log file %s", l.path)
}

func (l *Logger) write(level Level, message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	formatted := l.formatter(message, level)

	if l.transports.console {
		if err := l.console.write(formatted, level); err != nil {
			return errors.Wrap(err, "write to console")
		}
	}

	if !l.fileActive() {
		return nil
	}
	line := formatted + "\n"
	if l.perWrite {
		return appendOnce(l.fs, l.path, line)
	}
	if l.closed || l.stream == nil {
		return ErrClosed
	}
	if _, err := io.WriteString(l.stream, line); err != nil {
		return errors.Wrapf(err, "append to log file %s", l.path)
	}
	return nil
}

// Log writes an untagged message.
func (l *Logger) Log(message string) error {
	return l.write(LogLevel, message)
}

// Info writes an informational message.
func (l *Logger) Info(message string) error {
	return l.write(InfoLevel, message)
}

// Warn writes a warning. On the console it goes to stderr in yellow.
func (l *Logger) Warn(message string) error {
	return l.write(WarnLevel, message)
}

// Error writes an error. On the console it goes to stderr in red.
func (l *Logger) Error(message string) error {
	return l.write(ErrorLevel, message)
}

// Write writes message at level.
func (l *Logger) Write(level Level, message string) error {
	return l.write(level, message)
}

// Logf is Log with fmt.Sprintf formatting.
func (l *Logger) Logf(format string, v ...any) error {
	return l.write(LogLevel, fmt.Sprintf(format, v...))
}

// Infof is Info with fmt.Sprintf formatting.
func (l *Logger) Infof(format string, v ...any) error {
	return l.write(InfoLevel, fmt.Sprintf(format, v...))
}

// Warnf is Warn with fmt.Sprintf formatting.
func (l *Logger) Warnf(format string, v ...any) error {
	return l.write(WarnLevel, fmt.Sprintf(format, v...))
}

// Errorf is Error with fmt.Sprintf formatting.
func (l *Logger) Errorf(format string, v ...any) error {
	return l.write(ErrorLevel, fmt.Sprintf(format, v...))
}
