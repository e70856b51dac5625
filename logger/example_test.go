package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/mordilloSan/sinklog/logger"
)

// This example writes to the console only, with a fixed template.
func ExampleNew_console() {
	log, err := logger.New(
		logger.WithTransports(logger.ConsoleTransport),
		logger.WithConsole(os.Stdout, os.Stdout),
		logger.WithColorProfile(termenv.Ascii),
		logger.WithFormatter(func(message string, level logger.Level) string {
			return level.String() + ": " + message
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	_ = log.Info("ready")
	_ = log.Warn("disk almost full")
	_ = log.Log("bye")
	// Output:
	// INFO: ready
	// WARN: disk almost full
	// LOG: bye
}

// This example appends to a file under the temp directory.
func ExampleNew_file() {
	log, err := logger.New(
		logger.WithTransports(logger.FileTransport),
		logger.WithFile(filepath.Join(os.TempDir(), "sinklog-example", "app.log")),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer log.Close()

	_ = log.Errorf("failed to connect: %v", "timeout")
}

// This example pre-computes a line, for example to assert on it in a test.
func ExampleLogger_Format() {
	log, _ := logger.New(
		logger.WithFile(""),
		logger.WithTransports(),
		logger.WithFormatter(func(message string, level logger.Level) string {
			return "[" + level.String() + "] " + message
		}),
	)
	fmt.Println(log.Format("disk full", logger.WarnLevel))
	// Output: [WARN] disk full
}
