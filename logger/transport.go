package logger

import "strings"

// Transport names an output destination kind.
type Transport string

const (
	// FileTransport appends formatted lines to the configured file.
	FileTransport Transport = "file"
	// ConsoleTransport writes formatted lines to stdout/stderr.
	ConsoleTransport Transport = "console"
)

// DefaultTransports returns the transports selected when none are configured.
func DefaultTransports() []Transport {
	return []Transport{FileTransport, ConsoleTransport}
}

// transportSet is the resolved selection. Unknown names never match.
type transportSet struct {
	file    bool
	console bool
}

func newTransportSet(ts []Transport) transportSet {
	var set transportSet
	for _, t := range ts {
		switch t {
		case FileTransport:
			set.file = true
		case ConsoleTransport:
			set.console = true
		}
	}
	return set
}

// ParseTransports splits a comma-separated list of transport names.
// Names are trimmed but not case-folded, so "File" stays unknown.
func ParseTransports(s string) []Transport {
	ts := []Transport{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		ts = append(ts, Transport(p))
	}
	return ts
}
