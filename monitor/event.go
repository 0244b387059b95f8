package monitor

import (
	"strconv"
	"strings"
	"time"

	"github.com/calvinmclean/animahead"
)

// Event is a parsed log line from the head
type Event struct {
	Raw string

	// Started is false for lines logged before the choreography started ("[-]")
	Started bool
	Elapsed time.Duration

	Stage animahead.Stage
	Side  animahead.Side

	// Axis is "base" or "head" for angle lines
	Axis  string
	Angle int

	Error bool
}

// ParseLine parses a line like "[1m2.5s] stage=Pan side=Left" or "[3s] head angle=70".
// It returns false for lines that do not have a timestamp prefix
func ParseLine(line string) (Event, bool) {
	line = strings.TrimRight(line, "\r\n")
	ev := Event{Raw: line}

	if !strings.HasPrefix(line, "[") {
		return ev, false
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return ev, false
	}

	ts := line[1:end]
	if ts != "-" {
		d, err := time.ParseDuration(ts)
		if err != nil {
			return ev, false
		}
		ev.Started = true
		ev.Elapsed = d
	}

	fields := strings.Fields(line[end+1:])
	if len(fields) > 0 && fields[0] == "error" {
		ev.Error = true
		return ev, true
	}

	for i, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}

		switch key {
		case "stage":
			ev.Stage = animahead.ParseStage(value)
		case "side":
			ev.Side = animahead.ParseSide(value)
		case "angle":
			v, err := strconv.Atoi(value)
			if err != nil || i == 0 {
				continue
			}
			ev.Axis = fields[i-1]
			ev.Angle = v
		}
	}

	return ev, true
}
