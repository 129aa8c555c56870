// File: services/agent/parser.go
package agent

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateTimeParser is the best-effort natural-language date/time capability.
// Injected so the normalizer is testable with fixed fake parses.
type DateTimeParser interface {
	Parse(text string, base time.Time) (time.Time, bool)
}

// NaturalParser combines an absolute-format parser with a natural-language
// one: "2025-09-01 15:00" goes through dateparse, "tomorrow at 3pm" through
// the when rule engine.
type NaturalParser struct {
	w *when.Parser
}

func NewNaturalParser() *NaturalParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &NaturalParser{w: w}
}

func (p *NaturalParser) Parse(text string, base time.Time) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	if t, err := dateparse.ParseIn(text, base.Location()); err == nil {
		return t, true
	}
	r, err := p.w.Parse(text, base)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return r.Time, true
}
