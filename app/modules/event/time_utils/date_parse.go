package eventtime

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ErrUnrecognizedDate is returned when input is neither RFC 3339 nor a phrase
// the natural-language rules understand.
var ErrUnrecognizedDate = errors.New("unrecognized date")

var compactTime = regexp.MustCompile(`\b(\d{1,2})(\d{2})(am|pm)\b`)

// DateParser resolves event dates.
type DateParser struct {
	parser *when.Parser
	loc    *time.Location
}

// NewDateParser creates a parser that resolves phrases in loc. A nil loc means UTC.
func NewDateParser(loc *time.Location) *DateParser {
	if loc == nil {
		loc = time.UTC
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{parser: w, loc: loc}
}

// Parse accepts an RFC 3339 timestamp or a phrase such as "next friday 8pm",
// resolved against clock. The result is in UTC.
func (p *DateParser) Parse(input string, clock Clock) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, ErrUnrecognizedDate
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.UTC(), nil
	}

	// "932pm" -> "9:32 pm"
	normalized := compactTime.ReplaceAllString(strings.ToLower(input), "$1:$2 $3")

	r, err := p.parser.Parse(normalized, clock.Now().In(p.loc))
	if err != nil {
		return time.Time{}, err
	}
	if r == nil {
		return time.Time{}, ErrUnrecognizedDate
	}
	return r.Time.Truncate(time.Minute).UTC(), nil
}
