package topics

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	topicRe     = regexp.MustCompile(`^Topic \d+:\s*(.+)`)
	numberingRe = regexp.MustCompile(`^\d+[.)]\s*`)
)

// MalformedInputError reports a question line that appeared before every
// context header kind had been seen at least once.
type MalformedInputError struct {
	Line int
	Text string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("line %d: question %q before topic/gender/context headers", e.Line, e.Text)
}

// StripNumbering removes a leading question number such as "4." or "10)"
// from a line. Applying it twice is a no-op.
func StripNumbering(s string) string {
	return strings.TrimSpace(numberingRe.ReplaceAllString(s, ""))
}

// Parser turns annotated topic text into question records.
type Parser struct {
	markers []Marker
}

// NewParser creates a parser using the given marker table, or the built-in
// table when markers is nil.
func NewParser(markers []Marker) *Parser {
	if markers == nil {
		markers = DefaultMarkers()
	}
	return &Parser{markers: markers}
}

// Parse reads the whole input and returns the question records in order.
//
// Topic, gender and context headers update parse state; each question line
// inherits the nearest preceding value of all three. A new topic header
// resets only the topic — gender and context carry over until overwritten.
// A question line seen while any state field is still unset is a malformed
// input and aborts the parse.
func (p *Parser) Parse(r io.Reader) ([]QuestionRecord, error) {
	var (
		records   []QuestionRecord
		topic     string
		gender    Gender
		careFocus CareFocus
		hasKids   HasKids
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if m := topicRe.FindStringSubmatch(line); m != nil {
			topic = strings.TrimSpace(m[1])
			continue
		}

		if marker, ok := p.matchMarker(line); ok {
			if marker.IsGender() {
				gender = marker.Gender
			} else {
				careFocus = marker.CareFocus
				hasKids = marker.HasKids
			}
			continue
		}

		if topic == "" || gender == "" || careFocus == "" || hasKids == "" {
			return nil, &MalformedInputError{Line: lineNo, Text: line}
		}

		question := StripNumbering(line)
		if question == "" {
			continue
		}

		records = append(records, QuestionRecord{
			Topic:     topic,
			Gender:    gender,
			CareFocus: careFocus,
			HasKids:   hasKids,
			Question:  question,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return records, nil
}

func (p *Parser) matchMarker(line string) (Marker, bool) {
	for _, m := range p.markers {
		if strings.HasPrefix(line, m.Prefix) {
			return m, true
		}
	}
	return Marker{}, false
}
