package router

import (
	"fmt"
	"strings"
)

// WildcardKey is the reserved params key under which "*" and "**" captures
// are stored.
const WildcardKey = "_"

type segmentKind uint8

const (
	segLiteral segmentKind = iota
	segParam
	segSingleStar
	segDoubleStar
)

type segment struct {
	kind segmentKind
	// text holds the literal text for segLiteral and the parameter name
	// for segParam.
	text string
}

// Pattern is a compiled path template: an ordered sequence of segments,
// each a literal, a named single-segment parameter (":name"), a
// single-segment wildcard ("*"), or a terminal multi-segment wildcard
// ("**"). A pattern whose segments are all literal matches exactly one
// path and is eligible for the route store's O(1) index.
type Pattern struct {
	raw      string
	segments []segment
	literal  bool
}

// Compile parses a path template. It fails when a ":" segment has an empty
// name or when "**" appears anywhere but the final segment.
func Compile(template string) (*Pattern, error) {
	parts := strings.Split(template, "/")
	segments := make([]segment, 0, len(parts))
	literal := true

	for i, part := range parts {
		switch {
		case part == "*":
			segments = append(segments, segment{kind: segSingleStar})
			literal = false
		case part == "**":
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: %q", ErrWildcardNotTerminal, template)
			}
			segments = append(segments, segment{kind: segDoubleStar})
			literal = false
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return nil, fmt.Errorf("%w: %q", ErrEmptyParamName, template)
			}
			segments = append(segments, segment{kind: segParam, text: name})
			literal = false
		default:
			segments = append(segments, segment{kind: segLiteral, text: part})
		}
	}

	return &Pattern{raw: template, segments: segments, literal: literal}, nil
}

// String returns the original template.
func (p *Pattern) String() string {
	return p.raw
}

// IsLiteral reports whether every segment of the pattern is literal.
func (p *Pattern) IsLiteral() bool {
	return p.literal
}

// Match attempts to match path against the pattern, segment by segment.
// On success it returns the extracted parameters: named captures under
// their parameter name, wildcard captures under WildcardKey. A terminal
// "**" consumes the remainder of the path, including none of it, in which
// case the capture is the empty string.
func (p *Pattern) Match(path string) (map[string]string, bool) {
	parts := strings.Split(path, "/")
	params := make(map[string]string)

	for i, seg := range p.segments {
		if seg.kind == segDoubleStar {
			params[WildcardKey] = strings.Join(parts[min(i, len(parts)):], "/")
			return params, true
		}
		if i >= len(parts) {
			return nil, false
		}
		part := parts[i]
		switch seg.kind {
		case segLiteral:
			if part != seg.text {
				return nil, false
			}
		case segParam:
			if part == "" {
				return nil, false
			}
			params[seg.text] = part
		case segSingleStar:
			if part == "" {
				return nil, false
			}
			params[WildcardKey] = part
		}
	}

	if len(parts) != len(p.segments) {
		return nil, false
	}
	return params, true
}
