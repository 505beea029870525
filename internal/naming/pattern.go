package naming

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPattern reports a pattern with zero placeholders, more than one
// placeholder, or a malformed width specifier.
var ErrInvalidPattern = errors.New("invalid pattern")

// placeholderRe matches the single supported placeholder form: "{:d}" for a
// plain decimal, or "{:0Nd}" (N >= 1) for a zero-padded width-N decimal.
// Anything else between braces (e.g. "{:3d}", "{name}") is malformed.
var placeholderRe = regexp.MustCompile(`\{:(?:0([0-9]+))?d\}`)

// Pattern is a parsed naming template. The placeholder has been located and
// removed; formatting an index substitutes it back zero-padded to width.
// Immutable after Parse.
type Pattern struct {
	raw    string
	prefix string
	suffix string
	width  int // 0 means no padding ("{:d}").
}

// Parse validates raw against the placeholder grammar. It fails with
// [ErrInvalidPattern] unless exactly one well-formed placeholder is present.
// Parse touches nothing but the string; it is safe to call before any
// filesystem access.
func Parse(raw string) (*Pattern, error) {
	matches := placeholderRe.FindAllStringSubmatchIndex(raw, -1)

	switch len(matches) {
	case 0:
		if strings.ContainsAny(raw, "{}") {
			return nil, fmt.Errorf("%w: %q contains a malformed placeholder (use {:0Nd}, e.g. {:03d})", ErrInvalidPattern, raw)
		}
		return nil, fmt.Errorf("%w: %q has no {:0Nd} placeholder", ErrInvalidPattern, raw)
	case 1:
		// ok
	default:
		return nil, fmt.Errorf("%w: %q has %d placeholders, want exactly one", ErrInvalidPattern, raw, len(matches))
	}

	m := matches[0]
	prefix, suffix := raw[:m[0]], raw[m[1]:]
	if strings.ContainsAny(prefix, "{}") || strings.ContainsAny(suffix, "{}") {
		return nil, fmt.Errorf("%w: %q contains a malformed placeholder (use {:0Nd}, e.g. {:03d})", ErrInvalidPattern, raw)
	}

	width := 0
	if m[2] >= 0 {
		w, err := strconv.Atoi(raw[m[2]:m[3]])
		if err != nil || w < 1 {
			return nil, fmt.Errorf("%w: %q has a malformed width specifier", ErrInvalidPattern, raw)
		}
		width = w
	}

	return &Pattern{raw: raw, prefix: prefix, suffix: suffix, width: width}, nil
}

// Format substitutes index into the placeholder, zero-padded to the declared
// width. Indices needing more digits than the width overflow to more digits;
// nothing is ever truncated. Negative indices keep their sign.
func (p *Pattern) Format(index int) string {
	return p.prefix + fmt.Sprintf("%0*d", p.width, index) + p.suffix
}

// FileName returns the full target filename for index: the formatted pattern
// with ".<ext>" appended.
func (p *Pattern) FileName(index int, ext string) string {
	return p.Format(index) + "." + ext
}

// Width returns the declared zero-pad width (0 for the unpadded "{:d}" form).
func (p *Pattern) Width() int { return p.width }

// String returns the original pattern text.
func (p *Pattern) String() string { return p.raw }
