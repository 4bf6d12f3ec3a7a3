package actions

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var callPattern = regexp.MustCompile(`(?s)^([A-Za-z0-9_]+)\((.*)\)$`)

// Parse decodes `name(arg, ...)`.
func Parse(text string) (ret Action, err error) {
	text = strings.TrimSpace(text)
	match := callPattern.FindStringSubmatch(text)
	if match == nil {
		return ret, fmt.Errorf("%w: %q", ErrMalformedAction, text)
	}
	ret.Name = match[1]

	segments, err := split(match[2])
	if err != nil {
		return ret, err
	}
	for _, segment := range segments {
		ret.Args = append(ret.Args, decode(segment))
	}
	return ret, nil
}

// split cuts body at commas outside strings and parentheses.
func split(body string) (segments []string, err error) {
	var (
		quote       byte
		quoteOffset int
		escaped     bool
		depth       int
		start       int
	)
	for i := 0; i < len(body); i++ {
		c := body[i]

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
			quoteOffset = i
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				segments = append(segments, strings.TrimSpace(body[start:i]))
				start = i + 1
			}
		}
	}

	if quote != 0 {
		return nil, &SyntaxError{
			Offset: quoteOffset,
			Err:    ErrUnterminatedString,
		}
	}

	// trailing segment is kept only when non-empty
	if last := strings.TrimSpace(body[start:]); last != "" {
		segments = append(segments, last)
	}
	return segments, nil
}

func decode(segment string) Value {
	if segment == "" {
		// an empty segment between commas reads as zero
		return 0.0
	}

	if len(segment) >= 2 {
		first, last := segment[0], segment[len(segment)-1]
		if (first == '"' || first == '\'') && first == last {
			return unescape(segment[1 : len(segment)-1])
		}
	}

	switch segment {
	case "true":
		return true
	case "false":
		return false
	}

	if f, ok := parseNumber(segment); ok {
		return f
	}

	return Raw(segment)
}

func parseNumber(s string) (float64, bool) {
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}

	f, err := strconv.ParseFloat(s, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		// 1e400 overflows to an infinity
		return f, true
	case err == nil && !math.IsNaN(f) && !math.IsInf(f, 0):
		return f, true
	case err == nil:
		// Go spellings like NaN and inf stay bare tokens
		return 0, false
	}

	// 0x1A, 0o17, 0b101; no sign and no digit separators
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) &&
		!strings.Contains(s, "_") {
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return float64(i), true
		}
	}

	return 0, false
}

// unescape decodes in one pass, so decoded characters are never re-read.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch next := s[i]; next {
		case '"', '\'', '\\':
			b.WriteByte(next)
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
		}
	}
	return b.String()
}
