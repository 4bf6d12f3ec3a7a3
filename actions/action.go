package actions

import "strings"

// Value is one decoded argument: string, float64, bool or Raw.
type Value = any

// Raw is a bare token that is neither quoted, boolean nor numeric.
type Raw string

type Action struct {
	Name string
	Args []Value
}

func (a Action) String() string {
	return Format(a)
}

// ArgsText renders arguments for display, strings unquoted.
func (a Action) ArgsText() string {
	var b strings.Builder
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		switch arg := arg.(type) {
		case string:
			b.WriteString(arg)
		default:
			b.WriteString(FormatValue(arg))
		}
	}
	return b.String()
}
