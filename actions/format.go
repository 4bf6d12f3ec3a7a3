package actions

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Format renders a in the syntax accepted by Parse.
func Format(a Action) string {
	var b strings.Builder
	b.WriteString(a.Name)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatValue(arg))
	}
	b.WriteByte(')')
	return b.String()
}

// FormatValue renders one argument as Parse would read it back.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case string:
		return `"` + quoteReplacer.Replace(v) + `"`
	case float64:
		switch {
		case math.IsInf(v, 1):
			return "Infinity"
		case math.IsInf(v, -1):
			return "-Infinity"
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case Raw:
		return string(v)
	}
	return fmt.Sprint(v)
}
