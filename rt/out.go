package rt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/julert/console"
)

// Out writes the string form of v to the program output.
func Out(v any) {
	_ = console.WriteString(ToString(v))
}

// Outln writes the string form of v followed by a newline.
func Outln(v any) {
	_ = console.WriteString(ToString(v) + "\n")
}

// ToString renders v the way the language prints values.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	}
	return fmt.Sprint(v)
}

// TupleValue is a fixed group of values printed as "(a, b, c)".
type TupleValue []any

// Tuple groups items for printing.
func Tuple(items ...any) TupleValue {
	return TupleValue(items)
}

func (t TupleValue) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range t {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ToString(item))
	}
	b.WriteByte(')')
	return b.String()
}
