package check

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

// pairInlineLimit is the combined rendering length above which a failure
// message breaks the operands onto their own labeled lines.
const pairInlineLimit = 60

//nolint:gochecknoglobals // color renderers are stateless and shared
var (
	leftLabel  = color.New(color.FgRed).SprintFunc()
	rightLabel = color.New(color.FgGreen).SprintFunc()
)

// renderValue renders v for failure messages. Strings are quoted so empty
// and whitespace-only values stay visible; maps render with their keys in
// canonical order so messages are deterministic.
func renderValue(v any) string {
	if isNilish(v) {
		return "<nil>"
	}

	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case time.Duration:
		return t.String()
	case *regexp.Regexp:
		return t.String()
	case error:
		return strconv.Quote(t.Error())
	case map[any]any:
		return renderEntries(t)
	}

	if isMapValue(v) {
		return renderEntries(mapEntries(v))
	}

	if out, err := json.Marshal(v); err == nil {
		return string(out)
	}

	return fmt.Sprintf("%v", v)
}

// renderEntries renders a normalized map deterministically, keys in
// canonical order.
func renderEntries(m map[any]any) string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, k := range sortedKeys(m) {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v: %s", k, renderValue(m[k]))
	}

	sb.WriteString("}")

	return sb.String()
}

// renderPair renders both operands of a failed compare: inline when
// short, as a labeled two-line block when long.
func renderPair(left, right any) string {
	l := renderValue(left)
	r := renderValue(right)

	if len(l)+len(r) <= pairInlineLimit {
		return l + " != " + r
	}

	return "\n  " + leftLabel("left: ") + " " + l +
		"\n  " + rightLabel("right:") + " " + r
}

// renderCanonical renders a value for digest-based ordering. JSON when
// possible, the Go-syntax representation otherwise.
func renderCanonical(v any) string {
	if out, err := json.Marshal(v); err == nil {
		return string(out)
	}

	return fmt.Sprintf("%#v", v)
}

// trimFloat renders a float without trailing zeros, so a tolerance of 3
// reads "3" rather than "3.000000".
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// mapEntries normalizes any map into map[any]any with scalar keys
// unified: numeric keys by value, strings as-is, anything else by its
// rendering. The copy keeps filtering from ever mutating an operand.
func mapEntries(v any) map[any]any {
	rv := reflect.ValueOf(v)
	out := make(map[any]any, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		out[normalizeKey(iter.Key().Interface())] = iter.Value().Interface()
	}

	return out
}

// normalizeKey unifies key representations across map types, so a key of
// int 1 in one map lines up with a float64 1 in the other.
func normalizeKey(k any) any {
	if f, ok := toFloat64(k); ok {
		return f
	}

	if s, ok := k.(string); ok {
		return s
	}

	return fmt.Sprintf("%v", k)
}
