package render

import (
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// FormatValue renders a static attribute value using Ruby literal syntax.
func FormatValue(v cty.Value) string {
	switch {
	case v.IsNull():
		return "nil"
	case !v.IsKnown():
		return "(unknown)"
	}

	t := v.Type()
	switch {
	case t.Equals(cty.String):
		return strconv.Quote(v.AsString())
	case t.Equals(cty.Number):
		return v.AsBigFloat().Text('f', -1)
	case t.Equals(cty.Bool):
		if v.True() {
			return "true"
		}
		return "false"
	case t.IsListType() || t.IsSetType() || t.IsTupleType():
		var elements []string
		for it := v.ElementIterator(); it.Next(); {
			_, e := it.Element()
			elements = append(elements, FormatValue(e))
		}
		return "[" + strings.Join(elements, ", ") + "]"
	case t.IsMapType() || t.IsObjectType():
		var elements []string
		for it := v.ElementIterator(); it.Next(); {
			k, e := it.Element()
			elements = append(elements, strconv.Quote(k.AsString())+" => "+FormatValue(e))
		}
		if len(elements) == 0 {
			return "{}"
		}
		return "{ " + strings.Join(elements, ", ") + " }"
	default:
		return v.GoString()
	}
}
