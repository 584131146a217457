package vdom

import (
	"strconv"
	"strings"
)

// booleanAttrs are attributes whose presence alone carries the value.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// IsBooleanAttr returns true if the attribute is a boolean attribute:
// rendered as a bare name when true and omitted when false.
func IsBooleanAttr(key string) bool {
	return booleanAttrs[strings.ToLower(key)]
}

// EffectiveAttrs resolves a node's props to the attributes they render as.
// Handler props are excluded and values with no textual form are dropped.
// True boolean attributes map to the empty string.
func EffectiveAttrs(v *VNode) map[string]string {
	if v == nil || len(v.Props) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(v.Props))
	for k, val := range v.Props {
		if IsHandlerProp(k) {
			continue
		}
		if text, ok := AttrText(k, val); ok {
			attrs[k] = text
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

// AttrText converts an attribute value to its textual form. ok is false
// when the value should produce no attribute at all: nil values, false
// boolean attributes, and values with no sensible string form (functions,
// maps, structs). True boolean attributes yield the empty string; callers
// render those as a bare attribute name.
func AttrText(key string, value any) (text string, ok bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		if IsBooleanAttr(key) {
			return "", v
		}
		if v {
			return "true", true
		}
		return "false", true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}
