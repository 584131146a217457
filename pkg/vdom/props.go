package vdom

import (
	"sort"
	"strings"
)

// IsHandlerProp reports whether a prop key names an event handler.
// Handler props are bound by the runtime at commit time; the attribute
// differ never includes them in deltas.
func IsHandlerProp(key string) bool {
	return strings.HasPrefix(key, "on")
}

// DiffProps compares two attribute maps and returns the delta: values to
// set (new or changed under propEqual) and keys to remove. Both inputs are
// left untouched. Remove is sorted so output is deterministic regardless of
// map iteration order.
func DiffProps(prev, next Props) PropsDelta {
	var delta PropsDelta

	for k, pv := range prev {
		if IsHandlerProp(k) {
			continue
		}
		nv, ok := next[k]
		if !ok {
			delta.Remove = append(delta.Remove, k)
			continue
		}
		if !propEqual(pv, nv) {
			if delta.Set == nil {
				delta.Set = make(Props)
			}
			delta.Set[k] = nv
		}
	}

	for k, nv := range next {
		if IsHandlerProp(k) {
			continue
		}
		if _, ok := prev[k]; !ok {
			if delta.Set == nil {
				delta.Set = make(Props)
			}
			delta.Set[k] = nv
		}
	}

	sort.Strings(delta.Remove)
	return delta
}
