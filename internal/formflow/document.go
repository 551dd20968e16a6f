// Package formflow implements the multi-step form engine used by the catalog
// entry wizards: a path-addressable form document, per-field validation,
// step completion tracking, draft persistence with debounced auto-save, and
// the session controller that ties them together. The engine is
// schema-agnostic; entity shapes are supplied by the caller (see Schema).
package formflow

import (
	"strconv"
	"strings"
)

// Document is a tree-shaped form document: scalar leaves, nested objects
// (map[string]any) and arrays of structured records ([]any). It is a value,
// freely copied and replaced, owned by exactly one Session at a time.
type Document map[string]any

// splitPath splits a dotted field path into segments. Empty segments are
// dropped so "a..b" behaves like "a.b".
func splitPath(path string) []string {
	parts := strings.Split(path, ".")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the value at the dotted path. The second return is false when
// any intermediate branch or the leaf itself is absent.
func (d Document) Get(path string) (any, bool) {
	var cur any = map[string]any(d)
	for _, seg := range splitPath(path) {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case Document:
			v, ok := node[seg]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Set replaces the value at the dotted path, creating intermediate nested
// containers as needed. A numeric segment addresses an array element; arrays
// are created (and extended with nil elements) when the path requires it.
func (d Document) Set(path string, value any) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return
	}
	setIn(map[string]any(d), segs, value)
}

func setIn(node map[string]any, segs []string, value any) {
	head := segs[0]
	if len(segs) == 1 {
		node[head] = value
		return
	}

	rest := segs[1:]
	if i, err := strconv.Atoi(rest[0]); err == nil && i >= 0 {
		arr, _ := node[head].([]any)
		node[head] = setInArray(arr, i, rest, value)
		return
	}

	child, ok := node[head].(map[string]any)
	if !ok {
		if doc, isDoc := node[head].(Document); isDoc {
			child = map[string]any(doc)
		} else {
			child = make(map[string]any)
			node[head] = child
		}
	}
	setIn(child, rest, value)
}

func setInArray(arr []any, i int, segs []string, value any) []any {
	for len(arr) <= i {
		arr = append(arr, nil)
	}
	if len(segs) == 1 {
		arr[i] = value
		return arr
	}

	rest := segs[1:]
	if j, err := strconv.Atoi(rest[0]); err == nil && j >= 0 {
		inner, _ := arr[i].([]any)
		arr[i] = setInArray(inner, j, rest, value)
		return arr
	}

	child, ok := arr[i].(map[string]any)
	if !ok {
		child = make(map[string]any)
		arr[i] = child
	}
	setIn(child, rest, value)
	return arr
}

// Delete removes the leaf at the dotted path. Absent paths are a no-op;
// parent containers are left in place even when emptied.
func (d Document) Delete(path string) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return
	}
	parentPath := strings.Join(segs[:len(segs)-1], ".")
	leaf := segs[len(segs)-1]

	var parent any = map[string]any(d)
	if parentPath != "" {
		v, ok := d.Get(parentPath)
		if !ok {
			return
		}
		parent = v
	}

	switch node := parent.(type) {
	case map[string]any:
		delete(node, leaf)
	case []any:
		if i, err := strconv.Atoi(leaf); err == nil && i >= 0 && i < len(node) {
			node[i] = nil
		}
	}
}

// Clone returns a deep copy sharing no containers with the receiver.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return Document(cloneMap(map[string]any(d)))
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case Document:
		return cloneMap(map[string]any(val))
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

// Equal reports deep equality with numeric leaves compared by value, so a
// document round-tripped through JSON (ints become float64) still compares
// equal to its in-memory baseline.
func (d Document) Equal(other Document) bool {
	return equalValue(map[string]any(d), map[string]any(other))
}

func equalValue(a, b any) bool {
	if am, ok := asMap(a); ok {
		bm, ok := asMap(b)
		if !ok || len(am) != len(bm) {
			return false
		}
		for k, av := range am {
			bv, ok := bm[k]
			if !ok || !equalValue(av, bv) {
				return false
			}
		}
		return true
	}
	if as, ok := a.([]any); ok {
		bs, ok := b.([]any)
		if !ok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !equalValue(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	if af, ok := asNumber(a); ok {
		bf, bok := asNumber(b)
		return bok && af == bf
	}
	return a == b
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Document:
		return map[string]any(m), true
	}
	return nil, false
}

// asNumber normalizes every numeric representation that can appear in a
// document (in-memory ints, JSON float64s) to float64.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// isEmptyValue reports whether a value counts as "not provided" for required
// checks: nil, empty/whitespace string, or empty array. Zero numbers and
// false booleans are provided values.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case []any:
		return len(val) == 0
	}
	return false
}
