package persistence

import (
	"encoding/json"
	"reflect"
	"sort"
)

// Filter selects documents by top-level fields. All conditions must hold.
type Filter struct {
	// Equals matches a field holding exactly the given scalar.
	Equals map[string]any
	// Contains matches an array field that holds the given element.
	Contains map[string]string
	// In matches a string field whose value is one of the given values. An
	// empty set matches nothing.
	In map[string][]string
}

// All matches every document.
func All() Filter {
	return Filter{}
}

// Where starts a filter with one equality condition.
func Where(field string, value any) Filter {
	return Filter{}.And(field, value)
}

// And adds an equality condition.
func (f Filter) And(field string, value any) Filter {
	out := f.clone()
	if out.Equals == nil {
		out.Equals = map[string]any{}
	}
	out.Equals[field] = value
	return out
}

// HasElement adds an array-membership condition.
func (f Filter) HasElement(field, value string) Filter {
	out := f.clone()
	if out.Contains == nil {
		out.Contains = map[string]string{}
	}
	out.Contains[field] = value
	return out
}

// AnyOf adds a set-membership condition.
func (f Filter) AnyOf(field string, values []string) Filter {
	out := f.clone()
	if out.In == nil {
		out.In = map[string][]string{}
	}
	out.In[field] = append([]string(nil), values...)
	return out
}

func (f Filter) clone() Filter {
	var out Filter
	if f.Equals != nil {
		out.Equals = make(map[string]any, len(f.Equals))
		for k, v := range f.Equals {
			out.Equals[k] = v
		}
	}
	if f.Contains != nil {
		out.Contains = make(map[string]string, len(f.Contains))
		for k, v := range f.Contains {
			out.Contains[k] = v
		}
	}
	if f.In != nil {
		out.In = make(map[string][]string, len(f.In))
		for k, v := range f.In {
			out.In[k] = v
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Matches evaluates the filter against a decoded JSON document. Drivers without
// native query support use it.
func (f Filter) Matches(doc map[string]any) bool {
	for field, want := range f.Equals {
		got, ok := doc[field]
		if !ok || !reflect.DeepEqual(got, normalize(want)) {
			return false
		}
	}
	for field, elem := range f.Contains {
		arr, ok := doc[field].([]any)
		if !ok {
			return false
		}
		found := false
		for _, v := range arr {
			if s, ok := v.(string); ok && s == elem {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for field, values := range f.In {
		s, ok := doc[field].(string)
		if !ok {
			return false
		}
		found := false
		for _, v := range values {
			if v == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// normalize converts a Go value to the shape encoding/json decodes it into.
func normalize(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
