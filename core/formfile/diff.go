package formfile

import "slices"

// Changed returns the sorted names of fields whose value differs between
// prev and next, including fields present in only one of them.
func Changed(prev, next map[string]string) []string {
	var out []string
	for name, v := range next {
		if old, ok := prev[name]; !ok || old != v {
			out = append(out, name)
		}
	}
	for name := range prev {
		if _, ok := next[name]; !ok {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}
