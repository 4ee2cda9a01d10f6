// Package matches pairs up per-category match counts from two sources and
// runs Fisher's exact test on each category.
package matches

import "sort"

// Counts maps a category name (e.g. a Pfam family) to the number of rows in
// which it was observed.
type Counts map[string]int

// Source is one loaded table: its category counts and the number of rows
// that were scanned.
type Source struct {
	Name   string
	Counts Counts
	Total  int
}

// Pair holds a category's count in the first and the second source.
type Pair struct {
	A int
	B int
}

// Merged maps each category seen in either source to its pair of counts.
type Merged map[string]Pair

// Merge is the union of both key sets; a category absent from one source
// counts as 0 there.
func Merge(a, b Counts) Merged {
	out := make(Merged, len(a)+len(b))

	for key, count := range a {
		p := out[key]
		p.A = count
		out[key] = p
	}

	for key, count := range b {
		p := out[key]
		p.B = count
		out[key] = p
	}

	return out
}

// Categories returns the merged category names in sorted order.
func (m Merged) Categories() []string {
	out := make([]string, 0, len(m))
	for key := range m {
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}
