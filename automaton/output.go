// SPDX-License-Identifier: MIT

package automaton

// outputSet is the owned set of pattern ids recognised at one node.
// Order is insertion order; after construction that is longest pattern
// first, because a node's own pattern is inserted before the inherited
// ones and inherited sets are themselves ordered that way.
type outputSet []int

// has reports whether id is in the set. Sets are tiny (bounded by trie
// depth), so a linear scan beats hashing.
func (s outputSet) has(id int) bool {
	for _, x := range s {
		if x == id {
			return true
		}
	}
	return false
}

// insert adds id to the set in place.
func (s *outputSet) insert(id int) {
	if !s.has(id) {
		*s = append(*s, id)
	}
}

// insertAll adds every element of other to the set in place. The receiver
// is updated through the pointer; there is no value-returning union.
func (s *outputSet) insertAll(other outputSet) {
	for _, id := range other {
		s.insert(id)
	}
}
