package affinity

import (
	"math/bits"
	"strings"
)

// Set is a bit mask over the twelve categories. Bit i is set when
// Category(i) is a member. The zero value is the empty set.
type Set uint16

// SetOf builds a set from the given categories. Duplicates collapse.
func SetOf(cs ...Category) Set {
	var s Set
	for _, c := range cs {
		s = s.Add(c)
	}
	return s
}

// Add returns s with c included. It panics on an invalid category.
func (s Set) Add(c Category) Set {
	if !c.Valid() {
		panic("affinity: add of invalid " + c.String())
	}
	return s | 1<<c
}

// Has reports whether c is a member of s.
func (s Set) Has(c Category) bool {
	return c.Valid() && s&(1<<c) != 0
}

// Union returns the categories present in either set.
func (s Set) Union(o Set) Set {
	return s | o
}

// Len returns the cardinality of s.
func (s Set) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Members lists the categories of s in canonical order.
func (s Set) Members() []Category {
	out := make([]Category, 0, s.Len())
	for c := Category(0); c < NumCategories; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	names := make([]string, 0, s.Len())
	for _, c := range s.Members() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}
