// Package analyzer enumerates every five-member subset of the affinity chart
// and tallies how many categories each subset covers under each relation
// kind.
package analyzer

import (
	"github.com/papapumpkin/affinity/internal/affinity"
	"github.com/papapumpkin/affinity/internal/combo"
)

// SubsetSize is the number of members in every analyzed subset.
const SubsetSize = 5

// DefaultMatchSize is the effective_against union size that gets a subset
// reported.
const DefaultMatchSize = 7

// Buckets is the number of histogram buckets: union sizes 0 through 12.
const Buckets = affinity.NumCategories + 1

// Histogram counts subsets by union size.
type Histogram [Buckets]uint64

// Sum returns the total number of subsets counted.
func (h Histogram) Sum() uint64 {
	var n uint64
	for _, v := range h {
		n += v
	}
	return n
}

// Max returns the union size with the highest count. Ties go to the
// smaller size.
func (h Histogram) Max() int {
	best := 0
	for i, v := range h {
		if v > h[best] {
			best = i
		}
	}
	return best
}

// Sizes holds one union size per relation kind, indexed by RelationKind.
type Sizes [affinity.NumKinds]int

// Match is a subset whose effective_against union hit the match size.
type Match struct {
	Members []affinity.Category
	Sizes   Sizes
}

// Weaknesses returns the size of the subset's weak_to union.
func (m Match) Weaknesses() int {
	return m.Sizes[affinity.WeakTo]
}

// Options tunes a run.
type Options struct {
	// MatchSize is the exact effective_against union size to report.
	// It is taken literally; zero reports subsets that cover nothing.
	MatchSize int

	// OnMatch, if set, is called for each match as soon as it is found,
	// in generation order.
	OnMatch func(Match)
}

// DefaultOptions returns the options of the standard run: matches at
// DefaultMatchSize, no streaming callback.
func DefaultOptions() Options {
	return Options{MatchSize: DefaultMatchSize}
}

// Result is the outcome of a full run.
type Result struct {
	SubsetSize   int
	MatchSize    int
	Combinations int
	Histograms   [affinity.NumKinds]Histogram
	Matches      []Match
}

// Histogram returns the histogram for kind k.
func (r *Result) Histogram(k affinity.RelationKind) Histogram {
	return r.Histograms[k]
}

// Run enumerates every SubsetSize-member subset of the chart's categories
// in canonical order and returns the per-kind histograms and the matches.
func Run(table *affinity.Table, opts Options) Result {
	res := Result{
		SubsetSize: SubsetSize,
		MatchSize:  opts.MatchSize,
	}
	for members := range combo.Of(affinity.All(), SubsetSize) {
		sizes := UnionSizes(table, members)
		for k, size := range sizes {
			res.Histograms[k][size]++
		}
		res.Combinations++

		if sizes[affinity.EffectiveAgainst] != opts.MatchSize {
			continue
		}
		m := Match{Members: members, Sizes: sizes}
		res.Matches = append(res.Matches, m)
		if opts.OnMatch != nil {
			opts.OnMatch(m)
		}
	}
	return res
}

// Unions holds one union of relation lists per relation kind, indexed by
// RelationKind.
type Unions [affinity.NumKinds]affinity.Set

// Sizes returns the cardinality of each union.
func (u Unions) Sizes() Sizes {
	var sizes Sizes
	for k, set := range u {
		sizes[k] = set.Len()
	}
	return sizes
}

// UnionsOf unions the members' relation lists for every relation kind.
func UnionsOf(table *affinity.Table, members []affinity.Category) Unions {
	var u Unions
	for _, c := range members {
		for _, k := range affinity.Kinds() {
			u[k] = u[k].Union(table.Mask(c, k))
		}
	}
	return u
}

// UnionSizes returns, for each relation kind, how many distinct categories
// appear in the union of the members' relation lists.
func UnionSizes(table *affinity.Table, members []affinity.Category) Sizes {
	return UnionsOf(table, members).Sizes()
}
