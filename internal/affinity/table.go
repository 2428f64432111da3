package affinity

// Relations holds the four directed relation lists of one category, indexed
// by RelationKind.
type Relations [NumKinds][]Category

// Table maps every category to its relations. A Table is immutable once
// built; all accessors return copies.
type Table struct {
	rels  [NumCategories]Relations
	masks [NumCategories][NumKinds]Set
}

// NewTable builds a table from per-category relations. Categories missing
// from rels get four empty lists. Lists are copied.
func NewTable(rels map[Category]Relations) *Table {
	t := &Table{}
	for c, r := range rels {
		if !c.Valid() {
			panic("affinity: table entry for invalid " + c.String())
		}
		for k := range NumKinds {
			list := append([]Category(nil), r[k]...)
			t.rels[c][k] = list
			t.masks[c][k] = SetOf(list...)
		}
	}
	return t
}

// RelationsOf returns the ordered relation list of kind k for category c.
// It panics if either argument is out of range.
func (t *Table) RelationsOf(c Category, k RelationKind) []Category {
	mustValid(c, k)
	return append([]Category(nil), t.rels[c][k]...)
}

// Mask returns the relation list of kind k for category c as a Set.
func (t *Table) Mask(c Category, k RelationKind) Set {
	mustValid(c, k)
	return t.masks[c][k]
}

func mustValid(c Category, k RelationKind) {
	if !c.Valid() {
		panic("affinity: lookup of invalid " + c.String())
	}
	if !k.Valid() {
		panic("affinity: lookup of invalid " + k.String())
	}
}

var defaultTable = NewTable(map[Category]Relations{
	Nature: {
		EffectiveAgainst:   {Psi, Chaos},
		IneffectiveAgainst: {Ice, Fire, Dark, Metal},
		ResilientTo:        {Psi, Chaos},
		WeakTo:             {Ice, Fire, Metal},
	},
	Air: {
		EffectiveAgainst:   {Water, Psi, Chaos, Metal},
		IneffectiveAgainst: {Energy, Stone, Ice, Fire, Dark},
		ResilientTo:        {Water, Psi, Chaos, Metal},
		WeakTo:             {Stone, Ice, Fire, Dark},
	},
	Water: {
		EffectiveAgainst:   {Fire, Dark, Metal},
		IneffectiveAgainst: {Air, Energy, Ice, Chaos},
		ResilientTo:        {Fire, Dark, Metal},
		WeakTo:             {Air, Energy, Ice, Chaos},
	},
	Light: {
		EffectiveAgainst:   {Stone, Fire, Dark, Chaos},
		IneffectiveAgainst: {Psi, Metal},
		ResilientTo:        {Stone, Fire, Dark, Chaos},
		WeakTo:             {Psi},
	},
	Energy: {
		EffectiveAgainst:   {Water, Psi, Metal},
		IneffectiveAgainst: {Stone, Ice},
		ResilientTo:        {Air, Water, Psi, Metal},
		WeakTo:             {Stone, Ice},
	},
	Psi: {
		EffectiveAgainst:   {Light, Stone, Ice},
		IneffectiveAgainst: {Nature, Air, Energy, Dark, Chaos, Metal},
		ResilientTo:        {Light, Stone, Ice},
		WeakTo:             {Nature, Air, Energy, Dark, Chaos, Metal},
	},
	Stone: {
		EffectiveAgainst:   {Air, Energy},
		IneffectiveAgainst: {Light, Psi, Dark},
		ResilientTo:        {Air, Energy, Ice},
		WeakTo:             {Light, Psi, Dark},
	},
	Ice: {
		EffectiveAgainst:   {Nature, Air, Water, Energy},
		IneffectiveAgainst: {Psi, Stone, Fire},
		ResilientTo:        {Nature, Air, Water, Energy, Metal},
		WeakTo:             {Psi, Fire},
	},
	Fire: {
		EffectiveAgainst:   {Nature, Air, Ice, Chaos},
		IneffectiveAgainst: {Water, Light, Dark, Metal},
		ResilientTo:        {Nature, Air, Ice, Chaos},
		WeakTo:             {Water, Light, Dark, Metal},
	},
	Dark: {
		EffectiveAgainst:   {Air, Psi, Stone, Fire},
		IneffectiveAgainst: {Water, Light},
		ResilientTo:        {Nature, Air, Psi, Stone, Fire},
		WeakTo:             {Water, Light},
	},
	Chaos: {
		EffectiveAgainst:   {Water, Psi},
		IneffectiveAgainst: {Nature, Air, Light, Fire},
		ResilientTo:        {Water, Psi},
		WeakTo:             {Nature, Air, Light, Fire},
	},
	Metal: {
		EffectiveAgainst:   {Nature, Psi, Fire},
		IneffectiveAgainst: {Air, Water, Energy, Ice},
		ResilientTo:        {Nature, Light, Psi, Fire},
		WeakTo:             {Air, Water, Energy, Ice},
	},
})

// Default returns the built-in affinity chart.
func Default() *Table {
	return defaultTable
}
