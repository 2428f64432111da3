// Package affinity holds the elemental affinity chart: the twelve categories,
// the four directed relation kinds between them, and the fixed table that
// maps every category to its four relation lists.
package affinity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a name does not match any category.
var ErrUnknownCategory = errors.New("unknown category")

// ErrUnknownKind is returned when a name does not match any relation kind.
var ErrUnknownKind = errors.New("unknown relation kind")

// Category is one of the twelve fixed elements of the chart.
type Category uint8

// Categories in canonical order. The order drives combination generation
// and therefore the order in which matches are reported.
const (
	Nature Category = iota
	Air
	Water
	Light
	Energy
	Psi
	Stone
	Ice
	Fire
	Dark
	Chaos
	Metal
)

// NumCategories is the size of the chart.
const NumCategories = 12

var categoryNames = [NumCategories]string{
	"Nature", "Air", "Water", "Light", "Energy", "Psi",
	"Stone", "Ice", "Fire", "Dark", "Chaos", "Metal",
}

// All returns every category in canonical order. The returned slice is a
// fresh copy.
func All() []Category {
	out := make([]Category, NumCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c is one of the twelve categories.
func (c Category) Valid() bool {
	return c < NumCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a category by name, ignoring case and surrounding
// whitespace.
func ParseCategory(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for i, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// RelationKind selects one of the four directed relation lists.
type RelationKind uint8

// Relation kinds in report order.
const (
	EffectiveAgainst RelationKind = iota
	IneffectiveAgainst
	ResilientTo
	WeakTo
)

// NumKinds is the number of relation kinds per category.
const NumKinds = 4

var kindNames = [NumKinds]string{
	"effective_against",
	"ineffective_against",
	"resilient_to",
	"weak_to",
}

var kindLabels = [NumKinds]string{
	"Effective against",
	"Ineffective against",
	"Resilient to",
	"Weak to",
}

// Kinds returns the relation kinds in report order.
func Kinds() []RelationKind {
	return []RelationKind{EffectiveAgainst, IneffectiveAgainst, ResilientTo, WeakTo}
}

// Valid reports whether k is a known relation kind.
func (k RelationKind) Valid() bool {
	return k < NumKinds
}

// String returns the snake_case identifier used in machine-readable output.
func (k RelationKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("RelationKind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Label returns the human-readable heading for k.
func (k RelationKind) Label() string {
	if !k.Valid() {
		return k.String()
	}
	return kindLabels[k]
}

// ParseRelationKind accepts either the identifier ("weak_to"), the label
// ("Weak to") or a hyphenated form ("weak-to").
func ParseRelationKind(s string) (RelationKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	for i, n := range kindNames {
		if n == name {
			return RelationKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ErrDuplicateMember is returned when a member list names a category twice.
var ErrDuplicateMember = errors.New("duplicate member")

// ParseMembers resolves a list of category names, preserving order. Every
// name must be a known category and appear at most once.
func ParseMembers(names []string) ([]Category, error) {
	var seen Set
	out := make([]Category, 0, len(names))
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return nil, err
		}
		if seen.Has(c) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, c)
		}
		seen = seen.Add(c)
		out = append(out, c)
	}
	return out, nil
}
