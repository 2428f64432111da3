package affinity

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAll_CanonicalOrder(t *testing.T) {
	t.Parallel()

	want := []Category{Nature, Air, Water, Light, Energy, Psi, Stone, Ice, Fire, Dark, Chaos, Metal}
	if diff := cmp.Diff(want, All()); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}

	all := All()
	all[0] = Metal
	if All()[0] != Nature {
		t.Error("mutating the result of All() changed later calls")
	}
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	if got := Psi.String(); got != "Psi" {
		t.Errorf("Psi.String() = %q, want %q", got, "Psi")
	}
	if got := Category(12).String(); got != "Category(12)" {
		t.Errorf("Category(12).String() = %q, want %q", got, "Category(12)")
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"Nature", Nature, false},
		{"metal", Metal, false},
		{"  CHAOS ", Chaos, false},
		{"Poison", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownCategory) {
				t.Errorf("ParseCategory(%q) error = %v, want ErrUnknownCategory", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseRelationKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want RelationKind
	}{
		{"effective_against", EffectiveAgainst},
		{"Ineffective against", IneffectiveAgainst},
		{"resilient-to", ResilientTo},
		{"WEAK_TO", WeakTo},
	}
	for _, tt := range tests {
		got, err := ParseRelationKind(tt.in)
		if err != nil {
			t.Errorf("ParseRelationKind(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRelationKind(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseRelationKind("strong_to"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseRelationKind(strong_to) error = %v, want ErrUnknownKind", err)
	}
}

func TestRelationKind_Labels(t *testing.T) {
	t.Parallel()

	var got []string
	for _, k := range Kinds() {
		got = append(got, k.Label())
	}
	want := []string{"Effective against", "Ineffective against", "Resilient to", "Weak to"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestSet_Operations(t *testing.T) {
	t.Parallel()

	s := SetOf(Fire, Water, Fire)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(Fire) || !s.Has(Water) || s.Has(Ice) {
		t.Errorf("membership wrong for %s", s)
	}

	u := s.Union(SetOf(Ice, Water))
	if diff := cmp.Diff([]Category{Water, Ice, Fire}, u.Members()); diff != "" {
		t.Errorf("Union members mismatch (-want +got):\n%s", diff)
	}
	if got := u.String(); got != "{Water, Ice, Fire}" {
		t.Errorf("String() = %q", got)
	}

	var full Set
	for _, c := range All() {
		full = full.Add(c)
	}
	if full.Len() != NumCategories {
		t.Errorf("full set Len() = %d, want %d", full.Len(), NumCategories)
	}
	if (Set(0)).Len() != 0 {
		t.Error("empty set has members")
	}
}

func TestSet_AddInvalidPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Add(Category(12)) did not panic")
		}
	}()
	_ = Set(0).Add(Category(12))
}

func TestTable_LookupIsTotal(t *testing.T) {
	t.Parallel()

	table := Default()
	for _, c := range All() {
		for _, k := range Kinds() {
			list := table.RelationsOf(c, k)
			if len(list) == 0 {
				t.Errorf("%s %s is empty", c, k)
			}
			if table.Mask(c, k) != SetOf(list...) {
				t.Errorf("%s %s mask does not match its list", c, k)
			}
		}
	}
}

func TestTable_VerbatimEntries(t *testing.T) {
	t.Parallel()

	table := Default()
	tests := []struct {
		c    Category
		k    RelationKind
		want []Category
	}{
		{Nature, EffectiveAgainst, []Category{Psi, Chaos}},
		{Air, IneffectiveAgainst, []Category{Energy, Stone, Ice, Fire, Dark}},
		{Energy, ResilientTo, []Category{Air, Water, Psi, Metal}},
		{Light, WeakTo, []Category{Psi}},
		{Psi, IneffectiveAgainst, []Category{Nature, Air, Energy, Dark, Chaos, Metal}},
		{Ice, ResilientTo, []Category{Nature, Air, Water, Energy, Metal}},
		{Dark, ResilientTo, []Category{Nature, Air, Psi, Stone, Fire}},
		{Metal, WeakTo, []Category{Air, Water, Energy, Ice}},
		{Metal, ResilientTo, []Category{Nature, Light, Psi, Fire}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, table.RelationsOf(tt.c, tt.k)); diff != "" {
			t.Errorf("%s %s mismatch (-want +got):\n%s", tt.c, tt.k, diff)
		}
	}
}

func TestTable_RelationsOfReturnsCopy(t *testing.T) {
	t.Parallel()

	table := Default()
	list := table.RelationsOf(Water, EffectiveAgainst)
	list[0] = Nature
	if got := table.RelationsOf(Water, EffectiveAgainst)[0]; got != Fire {
		t.Errorf("table mutated through returned slice: first entry = %s", got)
	}
}

func TestTable_InvalidLookupPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		c    Category
		k    RelationKind
	}{
		{"category", Category(99), EffectiveAgainst},
		{"kind", Air, RelationKind(7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Errorf("RelationsOf(%d, %d) did not panic", tt.c, tt.k)
				}
			}()
			Default().RelationsOf(tt.c, tt.k)
		})
	}
}

func TestNewTable_MissingEntriesAreEmpty(t *testing.T) {
	t.Parallel()

	table := NewTable(map[Category]Relations{
		Fire: {EffectiveAgainst: {Ice}},
	})
	if got := table.RelationsOf(Water, WeakTo); len(got) != 0 {
		t.Errorf("Water weak_to = %v, want empty", got)
	}
	if !table.Mask(Fire, EffectiveAgainst).Has(Ice) {
		t.Error("Fire effective_against lost Ice")
	}
}

func TestCheck_DefaultTable(t *testing.T) {
	t.Parallel()

	issues := Default().Check()
	if HasErrors(issues) {
		t.Fatalf("default table has errors: %v", issues)
	}
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}

	got := issues[0]
	if got.Severity != SeverityNote || got.Category != Metal || got.Kind != WeakTo {
		t.Errorf("issue = %+v, want a Metal weak_to note", got)
	}
	if !strings.Contains(got.Message, "Ice") {
		t.Errorf("message %q does not name Ice", got.Message)
	}
}

func TestCheck_Duplicates(t *testing.T) {
	t.Parallel()

	table := NewTable(map[Category]Relations{
		Stone: {EffectiveAgainst: {Air, Air}},
	})
	issues := table.Check()
	if !HasErrors(issues) {
		t.Fatalf("expected an error for duplicate entry, got %v", issues)
	}

	var dup *Issue
	for i := range issues {
		if issues[i].Severity == SeverityError {
			dup = &issues[i]
		}
	}
	if dup.Category != Stone || dup.Kind != EffectiveAgainst {
		t.Errorf("error issue = %+v, want Stone effective_against", *dup)
	}
}

func TestCheck_MirrorOmission(t *testing.T) {
	t.Parallel()

	table := NewTable(map[Category]Relations{
		Fire:  {IneffectiveAgainst: {Water}},
		Water: {},
	})
	issues := table.Check()
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].Category != Water || issues[0].Kind != ResilientTo {
		t.Errorf("issue = %+v, want Water resilient_to", issues[0])
	}
	if !strings.HasPrefix(issues[0].Message, "omits Fire") {
		t.Errorf("message = %q", issues[0].Message)
	}
}

func TestParseMembers(t *testing.T) {
	t.Parallel()

	got, err := ParseMembers([]string{"ice", "Nature", "DARK"})
	if err != nil {
		t.Fatalf("ParseMembers: %v", err)
	}
	if diff := cmp.Diff([]Category{Ice, Nature, Dark}, got); diff != "" {
		t.Errorf("members mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseMembers([]string{"Fire", "fire"}); !errors.Is(err, ErrDuplicateMember) {
		t.Errorf("duplicate error = %v, want ErrDuplicateMember", err)
	}
	if _, err := ParseMembers([]string{"Fire", "Wood"}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown error = %v, want ErrUnknownCategory", err)
	}
}
