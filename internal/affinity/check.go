package affinity

import "fmt"

// Severity grades a table diagnostic.
type Severity string

const (
	// SeverityError marks a defect in the table data.
	SeverityError Severity = "error"
	// SeverityNote marks an observation that is legal but worth surfacing,
	// such as a relation that is not mirrored by its inverse.
	SeverityNote Severity = "note"
)

// Issue is a single diagnostic produced by Check.
type Issue struct {
	Severity Severity
	Category Category
	Kind     RelationKind
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s %s: %s", i.Severity, i.Category, i.Kind, i.Message)
}

// Check inspects the table and returns its diagnostics in canonical
// category order. Duplicate entries within a list are errors. Relations that
// are not mirrored by the inverse kind are notes; the defending lists are
// authored data and are never derived from the attacking ones.
func (t *Table) Check() []Issue {
	var issues []Issue
	for _, c := range All() {
		for _, k := range Kinds() {
			seen := make(map[Category]bool)
			for _, x := range t.rels[c][k] {
				if seen[x] {
					issues = append(issues, Issue{
						Severity: SeverityError,
						Category: c,
						Kind:     k,
						Message:  fmt.Sprintf("duplicate entry %s", x),
					})
				}
				seen[x] = true
			}
		}
		issues = append(issues, t.mirrorIssues(c, ResilientTo, IneffectiveAgainst)...)
		issues = append(issues, t.mirrorIssues(c, WeakTo, EffectiveAgainst)...)
	}
	return issues
}

// mirrorIssues compares the defending list of c against the set of
// categories whose attacking list names c.
func (t *Table) mirrorIssues(c Category, defend, attack RelationKind) []Issue {
	var inverse Set
	for _, x := range All() {
		if t.masks[x][attack].Has(c) {
			inverse = inverse.Add(x)
		}
	}
	listed := t.masks[c][defend]

	var issues []Issue
	for _, x := range All() {
		switch {
		case listed.Has(x) && !inverse.Has(x):
			issues = append(issues, Issue{
				Severity: SeverityNote,
				Category: c,
				Kind:     defend,
				Message:  fmt.Sprintf("lists %s, but %s is not %s %s", x, x, attack, c),
			})
		case !listed.Has(x) && inverse.Has(x):
			issues = append(issues, Issue{
				Severity: SeverityNote,
				Category: c,
				Kind:     defend,
				Message:  fmt.Sprintf("omits %s, although %s is %s %s", x, x, attack, c),
			})
		}
	}
	return issues
}

// HasErrors reports whether any issue is error-severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
