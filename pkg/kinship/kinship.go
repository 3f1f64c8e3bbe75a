// Package kinship maps a relationship label onto the pair of directed edge
// labels that together represent one family link. The label always describes
// how the TARGET relates to the SOURCE ("Father" = target is source's
// father), so the forward label goes on the source→target edge and the
// reverse label on the target→source edge.
package kinship

// Pair holds the two labels written for one logical relationship.
type Pair struct {
	Forward string // stored on the source→target edge
	Reverse string // stored on the target→source edge
}

// ReverseFallback is the reverse label used for labels outside the
// enumerated set, which keeps Resolve total.
const ReverseFallback = "Related Person"

// Other is the catch-all relationship label offered in the UI.
const Other = "Other"

// pairs is the single canonical mapping, shared by the add and delete paths.
// Creation and deletion resolving through the same table is what keeps both
// edge rows of a relationship consistent.
var pairs = map[string]string{
	"Father":          "Child",
	"Mother":          "Child",
	"Husband":         "Wife",
	"Wife":            "Husband",
	"Son":             "Father",
	"Daughter":        "Mother",
	"Brother":         "Brother",
	"Sister":          "Sister",
	"Grandfather":     "Grandson",
	"Grandmother":     "Granddaughter",
	"Grandson":        "Grandfather",
	"Granddaughter":   "Grandmother",
	"Uncle":           "Nephew",
	"Aunt":            "Niece",
	"Nephew":          "Uncle",
	"Niece":           "Aunt",
	"Father-in-law":   "Son-in-law",
	"Mother-in-law":   "Daughter-in-law",
	"Son-in-law":      "Father-in-law",
	"Daughter-in-law": "Mother-in-law",
	Other:             Other,
}

// labels lists the enumerated options in the order the UI presents them.
var labels = []string{
	"Father", "Mother", "Husband", "Wife", "Son", "Daughter",
	"Brother", "Sister",
	"Grandfather", "Grandmother", "Grandson", "Granddaughter",
	"Uncle", "Aunt", "Nephew", "Niece",
	"Father-in-law", "Mother-in-law", "Son-in-law", "Daughter-in-law",
	Other,
}

// Resolve returns the forward/reverse label pair for a relationship label.
// It never fails: an unknown label is passed through as the forward label
// with ReverseFallback as its inverse.
func Resolve(label string) Pair {
	if reverse, ok := pairs[label]; ok {
		return Pair{Forward: label, Reverse: reverse}
	}
	return Pair{Forward: label, Reverse: ReverseFallback}
}

// Labels returns the enumerated relationship options for UI consumers.
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// IsKnown reports whether the label belongs to the enumerated set.
func IsKnown(label string) bool {
	_, ok := pairs[label]
	return ok
}
