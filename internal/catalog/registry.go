package catalog

import "credit-scan/internal/model"

// EliminationNote is the fixed remediation attached to every banned
// object hit.
const EliminationNote = "Eliminate – Obsolete in S/4HANA Credit Management (2706489)"

// Registry holds the per-category lists of SAP-delivered objects that
// are themselves obsolete: the object must be eliminated, not merely
// its field references remediated. Like Catalog it is built once and
// read-only afterwards.
type Registry struct {
	banned map[model.Category][]string
}

// NewRegistry returns the banned-object registry for the credit
// migration.
func NewRegistry() *Registry {
	return NewRegistryWith(defaultBanned)
}

// NewRegistryWith builds a registry from caller-provided lists, for
// tests with substitute data.
func NewRegistryWith(banned map[model.Category][]string) *Registry {
	r := &Registry{banned: make(map[model.Category][]string, len(banned))}
	for cat, names := range banned {
		r.banned[cat] = append([]string(nil), names...)
	}
	return r
}

// Banned reports whether name is categorically banned in cat and, if
// so, returns the elimination note. Matching is exact and
// case-sensitive against the registry's stored casing; a category with
// no list simply never matches.
func (r *Registry) Banned(cat model.Category, name string) (string, bool) {
	for _, banned := range r.banned[cat] {
		if banned == name {
			return EliminationNote, true
		}
	}
	return "", false
}

var defaultBanned = map[model.Category][]string{
	model.CategoryProgram: {
		"MF01AO00", "MF02CO00", "RFCMCRCV", "RFCMDECV",
		"RFDKLI10", "RFDKLI20", "RFDKLI20_NACC",
		"RFDKLI30", "RFDKLI40", "RFDKLI40_NACC",
		"RFDKLI41", "RFDKLI41_NACC", "RFDKLI42",
		"RFDKLI43", "RFDKLI50", "RFDKLIAB",
		"RFDKLIAB_NACC", "RFDKVZ00_NACC",
	},
	model.CategoryTransaction: {"OB02", "S_ER9_11000074"},
	model.CategoryTable:       {"T024P", "T024B", "T691B", "KNKK", "KNKA"},
	model.CategoryView:        {"V_T024B"},
}
