package analyzer

import (
	"credit-scan/internal/catalog"
	"credit-scan/internal/matcher"
	"credit-scan/internal/model"
)

// Analyzer runs the registered passes over a unit in a fixed order and
// concatenates their findings. Overlapping findings across passes are
// preserved on purpose: each pass answers a different question about
// the same text, and consumers rank or dedup by their own policy.
type Analyzer struct {
	cat    *catalog.Catalog
	passes []model.Pass
}

// New builds the standard pipeline: statement scan, field references,
// table references, then the banned-object identity check.
func New(cat *catalog.Catalog, reg *catalog.Registry) *Analyzer {
	a := &Analyzer{cat: cat}
	a.Register(matcher.NewStatementMatcher(cat))
	a.Register(matcher.NewFieldRefMatcher(cat))
	a.Register(matcher.NewTableRefMatcher(cat))
	a.Register(matcher.NewObjectChecker(reg))
	return a
}

func (a *Analyzer) Register(p model.Pass) {
	a.passes = append(a.passes, p)
}

// Analyze returns the unit's complete ordered finding list: pass order
// first, discovery order within a pass. Text findings are resolved
// against the replacement catalog here; a key with no entry is marked
// ambiguous. Object findings carry their note from the registry and
// pass through untouched. An empty unit simply yields no findings.
func (a *Analyzer) Analyze(u *model.Unit) []model.Finding {
	var all []model.Finding
	for _, p := range a.passes {
		for _, f := range p.Scan(u) {
			if f.Kind != model.ScanObjectRef {
				if text, ok := a.cat.Replacement(f.Key); ok {
					f.Suggested = text
				} else {
					f.Ambiguous = true
				}
			}
			all = append(all, f)
		}
	}
	return all
}

// AnalyzeUnit is Analyze packaged with its input for reporting
func (a *Analyzer) AnalyzeUnit(u model.Unit) model.UnitResult {
	return model.UnitResult{Unit: u, Findings: a.Analyze(&u)}
}

// AnalyzeBatch analyzes an ordered collection of units and returns the
// wire representation for each, in input order. Units are independent;
// the loop is sequential because a single scan is fast relative to any
// request timeout.
func (a *Analyzer) AnalyzeBatch(units []model.Unit) []model.AnnotatedUnit {
	results := make([]model.AnnotatedUnit, 0, len(units))
	for _, u := range units {
		results = append(results, a.AnalyzeUnit(u).Annotated())
	}
	return results
}
