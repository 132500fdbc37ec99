package model

// Pass is one lexical scan over a unit. Each pass is a pure function
// from the unit's text (and the catalogs it was constructed with) to
// an ordered finding list; passes do not resolve remediation text.
type Pass interface {
	// Name returns the unique identifier of the pass
	Name() string
	// Scan examines the unit and returns findings in discovery order
	Scan(u *Unit) []Finding
}

// Reporter defines how to output results
type Reporter interface {
	Report(results []UnitResult) error
}
