package model

// ScanKind identifies which pass produced a finding
type ScanKind string

const (
	ScanStatement ScanKind = "statement"
	ScanFieldRef  ScanKind = "field-reference"
	ScanTableRef  ScanKind = "table-reference"
	ScanObjectRef ScanKind = "object-reference"
)

// Category is the kind of a source unit as declared by the caller
type Category string

const (
	CategoryProgram     Category = "PROG"
	CategoryTransaction Category = "TRAN"
	CategoryTable       Category = "TABL"
	CategoryView        Category = "VIEW"
	CategoryRawCode     Category = "raw_code"
)

// Unit is a caller-supplied source artifact: a program, an include, or
// a raw code snippet. Units are immutable inputs; analysis derives
// findings from them, it never mutates them.
type Unit struct {
	PgmName             string   `json:"pgm_name"`
	IncName             string   `json:"inc_name"`
	Type                Category `json:"type"`
	Name                *string  `json:"name"`
	ClassImplementation *string  `json:"class_implementation"`
	StartLine           *int     `json:"start_line"`
	EndLine             *int     `json:"end_line"`
	Code                string   `json:"code"`
}

// DeclaredName returns the unit's own name: the declared name when the
// caller provided one, otherwise the include name.
func (u *Unit) DeclaredName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.IncName
}

// Finding is one reported occurrence of an obsolete-object reference.
// Key is either a bare table name or a TABLE-FIELD composite in
// canonical upper case (object findings use CATEGORY-NAME). Start/End
// are character offsets into the unit's source text. Ambiguous means
// the replacement catalog has no entry for Key; Suggested is empty in
// that case.
type Finding struct {
	Text      string
	Kind      ScanKind
	Key       string
	Start     int
	End       int
	Ambiguous bool
	Suggested string
}

// UnitResult pairs a unit with the ordered findings derived from it.
type UnitResult struct {
	Unit     Unit
	Findings []Finding
}
