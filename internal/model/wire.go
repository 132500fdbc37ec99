package model

import "strings"

// FindingRecord is the external representation of a Finding on the
// remediation endpoint. Table, UsedFields and SuggestedFields are
// reserved: they are always null / empty and kept only for interface
// compatibility.
type FindingRecord struct {
	Table              *string  `json:"table"`
	TargetType         string   `json:"target_type"`
	TargetName         string   `json:"target_name"`
	StartCharInUnit    int      `json:"start_char_in_unit"`
	EndCharInUnit      int      `json:"end_char_in_unit"`
	UsedFields         []string `json:"used_fields"`
	Ambiguous          bool     `json:"ambiguous"`
	SuggestedStatement *string  `json:"suggested_statement"`
	SuggestedFields    *string  `json:"suggested_fields"`
}

// AnnotatedUnit is the echoed unit plus its ordered finding records
type AnnotatedUnit struct {
	Unit
	Findings []FindingRecord `json:"mb_txn_usage"`
}

// Record converts an internal finding into its wire form. Text
// findings report target type TABLE or FIELD depending on whether the
// key carries a field component; object findings report the unit's own
// category.
func (f Finding) Record(unitType Category) FindingRecord {
	targetType := "TABLE"
	switch {
	case f.Kind == ScanObjectRef:
		targetType = string(unitType)
	case strings.Contains(f.Key, "-"):
		targetType = "FIELD"
	}

	var suggested *string
	if !f.Ambiguous {
		s := f.Suggested
		suggested = &s
	}

	return FindingRecord{
		TargetType:         targetType,
		TargetName:         f.Key,
		StartCharInUnit:    f.Start,
		EndCharInUnit:      f.End,
		UsedFields:         []string{},
		Ambiguous:          f.Ambiguous,
		SuggestedStatement: suggested,
	}
}

// Annotated builds the wire representation of a unit result
func (r UnitResult) Annotated() AnnotatedUnit {
	records := make([]FindingRecord, 0, len(r.Findings))
	for _, f := range r.Findings {
		records = append(records, f.Record(r.Unit.Type))
	}
	return AnnotatedUnit{Unit: r.Unit, Findings: records}
}
