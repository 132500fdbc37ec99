package catalog

import "strings"

// Catalog maps obsolete-object keys (a bare table name, or a
// TABLE-FIELD composite) to remediation text, and carries the closed
// table/field vocabularies the matchers draw from. It is populated
// once and never mutated afterwards; lookups are safe from any number
// of goroutines.
type Catalog struct {
	replacements map[string]string
	tables       []string
	fields       []string
}

// New returns the catalog for the S/4HANA credit-management migration
// (OSS Notes 2706489 and 2227014).
func New() *Catalog {
	return NewWith(defaultReplacements, defaultTables, defaultFields)
}

// NewWith builds a catalog from caller-provided tables. Keys are
// canonicalized to upper case. Intended for tests that need a
// substitute vocabulary.
func NewWith(replacements map[string]string, tables, fields []string) *Catalog {
	c := &Catalog{
		replacements: make(map[string]string, len(replacements)),
		tables:       make([]string, len(tables)),
		fields:       make([]string, len(fields)),
	}
	for k, v := range replacements {
		c.replacements[strings.ToUpper(k)] = v
	}
	for i, t := range tables {
		c.tables[i] = strings.ToUpper(t)
	}
	for i, f := range fields {
		c.fields[i] = strings.ToUpper(f)
	}
	return c
}

// Replacement resolves an obsolete-object key to its remediation text.
// The second return is false when the catalog has no entry, which
// downstream surfaces as an ambiguous finding.
func (c *Catalog) Replacement(key string) (string, bool) {
	text, ok := c.replacements[strings.ToUpper(key)]
	return text, ok
}

// Tables returns the obsolete table vocabulary in declaration order.
// Callers must not modify the returned slice.
func (c *Catalog) Tables() []string { return c.tables }

// Fields returns the obsolete field vocabulary in declaration order.
// Callers must not modify the returned slice.
func (c *Catalog) Fields() []string { return c.fields }

var defaultReplacements = map[string]string{
	"KNKK-KNKLI":  "UKMBP_CMS-PARTNER / UKMBP_CMS_SGM-PARTNER (Business Partner key)",
	"KNKK-KLIMK":  "UKMBP_CMS_SGM-CREDIT_LIMIT (Credit Limit, per segment)",
	"KNKK-CRBLB":  "UKMBP_CMS_SGM-XBLOCKED (Blocked in Credit Mgmt)",
	"KNKK-CTLPC":  "UKMBP_CMS-RISK_CLASS (Risk Category)",
	"KNKK-SAUFT":  "Calculated dynamically from UKM_ITEM (COMM_TYP 100, 400, 500) – See Note 2508755",
	"KNKK-NXTRV":  "No direct equivalent – see KBA 2371714",
	"KNKA":        "No direct equivalent – Main Segment (0000) aggregates exposure (Note 2801882)",
	"T024P":       "BUT050 (RelCat TUKMSB0 – 'Credit Mgmt is managed by')",
	"T024B-SBGRP": "BUT050 (RelCat TUKMSBG – 'is in Credit Analyst Group')",
	"T691B":       "Obsolete – not carried forward",
	"VBAK-SBGRP":  "Obsolete – not filled in FSCM",
	"VBAK-GRUPP":  "Obsolete – not filled in FSCM",
}

var defaultTables = []string{"KNKK", "KNKA", "T024B", "T024P", "T691B", "VBAK"}

var defaultFields = []string{"KNKLI", "KLIMK", "CRBLB", "CTLPC", "SAUFT", "NXTRV", "SBGRP", "GRUPP"}
