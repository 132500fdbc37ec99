package matcher

import (
	"regexp"
	"strings"

	"credit-scan/internal/catalog"
	"credit-scan/internal/model"
)

// FieldRefMatcher scans the whole unit text for TABLE-FIELD token
// pairs from the closed vocabularies, regardless of surrounding
// statement structure. Each occurrence is one finding whose span is
// the exact token pair.
type FieldRefMatcher struct {
	re *regexp.Regexp
}

func NewFieldRefMatcher(cat *catalog.Catalog) *FieldRefMatcher {
	if len(cat.Tables()) == 0 || len(cat.Fields()) == 0 {
		return &FieldRefMatcher{}
	}
	re := regexp.MustCompile(
		`(?i)\b(` + alternation(cat.Tables()) + `)-(` + alternation(cat.Fields()) + `)\b`)
	return &FieldRefMatcher{re: re}
}

func (m *FieldRefMatcher) Name() string { return "field-reference" }

func (m *FieldRefMatcher) Scan(u *model.Unit) []model.Finding {
	if m.re == nil {
		return nil
	}

	var findings []model.Finding
	for _, loc := range m.re.FindAllStringSubmatchIndex(u.Code, -1) {
		table := strings.ToUpper(u.Code[loc[2]:loc[3]])
		field := strings.ToUpper(u.Code[loc[4]:loc[5]])
		findings = append(findings, model.Finding{
			Text:  u.Code[loc[0]:loc[1]],
			Kind:  model.ScanFieldRef,
			Key:   table + "-" + field,
			Start: loc[0],
			End:   loc[1],
		})
	}
	return findings
}

// TableRefMatcher scans the whole unit text for bare mentions of
// obsolete table names. It intentionally overlaps with the other
// passes: a table inside a statement or a TABLE-FIELD pair still
// counts as a mention here.
type TableRefMatcher struct {
	re *regexp.Regexp
}

func NewTableRefMatcher(cat *catalog.Catalog) *TableRefMatcher {
	if len(cat.Tables()) == 0 {
		return &TableRefMatcher{}
	}
	re := regexp.MustCompile(`(?i)\b(` + alternation(cat.Tables()) + `)\b`)
	return &TableRefMatcher{re: re}
}

func (m *TableRefMatcher) Name() string { return "table-reference" }

func (m *TableRefMatcher) Scan(u *model.Unit) []model.Finding {
	if m.re == nil {
		return nil
	}

	var findings []model.Finding
	for _, loc := range m.re.FindAllStringIndex(u.Code, -1) {
		findings = append(findings, model.Finding{
			Text:  u.Code[loc[0]:loc[1]],
			Kind:  model.ScanTableRef,
			Key:   strings.ToUpper(u.Code[loc[0]:loc[1]]),
			Start: loc[0],
			End:   loc[1],
		})
	}
	return findings
}
