package matcher

import (
	"regexp"

	"credit-scan/internal/catalog"
	"credit-scan/internal/model"
)

// A statement span opens on one of the four data-manipulation keywords
// and runs non-greedily to the next period terminator, or to the end
// of the text when none follows.
var stmtRe = regexp.MustCompile(`(?is)\b(select|update|insert|delete)\b.+?(?:\.|\z)`)

// StatementMatcher locates data-manipulation statement spans and tests
// each span against the obsolete table and field vocabularies. A table
// hit combined with one or more field hits yields one TABLE-FIELD
// finding per pair; a table hit with no field yields a bare-table
// finding. The span reported is always the whole statement, since the
// remediation target is the statement, not the single token.
type StatementMatcher struct {
	cat      *catalog.Catalog
	tablePat map[string]*regexp.Regexp
	fieldPat map[string]*regexp.Regexp
}

func NewStatementMatcher(cat *catalog.Catalog) *StatementMatcher {
	m := &StatementMatcher{
		cat:      cat,
		tablePat: make(map[string]*regexp.Regexp, len(cat.Tables())),
		fieldPat: make(map[string]*regexp.Regexp, len(cat.Fields())),
	}
	for _, t := range cat.Tables() {
		m.tablePat[t] = wordPattern(t)
	}
	for _, f := range cat.Fields() {
		m.fieldPat[f] = wordPattern(f)
	}
	return m
}

func (m *StatementMatcher) Name() string { return "statement" }

func (m *StatementMatcher) Scan(u *model.Unit) []model.Finding {
	var findings []model.Finding

	src := u.Code
	for _, loc := range stmtRe.FindAllStringIndex(src, -1) {
		span := src[loc[0]:loc[1]]

		// Vocabulary slices keep declaration order, so repeated runs
		// always emit findings in the same order.
		for _, t := range m.cat.Tables() {
			if !m.tablePat[t].MatchString(span) {
				continue
			}
			fieldFound := false
			for _, f := range m.cat.Fields() {
				if m.fieldPat[f].MatchString(span) {
					findings = append(findings, model.Finding{
						Text:  span,
						Kind:  model.ScanStatement,
						Key:   t + "-" + f,
						Start: loc[0],
						End:   loc[1],
					})
					fieldFound = true
				}
			}
			if !fieldFound {
				findings = append(findings, model.Finding{
					Text:  span,
					Kind:  model.ScanStatement,
					Key:   t,
					Start: loc[0],
					End:   loc[1],
				})
			}
		}
	}

	return findings
}
