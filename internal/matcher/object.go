package matcher

import (
	"credit-scan/internal/catalog"
	"credit-scan/internal/model"
)

// ObjectChecker tests whether the unit itself is a banned object: its
// declared name, under its category, appears in the registry. A hit
// always carries the registry's fixed elimination note, so object
// findings are never ambiguous.
type ObjectChecker struct {
	reg *catalog.Registry
}

func NewObjectChecker(reg *catalog.Registry) *ObjectChecker {
	return &ObjectChecker{reg: reg}
}

func (c *ObjectChecker) Name() string { return "object-reference" }

func (c *ObjectChecker) Scan(u *model.Unit) []model.Finding {
	name := u.DeclaredName()
	if name == "" {
		return nil
	}
	note, ok := c.reg.Banned(u.Type, name)
	if !ok {
		return nil
	}
	return []model.Finding{{
		Text:      name,
		Kind:      model.ScanObjectRef,
		Key:       string(u.Type) + "-" + name,
		Start:     0,
		End:       len(name),
		Suggested: note,
	}}
}
