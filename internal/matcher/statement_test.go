package matcher

import (
	"testing"

	"credit-scan/internal/catalog"
	"credit-scan/internal/model"
)

func TestStatementMatcher_Scan(t *testing.T) {
	m := NewStatementMatcher(catalog.New())

	tests := []struct {
		name     string
		code     string
		wantKeys []string
	}{
		{
			name:     "UPDATE with obsolete table and field",
			code:     "UPDATE KNKK SET KLIMK = '100'.",
			wantKeys: []string{"KNKK-KLIMK"},
		},
		{
			name:     "Table without any obsolete field",
			code:     "SELECT * FROM KNKA INTO lt_knka.",
			wantKeys: []string{"KNKA"},
		},
		{
			name:     "Multiple fields in one statement",
			code:     "UPDATE KNKK SET KLIMK = '1' CTLPC = 'A'.",
			wantKeys: []string{"KNKK-KLIMK", "KNKK-CTLPC"},
		},
		{
			name:     "Multiple tables cross every matched field",
			code:     "UPDATE VBAK SET SBGRP = 'X' WHERE KNKK = 1.",
			wantKeys: []string{"KNKK-SBGRP", "VBAK-SBGRP"},
		},
		{
			name:     "Statement without terminator runs to end of text",
			code:     "select * from t691b",
			wantKeys: []string{"T691B"},
		},
		{
			name:     "Two statements",
			code:     "SELECT * FROM KNKK. UPDATE T691B SET RELEVANT = 'X'.",
			wantKeys: []string{"KNKK", "T691B"},
		},
		{
			name:     "Case-insensitive keyword and table",
			code:     "update knkk set klimk = lv_limit.",
			wantKeys: []string{"KNKK-KLIMK"},
		},
		{
			name:     "Reference outside a statement is ignored here",
			code:     "WRITE knkk-klimk.",
			wantKeys: nil,
		},
		{
			name:     "Statement touching no obsolete table",
			code:     "SELECT * FROM ZCUSTOM INTO lt_custom.",
			wantKeys: nil,
		},
		{
			name:     "Table name inside a longer identifier does not count",
			code:     "SELECT * FROM zknkk INTO lt_knkk.",
			wantKeys: nil,
		},
		{
			name:     "Empty text",
			code:     "",
			wantKeys: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &model.Unit{Type: model.CategoryRawCode, Code: tt.code}
			findings := m.Scan(u)

			if len(findings) != len(tt.wantKeys) {
				t.Fatalf("Scan() got %d findings, want %d: %+v", len(findings), len(tt.wantKeys), findings)
			}
			for i, want := range tt.wantKeys {
				if findings[i].Key != want {
					t.Errorf("findings[%d].Key = %s, want %s", i, findings[i].Key, want)
				}
				if findings[i].Kind != model.ScanStatement {
					t.Errorf("findings[%d].Kind = %s, want %s", i, findings[i].Kind, model.ScanStatement)
				}
			}
		})
	}
}

func TestStatementMatcher_SpanCoversWholeStatement(t *testing.T) {
	m := NewStatementMatcher(catalog.New())
	code := "UPDATE KNKK SET KLIMK = '100'."

	findings := m.Scan(&model.Unit{Type: model.CategoryRawCode, Code: code})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}

	f := findings[0]
	if f.Start != 0 || f.End != len(code) {
		t.Errorf("span = (%d, %d), want (0, %d)", f.Start, f.End, len(code))
	}
	if f.Text != code {
		t.Errorf("Text = %q, want the full statement", f.Text)
	}
}

func TestStatementMatcher_StopsAtFirstTerminator(t *testing.T) {
	m := NewStatementMatcher(catalog.New())
	code := "UPDATE KNKK SET KLIMK = '1'. WRITE 'done'."

	findings := m.Scan(&model.Unit{Type: model.CategoryRawCode, Code: code})
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	want := "UPDATE KNKK SET KLIMK = '1'."
	if findings[0].Text != want {
		t.Errorf("Text = %q, want %q", findings[0].Text, want)
	}
}
