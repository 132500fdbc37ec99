package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"credit-scan/internal/model"
)

type ConsoleReporter struct {
	out io.Writer
}

func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

func (r *ConsoleReporter) Report(results []model.UnitResult) error {
	total := 0
	for _, res := range results {
		if len(res.Findings) == 0 {
			continue
		}
		total += len(res.Findings)

		fmt.Fprintf(r.out, "%s\n", color.New(color.Bold).Sprint(unitLabel(res.Unit)))
		for _, f := range res.Findings {
			kc := kindColor(f)
			fmt.Fprintf(r.out, "  [%s] %s (chars %d-%d)\n",
				kc.Sprint(f.Kind), f.Key, f.Start, f.End)
			fmt.Fprintf(r.out, "\tCode: %s\n", color.CyanString(truncate(f.Text, 80)))
			if f.Ambiguous {
				fmt.Fprintf(r.out, "\tReplacement: %s\n", color.YellowString("unknown (not in catalog)"))
			} else {
				fmt.Fprintf(r.out, "\tReplacement: %s\n", f.Suggested)
			}
		}
		fmt.Fprintln(r.out)
	}

	if total == 0 {
		fmt.Fprintln(r.out, color.GreenString("✔ No obsolete credit-management references found."))
		return nil
	}

	fmt.Fprintf(r.out, "\n%s found %d obsolete references.\n", color.RedString("✘"), total)
	return nil
}

func unitLabel(u model.Unit) string {
	if u.PgmName != "" && u.IncName != "" && u.PgmName != u.IncName {
		return fmt.Sprintf("%s / %s", u.PgmName, u.IncName)
	}
	if u.PgmName != "" {
		return u.PgmName
	}
	return u.IncName
}

func kindColor(f model.Finding) *color.Color {
	switch {
	case f.Kind == model.ScanObjectRef:
		return color.New(color.FgRed, color.Bold)
	case f.Ambiguous:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgBlue, color.Bold)
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
