package validate

// Report is the shared validator result: a pass/fail flag and the
// diagnostics explaining every failure. A Report with no diagnostics
// always has Passed true.
type Report struct {
	Passed      bool
	Diagnostics []string
}

func report(diagnostics []string) Report {
	return Report{Passed: len(diagnostics) == 0, Diagnostics: diagnostics}
}
