package plaintext

// DiagnosticCode identifies a known-inconsistent flag combination.
type DiagnosticCode string

// Diagnostic codes returned by Check.
const (
	DiagBothStemModes      DiagnosticCode = "both_stem_modes"
	DiagRedundantLowercase DiagnosticCode = "redundant_lowercase"
	DiagStemBackMapping    DiagnosticCode = "stem_back_mapping"
)

// Diagnostic describes a flag combination that is redundant or
// unsupported. Diagnostics are advisory: they never alter behavior or
// block use, and callers decide whether to log them, surface them, or
// abort on them.
type Diagnostic struct {
	Code    DiagnosticCode
	Message string
}

// String returns the diagnostic in "code: message" form.
func (d Diagnostic) String() string {
	return string(d.Code) + ": " + d.Message
}

// Check reports known-inconsistent flag combinations. It doesn't check
// for every possible mistake, never fails, and has no side effects;
// calling it twice on the same flags yields the same diagnostics.
func (f Flags) Check() []Diagnostic {
	var diags []Diagnostic
	if f.StemOnce && f.StemFull {
		diags = append(diags, Diagnostic{
			Code:    DiagBothStemModes,
			Message: "StemOnce and StemFull are both set",
		})
	}
	if (f.StemOnce || f.StemFull) && f.Lowercase {
		diags = append(diags, Diagnostic{
			Code:    DiagRedundantLowercase,
			Message: "Lowercase is redundant because stemming already lowercases",
		})
	}
	if (f.StemOnce || f.StemFull) && f.BackMapping {
		diags = append(diags, Diagnostic{
			Code:    DiagStemBackMapping,
			Message: "BackMapping does not work in combination with stemming yet",
		})
	}
	return diags
}

// Check reports known-inconsistent combinations in the configuration's
// flags. See Flags.Check.
func (c Config) Check() []Diagnostic {
	return c.Flags.Check()
}
