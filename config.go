package plaintext

// Flags are independent switches controlling the text-level transforms
// the extraction engine applies while emitting plaintext. No
// combination is rejected at construction time; known-inconsistent
// combinations are surfaced by Check.
type Flags struct {
	// NormalizeWhitespace collapses runs of whitespace into a single
	// space. Does not affect replacement tokens.
	NormalizeWhitespace bool

	// WrapTokens puts spaces before and after replacement tokens so
	// they cannot concatenate with adjacent text into one lexical
	// unit.
	WrapTokens bool

	// NormalizeUnicode maps non-ASCII characters to an
	// ASCII-approximating representation.
	NormalizeUnicode bool

	// StemOnce applies the morphological stemmer once to word tokens.
	StemOnce bool

	// StemFull applies the stemmer repeatedly until the token stops
	// changing.
	StemFull bool

	// Lowercase case-folds the text. The stemmer already lowercases,
	// so this is redundant when stemming is enabled.
	Lowercase bool

	// BackMapping maintains the mapping from plaintext offsets back to
	// the originating tree nodes. Not yet supported in combination
	// with stemming.
	BackMapping bool
}

// Config bundles one tag policy with one set of normalization flags.
// A Config is a value: immutable once constructed and shareable
// read-only across any number of concurrent extraction runs.
type Config struct {
	Policy Policy
	Flags  Flags
}

// DefaultConfig returns a configuration that does nothing fancy:
// whitespace collapsing and back-mapping on, everything else off, no
// tag or class rules.
func DefaultConfig() Config {
	return Config{
		Policy: Policy{
			TagRules:   map[string]Action{},
			ClassRules: map[string]Action{},
		},
		Flags: Flags{
			NormalizeWhitespace: true,
			BackMapping:         true,
		},
	}
}

// ScientificConfig returns the preset for LaTeXML-produced scientific
// and math documents. It starts from DefaultConfig and overrides:
// whitespace survives as-is (newlines are meaningful for
// tokenization), replacement tokens are wrapped in spaces (so e.g.
// "x" followed by a formula token cannot merge into the single word
// "xmathformula"), and Unicode is folded to ASCII. Formulas,
// citations and references become fixed tokens; navigation and
// metadata elements are skipped.
func ScientificConfig() Config {
	cfg := DefaultConfig()

	cfg.Flags.NormalizeWhitespace = false
	cfg.Flags.WrapTokens = true
	cfg.Flags.NormalizeUnicode = true

	cfg.Policy.TagRules = map[string]Action{
		"math":   Normalize("mathformula"),
		"cite":   Normalize("CitationElement"),
		"img":    Skip(),
		"table":  Skip(),
		"head":   Skip(),
		"footer": Skip(),
	}
	// ltx_tag_figure and ltx_tag_table drop caption metadata so
	// numbering artefacts don't leak into the plain-text target.
	cfg.Policy.ClassRules = map[string]Action{
		"ltx_equation":      Normalize("\nmathformula\n"),
		"ltx_equationgroup": Normalize("\nmathformula\n"),
		"ltx_ref":           Normalize("REF"),
		"ltx_authors":       Skip(),
		"ltx_TOC":           Skip(),
		"ltx_note_mark":     Skip(),
		"ltx_note_outer":    Skip(),
		"ltx_bibliography":  Skip(),
		"ltx_tag_figure":    Skip(),
		"ltx_tag_table":     Skip(),
	}

	return cfg
}
