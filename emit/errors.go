package emit

import "github.com/abiiranathan/hbs2ts/hbsast"

// Diagnostic is a single template-level error (§3's errors entries). It is
// always a plain value, never a Go error — §6 is explicit that diagnostics
// surface as data, and callers decide how to report them.
//
// Severity is carried per SPEC_FULL.md §12 even though every kind currently
// enumerated in §7 is an "error": it gives the host type checker room to
// introduce "warning"-level kinds later without a breaking field addition,
// grounded on the teacher's ValidationResult.Severity.
type Diagnostic struct {
	Message  string
	Location hbsast.Loc
	Severity string
}

const severityError = "error"

func diag(loc hbsast.Loc, msg string) Diagnostic {
	return Diagnostic{Message: msg, Location: loc, Severity: severityError}
}

// Error message text for each §7 diagnostic kind, plus the SPEC_FULL.md §12
// additions. Message text is the stable, machine-readable identity of a
// diagnostic kind (§7: "stable, machine-readable by message text") so it is
// never localized, per the spec's explicit Non-goal.
const (
	msgYieldPos          = "{{yield}} may only appear as a top-level statement"
	msgYieldDyn          = "Named block {{yield}}s must have a literal block name"
	msgHashPos           = "{{hash}} only accepts named parameters"
	msgArrayNamed        = "{{array}} only accepts positional parameters"
	msgIfFew             = "{{if}} requires at least two parameters"
	msgIfBlockCond       = "{{#if}} requires exactly one condition"
	msgMix               = "Named blocks may not be mixed with other content"
	msgBlockParamName    = "Block params must be valid TypeScript identifiers"
	msgDupBlockFmt       = "Named block %q is defined more than once"
	msgReservedShadowFmt = "%q shadows a reserved identifier"
)
