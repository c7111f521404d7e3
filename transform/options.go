// Package transform implements templateToTypescript (§6): the top-level
// entry point that wires the parser oracle (hbsast), scope tracker, path
// classifier, and statement/expression emitters into the finished
// TransformResult.
package transform

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// TransformOptions is §3's TransformOptions record. Fields are validated on
// entry (SPEC_FULL.md §10.2): IdentifiersInScope entries must look like
// identifiers, and EmbeddedStart/EmbeddedEnd, when both set, must be
// ordered.
type TransformOptions struct {
	// TypeParams is a literal type-parameter clause injected into the
	// emitted function signature, e.g. "<T extends string>".
	TypeParams string `validate:"omitempty"`
	// ContextType is the type expression supplied as the argument to the
	// runtime context-resolver type. Defaults to "unknown".
	ContextType string `validate:"omitempty"`
	// Preamble holds statements injected before the template body.
	Preamble []string `validate:"omitempty,dive,required"`
	// IdentifiersInScope are names treated as locally in scope.
	IdentifiersInScope []string `validate:"omitempty,dive,identifier"`
	// EmbeddedStart is the byte offset of the template's start within a
	// host file. It is validated but not applied: range-map offsets stay
	// relative to source.
	EmbeddedStart *int `validate:"omitempty,min=0"`
	// EmbeddedEnd is the byte offset of the template's end within a host
	// file. It is validated but not applied: range-map offsets stay
	// relative to source.
	EmbeddedEnd *int `validate:"omitempty,min=0"`
}

func init() {
	_ = validate.RegisterValidation("identifier", validateIdentifierTag)
}

func validateIdentifierTag(fl validator.FieldLevel) bool {
	return isIdentifierLike(fl.Field().String())
}

func isIdentifierLike(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentStartRune(r) {
				return false
			}
			continue
		}
		if !isIdentPartRune(r) {
			return false
		}
	}
	return true
}

func isIdentStartRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isIdentPartRune(r rune) bool {
	return isIdentStartRune(r) || (r >= '0' && r <= '9')
}

// normalize validates opts and returns a copy with TypeParams/ContextType
// trimmed of surrounding whitespace (SPEC_FULL.md §10.2). A validation
// failure is returned as a wrapped error, never a panic; the caller (Transform)
// turns it into the single synthetic diagnostic at offset 0 the ambient
// spec calls for, rather than propagating a Go error into TransformResult.
func (o TransformOptions) normalize() (TransformOptions, error) {
	if err := validate.Struct(o); err != nil {
		return o, errors.Wrap(err, "transform: invalid TransformOptions")
	}
	if o.EmbeddedStart != nil && o.EmbeddedEnd != nil && *o.EmbeddedStart > *o.EmbeddedEnd {
		return o, errors.New("transform: EmbeddedStart must not exceed EmbeddedEnd")
	}
	o.TypeParams = strings.TrimSpace(o.TypeParams)
	o.ContextType = strings.TrimSpace(o.ContextType)
	return o, nil
}
