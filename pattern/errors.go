package pattern

import "fmt"

// ErrorKind enumerates the reasons for rejecting a pattern.
type ErrorKind int

// Reasons for a pattern to fail type checking.
const (
	DuplicateSlot ErrorKind = iota + 1
	OrPatternHasUnequalSig
	IncorrectNextUsage
	ConsNeedsAtLeastOneParam
	TemplateReferencesUnknownCaptureVariable
	TypeDoesNotMatch
)

func (k ErrorKind) String() string {
	switch k {
	case DuplicateSlot:
		return "DuplicateSlot"
	case OrPatternHasUnequalSig:
		return "OrPatternHasUnequalSig"
	case IncorrectNextUsage:
		return "IncorrectNextUsage"
	case ConsNeedsAtLeastOneParam:
		return "ConsNeedsAtLeastOneParam"
	case TemplateReferencesUnknownCaptureVariable:
		return "TemplateReferencesUnknownCaptureVariable"
	case TypeDoesNotMatch:
		return "TypeDoesNotMatch"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// CheckError is returned for patterns rejected by Check or CheckSignature.
// Name carries the offending capture, template or constructor name, where
// applicable. Found and Expected are set for TypeDoesNotMatch.
type CheckError struct {
	Kind     ErrorKind
	Name     string
	Found    Signature
	Expected Signature
}

func (e *CheckError) Error() string {
	switch e.Kind {
	case TypeDoesNotMatch:
		return fmt.Sprintf("pattern type check: types do not match: found %s, expected %s",
			e.Found, e.Expected)
	case DuplicateSlot, TemplateReferencesUnknownCaptureVariable, ConsNeedsAtLeastOneParam:
		if e.Name != "" {
			return fmt.Sprintf("pattern type check: %s: %q", e.Kind, e.Name)
		}
	}
	return "pattern type check: " + e.Kind.String()
}

// Is makes CheckErrors comparable to the sentinel errors with errors.Is.
// A target without a name matches every error of the same kind.
func (e *CheckError) Is(target error) bool {
	t, ok := target.(*CheckError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Name == "" || t.Name == e.Name)
}

// Sentinel errors, one per ErrorKind.
var (
	ErrDuplicateSlot            = &CheckError{Kind: DuplicateSlot}
	ErrOrPatternHasUnequalSig   = &CheckError{Kind: OrPatternHasUnequalSig}
	ErrIncorrectNextUsage       = &CheckError{Kind: IncorrectNextUsage}
	ErrConsNeedsAtLeastOneParam = &CheckError{Kind: ConsNeedsAtLeastOneParam}
	ErrUnknownTemplateVariable  = &CheckError{Kind: TemplateReferencesUnknownCaptureVariable}
	ErrTypeDoesNotMatch         = &CheckError{Kind: TypeDoesNotMatch}
)
