package errs

import cr "github.com/cockroachdb/errors"

// Error kinds shared by every layer. Package sentinels carry one of these so
// callers can branch on the kind without knowing the concrete error.
var (
	ErrInvalidInput      = New("invalid input")
	ErrSlotConflict      = New("slot conflict")
	ErrNotFound          = New("not found")
	ErrUnauthorized      = New("unauthorized")
	ErrInvalidTransition = New("invalid transition")
)

var kinds = []error{ErrInvalidInput, ErrSlotConflict, ErrNotFound, ErrUnauthorized, ErrInvalidTransition}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// Kind builds a package-level sentinel that also matches the given kind.
func Kind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// KindOf returns the first kind the error matches, or nil.
func KindOf(err error) error {
	for _, k := range kinds {
		if Is(err, k) {
			return k
		}
	}
	return nil
}

// Translate reports sentinel in place of err. err stays attached for %+v output.
func Translate(err, sentinel error) error {
	if err == nil {
		return nil
	}
	return cr.WithSecondaryError(sentinel, err)
}
