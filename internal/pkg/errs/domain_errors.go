package errs

import "errors"

// Error taxonomy shared by the vending usecases. Concrete errors are marked
// with one of these so the transport layer can pick a status without
// knowing every sentinel.
var (
	// Malformed or out-of-range request; rejected without mutation.
	ErrValidation = errors.New("validation error")

	// Stale shop id, shop no longer vending, seller gone mid-flight.
	ErrStateConflict = errors.New("state conflict")

	// Overweight, inventory full, currency overflow or insufficient funds.
	ErrResourceLimit = errors.New("resource limit")

	// Durable store unreachable or rejected a write.
	ErrPersistence = errors.New("persistence failure")
)

// Kind reports which taxonomy bucket err belongs to, or "" when none.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return "validation"
	case Is(err, ErrStateConflict):
		return "state_conflict"
	case Is(err, ErrResourceLimit):
		return "resource_limit"
	case Is(err, ErrPersistence):
		return "persistence"
	default:
		return ""
	}
}

// NewKind creates a sentinel in one taxonomy bucket. Sentinels sharing a
// bucket stay distinct under Is; Mark would make them equal.
func NewKind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }
