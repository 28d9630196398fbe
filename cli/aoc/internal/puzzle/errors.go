package puzzle

import (
	"errors"
	"fmt"
)

var (
	ErrRegistrationConflict = errors.New("registration conflict")
	ErrUnknownYear          = errors.New("unknown year")
	ErrUnknownDay           = errors.New("unknown day")
)

// KeyError ties a registry failure to the key that caused it.
type KeyError struct {
	Kind error
	Key  Key
}

func (e *KeyError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ErrUnknownYear:
		return fmt.Sprintf("%s: %d", e.Kind, e.Key.Year)
	case ErrUnknownDay:
		return fmt.Sprintf("%s: year %d has no day %d", e.Kind, e.Key.Year, e.Key.Day)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Kind }
