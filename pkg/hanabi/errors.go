package hanabi

import (
	"errors"
	"fmt"
)

// Sentinel errors identify the four error kinds from the engine's
// error taxonomy. Callers distinguish kinds with errors.Is; the wrapped
// message carries the specific reason.
var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
	ErrInvalidAction      = errors.New("invalid action")
	ErrInvalidPerspective = errors.New("invalid perspective")
)

func newConfigError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, reason)
}

func newConfigErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func newSnapshotError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, reason)
}

func newActionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAction, reason)
}

func newActionErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidAction, fmt.Sprintf(format, args...))
}

func newPerspectiveError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidPerspective, reason)
}
