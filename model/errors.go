package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidBoardError reports a board that cannot be built: an out-of-bounds live cell,
// or loader input that does not describe a rectangular grid of 0/1 tokens.
type InvalidBoardError struct {
	Reason string
}

func (e *InvalidBoardError) Error() string {
	return "invalid board: " + e.Reason
}

func invalidBoardf(format string, args ...interface{}) error {
	return errors.WithStack(&InvalidBoardError{Reason: fmt.Sprintf(format, args...)})
}

// IsInvalidBoard reports whether err carries an InvalidBoardError anywhere in its chain
func IsInvalidBoard(err error) bool {
	var target *InvalidBoardError
	return errors.As(err, &target)
}
