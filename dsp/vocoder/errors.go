package vocoder

import "errors"

// ErrInvalidOption is returned when an option or envelope parameter is out
// of range.
var ErrInvalidOption = errors.New("vocoder: invalid option")
