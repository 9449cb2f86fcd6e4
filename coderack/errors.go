package coderack

import "errors"

// ErrEmpty is returned by ChooseAndRun when the rack holds no codelets
// at all — the run loop should post initial codelets again rather than
// treat this as fatal.
var ErrEmpty = errors.New("coderack: empty")
