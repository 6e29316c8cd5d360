// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"errors"

	"github.com/danielhkuo/quickly-score/sheets"
)

// Error kinds. Callers classify with errors.Is; the wrapped message carries
// the detail.
var (
	ErrValidation    = errors.New("validation failed")
	ErrDuplicateName = errors.New("name already exists")
	ErrNotFound      = errors.New("not found")
	ErrPrecondition  = errors.New("precondition failed")
	ErrSessionClosed = errors.New("scoring channel closed for this contestant")
	ErrSubmission    = errors.New("score submission failed")
	ErrImport        = errors.New("import failed")
	ErrParse         = sheets.ErrParse
)
