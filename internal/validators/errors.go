package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNoUserID         = errors.New("user ID is required")
	ErrEmptyText        = errors.New("entry text cannot be empty")
	ErrNoEntryID        = errors.New("entry ID is required")
	ErrInvalidMoodScore = errors.New("mood score must be between 1 and 5")
	ErrPartialMedia     = errors.New("media attachment must carry filename, filetype and file URL together")
)
