package confluence

import "errors"

var (
	ErrNotConfigured      = errors.New("confluence integration is not configured")
	ErrTranscriptRequired = errors.New("transcript data is required")
	ErrTitleContentEmpty  = errors.New("transcript title and content are required")
	ErrSpaceKeyRequired   = errors.New("space key is required")
	ErrInvalidView        = errors.New("invalid view")
)
