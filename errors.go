package marked

import "github.com/pkg/errors"

var (
	// ErrEncodingUnsupported is returned when the caller names an
	// encoding no decoder exists for, or an XML document declares an
	// encoding other than UTF-8.
	ErrEncodingUnsupported = errors.New("encoding unsupported")

	// ErrParseAborted is returned when the grammar parser gives up on
	// its input, or the input cannot be read or decoded.
	ErrParseAborted = errors.New("parse aborted")
)
