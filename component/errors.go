package component

import "errors"

var (
	ErrMalformedColor         = errors.New("malformed color")
	ErrUnknownClickAction     = errors.New("unknown click event action")
	ErrClickValueTypeMismatch = errors.New("click event value has wrong type for action")
	ErrUnknownHoverAction     = errors.New("unknown hover event action")
	ErrHoverValueTypeMismatch = errors.New("hover event value has wrong type for action")
	ErrEmptyComponentArray    = errors.New("empty component array")
	ErrMissingField           = errors.New("missing field")
	ErrAmbiguousKind          = errors.New("component has more than one content field")
	ErrInvalidField           = errors.New("field has wrong type")
	ErrUnexpectedShape        = errors.New("component must be a string, array or object")
	ErrTooDeep                = errors.New("component nesting exceeds max depth")
)
