package kafka

import "errors"

// ErrMalformedMessage marks a message whose value is not valid JSON for the
// expected type.
var ErrMalformedMessage = errors.New("malformed message")
