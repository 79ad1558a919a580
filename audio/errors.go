package audio

import "errors"

var (
	// ErrUnsupported means the runtime has no usable audio input API.
	ErrUnsupported = errors.New("audio input not supported")
	// ErrAcquire wraps permission or hardware failures while opening the input.
	ErrAcquire = errors.New("microphone acquisition failed")
)
