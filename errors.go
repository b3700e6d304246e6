package cachesim

type constError string

// ErrInvalidArgument is wrapped by every error caused by a caller-supplied
// argument: a null/empty value, an empty address or a non-positive capacity.
// Test with errors.Is.
const ErrInvalidArgument = constError("invalid argument")

func (e constError) Error() string { return string(e) }
