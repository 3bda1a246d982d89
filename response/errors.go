package response

import "fmt"

// MalformedResponseError indicates the cleaned model output is not valid JSON.
type MalformedResponseError struct {
	Raw string // text exactly as the model returned it
	Err error  // decoder error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed model response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// UnexpectedShapeError indicates the model output is valid JSON but not an array.
type UnexpectedShapeError struct {
	Raw string // text exactly as the model returned it
	Got string // JSON kind that was decoded, e.g. "object"
}

func (e *UnexpectedShapeError) Error() string {
	return fmt.Sprintf("model did not return a JSON array (got %s)", e.Got)
}
