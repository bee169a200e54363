package collector

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable means the upstream answered but carried no usable
// closing-price data (empty result set, or every close was null).
var ErrDataUnavailable = errors.New("no closing price data available")

// FetchError reports a non-success HTTP status from the upstream provider.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}

// SchemaError reports an upstream payload that does not match the expected
// chart schema.
type SchemaError struct {
	Cause error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected upstream payload: %v", e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }
