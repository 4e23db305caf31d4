package main

import (
	"errors"
	"fmt"
)

// RequestFailedError is returned when a remote fetch answers with anything
// other than 200 OK. Callers decide whether to log it and move on.
type RequestFailedError struct {
	URL        string
	Item       string
	StatusCode int
	Status     string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request for %s failed with status code: %d", e.Item, e.StatusCode)
}

func isRequestFailed(err error) (*RequestFailedError, bool) {
	var reqErr *RequestFailedError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
