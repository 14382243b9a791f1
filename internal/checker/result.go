package checker

import "time"

// Result holds the outcome of probing a single sample URL. Exactly one of
// StatusCode and Err is meaningful: Err is nil whenever a response was
// received, regardless of its status code.
type Result struct {
	URL        string
	StatusCode int
	Duration   time.Duration
	Err        error
}
