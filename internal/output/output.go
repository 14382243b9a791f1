package output

import "github.com/nholzer/samplecheck/internal/checker"

// Writer is implemented by each output destination.
type Writer interface {
	WriteResult(result *checker.Result) error
	Close() error
}
