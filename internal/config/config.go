package config

import "time"

// Options holds all configuration for a samplecheck run.
type Options struct {
	// Target
	Sets []string // sample sets to check; empty = all embedded sets

	// HTTP
	Timeout   time.Duration
	UserAgent string
	Proxy     string

	// Output
	OutputFile string
	Quiet      bool
	NoColor    bool
}
