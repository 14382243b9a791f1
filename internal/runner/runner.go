package runner

import (
	"context"
	"fmt"
	"os"

	"github.com/nholzer/samplecheck/internal/checker"
	"github.com/nholzer/samplecheck/internal/config"
	"github.com/nholzer/samplecheck/internal/output"
	"github.com/nholzer/samplecheck/internal/samples"
)

// Run executes the check pipeline: resolve the sample sets to an ordered URL
// list, then probe each URL in turn and write one result line per URL. A
// failed check never stops the run; only context cancellation or a write
// error does.
func Run(ctx context.Context, opts *config.Options) error {
	urls, err := resolveURLs(opts)
	if err != nil {
		return err
	}

	prober, err := checker.NewProber(opts)
	if err != nil {
		return fmt.Errorf("creating prober: %w", err)
	}

	out, err := output.NewTextWriter(opts.OutputFile, opts.NoColor)
	if err != nil {
		return fmt.Errorf("creating output writer: %w", err)
	}
	defer out.Close()

	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "[*] Checking %d sample URLs (timeout %s)\n", len(urls), opts.Timeout)
	}

	return checkAll(ctx, prober, out, urls)
}

// checkAll probes urls strictly in order, one request in flight at a time.
func checkAll(ctx context.Context, prober *checker.Prober, out output.Writer, urls []string) error {
	for _, u := range urls {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		result := prober.Check(ctx, u)
		if result.Err != nil && ctx.Err() != nil {
			// Cancelled mid-request; not a check outcome.
			return ctx.Err()
		}
		if err := out.WriteResult(&result); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	return nil
}

// resolveURLs builds the ordered URL list from the selected sample sets.
func resolveURLs(opts *config.Options) ([]string, error) {
	if len(opts.Sets) == 0 {
		return samples.LoadAll()
	}
	var urls []string
	for _, name := range opts.Sets {
		set, err := samples.Load(name)
		if err != nil {
			return nil, err
		}
		urls = append(urls, set...)
	}
	return urls, nil
}
