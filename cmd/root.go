package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nholzer/samplecheck/internal/config"
	"github.com/nholzer/samplecheck/internal/runner"
	"github.com/nholzer/samplecheck/internal/samples"
	"github.com/nholzer/samplecheck/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	opts     config.Options
	listSets bool
)

type flagGroup struct {
	title string
	flags []string
}

var helpGroups = []flagGroup{
	{"TARGET", []string{"set", "list-sets"}},
	{"HTTP", []string{"timeout", "user-agent", "proxy"}},
	{"OUTPUT", []string{"output", "quiet", "no-color"}},
}

var rootCmd = &cobra.Command{
	Use:     "samplecheck [flags]",
	Short:   "Reachability checker for remote audio sample URLs",
	Version: version.Version,
	Long: `samplecheck probes a built-in catalog of remote audio-sample URLs
(tonejs-instruments and Salamander piano files) with HTTP HEAD requests
and prints one line per URL with its status code or error.`,
	Example: `  samplecheck
  samplecheck --set guitar
  samplecheck --set instruments --set guitar --timeout 10s
  samplecheck -o results.txt -q
  samplecheck --list-sets`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		known := samples.SetNames()
		for _, name := range opts.Sets {
			found := false
			for _, k := range known {
				if name == k {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("unknown sample set %q (available: %s)", name, strings.Join(known, ", "))
			}
		}
		if opts.Timeout <= 0 {
			return fmt.Errorf("--timeout must be positive")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if listSets {
			return printSets()
		}
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runner.Run(ctx, &opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	// Target
	f.StringSliceVar(&opts.Sets, "set", nil, "Sample set to check (repeatable; default: all)")
	f.BoolVar(&listSets, "list-sets", false, "List available sample sets and exit")

	// HTTP
	f.DurationVar(&opts.Timeout, "timeout", 5*time.Second, "Per-request timeout (connection and response)")
	f.StringVar(&opts.UserAgent, "user-agent", "", "Custom User-Agent string")
	f.StringVar(&opts.Proxy, "proxy", "", "HTTP/SOCKS proxy URL")

	// Output
	f.StringVarP(&opts.OutputFile, "output", "o", "", "Write result lines to a file instead of stdout")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress stderr diagnostics")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	// Custom help: categorized flags.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		fmt.Fprint(w, helpBanner(cmd.Version))
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range helpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSets() error {
	for _, name := range samples.SetNames() {
		n, err := samples.Count(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %d URLs\n", name, n)
	}
	return nil
}

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	// Pad to fixed column width for aligned descriptions.
	const col = 32
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	def := f.DefValue
	if def != "" && def != "false" && def != "0" && def != "[]" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}

func helpBanner(ver string) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	return fmt.Sprintf(`
                                __          __              __
   _________ _____ ___  ____  / /__  _____/ /_  ___  _____/ /__
  / ___/ __ '/ __ '__ \/ __ \/ / _ \/ ___/ __ \/ _ \/ ___/ //_/
 (__  ) /_/ / / / / / / /_/ / /  __/ /__/ / / /  __/ /__/ ,<
/____/\__,_/_/ /_/ /_/ .___/_/\___/\___/_/ /_/\___/\___/_/|_|
                    /_/                            %s

`, ver)
}
