package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JVenberg/CodespaceInfoCLI/internal/api"
	"github.com/JVenberg/CodespaceInfoCLI/internal/auth"
	"github.com/JVenberg/CodespaceInfoCLI/internal/codespace"
	"github.com/JVenberg/CodespaceInfoCLI/internal/ui"
	"github.com/spf13/cobra"
)

var (
	tokenFlag string
	daysFlag  int
	repoFlag  string
	stateFlag string
	jsonFlag  bool
	debugFlag bool
	logger    *slog.Logger
)

// Version variables injected at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Built   = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "codespaces",
	Short:   "List GitHub Codespaces sorted by expiration date",
	Long: `List GitHub Codespaces sorted by expiration date.

The token must be a classic personal access token with the 'codespace'
permission, authorized for any organization that owns your codespaces.`,
	Example: `  codespaces
  codespaces --days 7
  codespaces --repo web --state Shutdown
  codespaces --json`,
	Version: Version,
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if debugFlag {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					if t, ok := a.Value.Any().(time.Time); ok {
						a.Value = slog.TimeValue(t.UTC())
					}
				}
				return a
			},
		}))

		// Apply .codespacesrc defaults for flags not explicitly set by the user.
		rc, err := loadRC()
		if err != nil {
			logger.Warn("ignoring .codespacesrc", "error", err)
		} else if rc != nil {
			applyRC(cmd.Root().PersistentFlags(), rc)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria := codespace.Criteria{
			Repository: repoFlag,
			State:      stateFlag,
		}
		if cmd.Root().PersistentFlags().Changed("days") {
			d := daysFlag
			criteria.MaxDays = &d
		}
		return run(cmd.Context(), cmd.OutOrStdout(), criteria)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&tokenFlag, "token", "t", "", "GitHub personal access token (overrides GITHUB_TOKEN and .env)")
	pf.IntVarP(&daysFlag, "days", "d", 0, "show only codespaces expiring within N days")
	pf.StringVarP(&repoFlag, "repo", "r", "", "filter by repository name (partial match)")
	pf.StringVarP(&stateFlag, "state", "s", "", "filter by codespace state (e.g. Available, Shutdown)")
	pf.BoolVarP(&jsonFlag, "json", "j", false, "output as JSON for scripting")
	pf.BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.SetVersionTemplate(fmt.Sprintf("codespaces version %s\n", Version))
	rootCmd.AddCommand(versionCmd)
}

// run executes the listing pipeline: resolve credential, fetch, normalize,
// filter, sort, present.
func run(ctx context.Context, out io.Writer, criteria codespace.Criteria) error {
	u := ui.New(out, os.Stderr)

	token, err := auth.Resolve(tokenFlag)
	if err != nil {
		return err
	}

	client := &api.Client{Token: token, Logger: logger}
	sp := u.StartSpinner("Fetching codespaces")
	raws, err := client.List(ctx)
	sp.Stop()
	if err != nil {
		return err
	}

	if len(raws) == 0 {
		if jsonFlag {
			_, _ = fmt.Fprintln(out, "[]")
		} else {
			u.Dim("No codespaces found.")
		}
		return nil
	}

	records, skipped := codespace.NormalizeAll(raws, logger)
	if skipped > 0 {
		u.Warn(fmt.Sprintf("skipped %d invalid codespace record(s)", skipped))
	}

	now := time.Now().UTC()
	result := codespace.SortByExpiration(codespace.Filter(records, criteria, now))

	if jsonFlag {
		return writeJSON(out, result, now)
	}
	renderTable(u, result, now)
	return nil
}

// writeJSON emits the structured output document array to out.
func writeJSON(out io.Writer, records []codespace.Codespace, now time.Time) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(codespace.Documents(records, now)); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// Execute runs the root command with signal handling.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		u := ui.New(os.Stdout, os.Stderr)
		u.Error(err.Error())
		if errors.Is(err, auth.ErrNoToken) {
			printTokenGuidance(os.Stderr)
		}
		os.Exit(1)
	}
}

// printTokenGuidance explains how to supply a token, mirroring the sources
// checked by auth.Resolve.
func printTokenGuidance(w io.Writer) {
	_, _ = fmt.Fprint(w, `
Provide a token using one of these methods:
  1. Pass it as a flag:            codespaces --token YOUR_TOKEN
  2. Set it in your environment:   export GITHUB_TOKEN=YOUR_TOKEN
  3. Create a .env file with:      GITHUB_TOKEN=YOUR_TOKEN

The token should be a 'Personal access token (classic)' with:
  - the 'codespace' permission enabled
  - authorization for any organization that owns your codespaces
`)
}
