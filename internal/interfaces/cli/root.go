package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/dnsops/internal/domain"
)

// Exit codes are part of the CLI contract: wrappers and cron jobs branch
// on them.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitLoadError    = 2
	ExitAPIError     = 3
	ExitPartialApply = 4
)

var Version = "dev"

var (
	configPath  string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "dnsops",
	Short: "Declarative DNS zone reconciliation for PowerDNS",
	Long: "Dnsops reconciles a PowerDNS zone against a declared desired state:\n" +
		"it diffs the declaration with the authority's records and applies the\n" +
		"minimal set of RRSet changes through the REST API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(ExitOK)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "dnsops.yaml", "Tool configuration file")
	rootCmd.PersistentFlags().BoolVar(&showVersion, "version", false, "Show version information")

	ctx := NewContext()
	rootCmd.AddCommand(newPlanCommand(ctx))
	rootCmd.AddCommand(newApplyCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))
	rootCmd.AddCommand(newZoneCommand(ctx))
	rootCmd.AddCommand(newRecordCommand(ctx))
	rootCmd.AddCommand(newServerCommand(ctx))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

// fail prints the error and exits with the code its class maps to.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case isLoadError(err):
		return ExitLoadError
	case errors.Is(err, domain.ErrAPIUnavailable), errors.Is(err, domain.ErrZoneNotFound):
		return ExitAPIError
	case errors.Is(err, domain.ErrPartialApply):
		return ExitPartialApply
	default:
		return ExitError
	}
}

func isLoadError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrZoneParseFailed,
		domain.ErrInvalidName,
		domain.ErrInvalidType,
		domain.ErrInvalidTTL,
		domain.ErrInvalidContent,
		domain.ErrEmptyContent,
		domain.ErrTTLConflict,
		domain.ErrRequired,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
