package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/YoshitsuguKoike/ulidgen/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/ulidgen/internal/app/config"
	"github.com/YoshitsuguKoike/ulidgen/internal/application/usecase/generate"
	"github.com/YoshitsuguKoike/ulidgen/internal/domain/model/identifier"
	"github.com/YoshitsuguKoike/ulidgen/internal/interface/cli/version"
)

func NewRoot() *cobra.Command {
	var (
		flags    config.Flags
		date     string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "ulidgen",
		Short: "Generate ULIDs",
		Long: `Generate universally unique, lexicographically sortable identifiers (ULID).

Identifiers are printed one per line. Use --uuid to print them in UUID form,
--date to pin the timestamp to a calendar date, and --monotonic to make a
multi-identifier run strictly increasing.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			InitGlobalLogger(logLevel)
			GetLogger().SetOutput(c.ErrOrStderr())
		},
		RunE: func(c *cobra.Command, _ []string) error {
			if c.Flags().Changed("date") {
				flags.Date = &date
			}
			cfg, err := config.Load(flags)
			if err != nil {
				// Flags parsed fine; a bad date is not a usage problem
				c.SilenceUsage = true
				return err
			}

			Debug("generating %d identifier(s) format=%s monotonic=%t",
				cfg.Count(), cfg.Format(), cfg.Monotonic())
			if d := cfg.Date(); d != nil {
				Info("timestamps pinned to %s (UTC, current time of day)", d)
			}

			uc := generate.NewGenerateIDsUseCase(
				identifier.NewGenerator(),
				presenter.NewTextIDPresenter(c.OutOrStdout(), cfg.Format()),
			)
			if err := uc.Execute(c.Context(), cfg); err != nil {
				c.SilenceUsage = true
				return err
			}
			return nil
		},
	}

	bindGenerateFlags(cmd.Flags(), &flags, &date)
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Diagnostics level on stderr: debug|info|warn|error")

	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(version.NewCommand())
	return cmd
}

// bindGenerateFlags registers the generation flags. The date lands in its own
// variable since only Changed tells an empty --date apart from an absent one.
func bindGenerateFlags(fs *pflag.FlagSet, f *config.Flags, date *string) {
	fs.UintVarP(&f.Count, "nb", "n", 1, "Number of ulid to generate")
	fs.BoolVarP(&f.UUID, "uuid", "u", false, "Display the ulid using the uuid format")
	fs.StringVarP(date, "date", "d", "", "Generate the ulid using the specified date (YYYY-MM-DD, 1970 or later)")
	fs.BoolVarP(&f.Monotonic, "monotonic", "m", false, "Use a monotonic increment when generating multiple ulid")
}
