package cli

import (
	"github.com/spf13/cobra"

	"github.com/YoshitsuguKoike/ulidgen/internal/adapter/presenter"
	"github.com/YoshitsuguKoike/ulidgen/internal/application/usecase/inspect"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID...",
		Short: "Decode ULIDs or UUIDs",
		Long: `Decode identifiers given as 26-character ULIDs or 36-character UUIDs.

Each identifier is printed as a YAML document with both text forms,
its millisecond timestamp, and its entropy in hex.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			Debug("inspecting %d identifier(s)", len(args))

			uc := inspect.NewInspectIDsUseCase(presenter.NewYAMLInspectionPresenter(c.OutOrStdout()))
			if err := uc.Execute(c.Context(), args); err != nil {
				c.SilenceUsage = true
				return err
			}
			return nil
		},
	}
}
