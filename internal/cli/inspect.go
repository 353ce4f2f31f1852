package cli

import (
	"context"

	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the dataset and report relation and malformed-row counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd)
		},
	}
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	if err := service.Load(ctx); err != nil {
		return err
	}

	stats := service.Stats()
	cmd.Printf("products:              %d\n", stats.Products)
	cmd.Printf("compatibility entries: %d\n", stats.Compatibility)
	cmd.Printf("switch bay entries:    %d\n", stats.SwitchBays)
	if stats.Skipped.Total() > 0 {
		cmd.Printf("malformed rows skipped: %d (products %d, compatibility %d, switch bays %d)\n",
			stats.Skipped.Total(), stats.Skipped.Products, stats.Skipped.Compatibility, stats.Skipped.SwitchBays)
	}
	return nil
}
