package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <switch-model>",
		Short: "List compatible transceivers for a switch model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd, args[0])
		},
	}
	return cmd
}

func runCheck(ctx context.Context, cmd *cobra.Command, model string) error {
	service, err := newAppService(ctx)
	if err != nil {
		return err
	}
	if err := service.Load(ctx); err != nil {
		cmd.PrintErrf("dataset unavailable: %s\n", errorMessage(err))
		return err
	}

	state := service.Search(ctx, model)
	printSearchState(cmd, state)
	return nil
}

func printSearchState(cmd *cobra.Command, state types.SearchState) {
	switch state.Kind {
	case types.SearchKindFailed:
		cmd.PrintErrf("search failed: %s\n", state.Message)
	case types.SearchKindEmpty:
		cmd.Printf("no compatible transceivers found for %q\n", state.Term)
	case types.SearchKindGroups:
		for _, group := range state.Groups {
			printGroup(cmd, group)
		}
	}
}

func printGroup(cmd *cobra.Command, group types.ResultGroup) {
	if group.Slot.Kind == types.SlotKindFixed {
		cmd.Printf("Fixed ports (%s):\n", group.Slot.Label)
	} else {
		cmd.Printf("Module %s:\n", group.Slot.Label)
	}
	for _, product := range group.Products {
		line := fmt.Sprintf("  %s (%s)", product.SKUID, product.OEMPartNumber)
		if product.Description != "" {
			line += " - " + product.Description
		}
		cmd.Println(line)
	}
}
