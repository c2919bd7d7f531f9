package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"marquee/internal/player"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play <media-id>...",
		Short: "Play one or more media items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withPlayer(func(p *player.Player) error {
				out := cmd.OutOrStdout()
				for _, id := range args {
					if err := p.Play(cmd.Context(), id); err != nil {
						return fmt.Errorf("play %s: %w", id, err)
					}
					fmt.Fprintf(out, "Played %s\n", id)
				}
				return nil
			})
		},
	}
}
