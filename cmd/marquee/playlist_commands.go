package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"marquee/internal/player"
	"marquee/internal/playlist"
)

func newPlaylistCommand(ctx *commandContext) *cobra.Command {
	playlistCmd := &cobra.Command{
		Use:   "playlist",
		Short: "Inspect and play playlist files",
	}

	playlistCmd.AddCommand(newPlaylistShowCommand())
	playlistCmd.AddCommand(newPlaylistPlayCommand(ctx))

	return playlistCmd
}

func newPlaylistShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "show <playlist-file>",
		Short:       "Show the flattened contents of a playlist file",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := playlist.Load(args[0])
			if err != nil {
				return err
			}

			ids := p.Flatten()
			rows := make([][]string, 0, len(ids))
			for i, id := range ids {
				rows = append(rows, []string{strconv.Itoa(i + 1), id})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Playlist %q (%d items)\n", p.Name(), p.Count())
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Media ID"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}
}

func newPlaylistPlayCommand(ctx *commandContext) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "play <playlist-file>",
		Short: "Play every item in a playlist file in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := playlist.Load(args[0])
			if err != nil {
				return err
			}

			return ctx.withPlayer(func(p *player.Player) error {
				out := cmd.OutOrStdout()
				failures := 0
				for _, id := range pl.Flatten() {
					if err := p.Play(cmd.Context(), id); err != nil {
						if !keepGoing {
							return fmt.Errorf("play %s: %w", id, err)
						}
						failures++
						fmt.Fprintf(out, "Skipped %s: %v\n", id, err)
						continue
					}
					fmt.Fprintf(out, "Played %s\n", id)
				}
				if failures > 0 {
					return fmt.Errorf("%d of %d items failed", failures, pl.Count())
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "Continue playing after a failed item")
	return cmd
}
