package cmd

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"puppetgallery/internal/gallery"
	"puppetgallery/internal/ui"
)

func newBrowseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [source]",
		Short: "Open the interactive terminal gallery",
		Long: `Opens the gallery in the terminal. Filter with tab or the digit keys,
switch between grid and list with v, search with / and zoom a card with
enter. Mouse clicks and horizontal drags work in terminals that report them.`,
		Example: `  # Browse a gallery page
  puppetgallery browse gallery.html

  # Browse the source named in the config
  puppetgallery browse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source(args)
			if err != nil {
				return err
			}
			reg, err := a.registry(src)
			if err != nil {
				return err
			}

			ctrl := gallery.NewController(reg, a.controllerOptions()...)
			model := ui.NewModel(ctrl, a.cfg, a.log)

			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(cmd.Context()),
			)
			model.SetProgram(p)

			a.log.Info().Msg("starting UI")
			if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
				a.log.Error().Err(err).Msg("UI failed")
				return err
			}
			a.log.Info().Msg("UI exited normally")
			return nil
		},
	}
	return cmd
}
