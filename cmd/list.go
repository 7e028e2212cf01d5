package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
)

func newListCmd(a *app) *cobra.Command {
	var (
		filter string
		search string
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "list [source]",
		Short: "Print the visible sequence of a gallery",
		Long: `Prints the items left visible by a filter or search, in gallery order,
with their position in the visible sequence. Positions are what
"render --open" expects.`,
		Example: `  # Every puppet, as a table
  puppetgallery list gallery.html --filter puppet

  # Tab-separated search results
  puppetgallery list gallery.html --search dragon --plain`,
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
			if filter != "" {
				ctrl.ApplyFilter(domain.Category(filter))
			}
			if search != "" {
				ctrl.Search(search)
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(ctrl.Filtered()))
			for pos, id := range ctrl.Filtered() {
				item, _ := ctrl.Item(id)
				rows = append(rows, []string{strconv.Itoa(pos), string(item.Category), item.Title})
			}

			if plain {
				for _, row := range rows {
					fmt.Fprintf(out, "%s\t%s\t%s\n", row[0], row[1], row[2])
				}
				return nil
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				Headers("#", "CATEGORY", "TITLE").
				Rows(rows...)
			fmt.Fprintln(out, t.Render())
			fmt.Fprintf(out, "%d of %d items\n", len(rows), reg.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "category to filter by")
	cmd.Flags().StringVar(&search, "search", "", "search term (applied after --filter, over every item)")
	cmd.Flags().BoolVar(&plain, "plain", false, "tab-separated output without a header")

	return cmd
}
