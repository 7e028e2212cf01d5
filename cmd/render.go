package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"puppetgallery/internal/dom"
	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
)

type renderOptions struct {
	filter  string
	view    string
	search  string
	open    int
	width   int
	resolve bool
	animate bool
	output  string
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [source]",
		Short: "Apply gallery operations to a page and write the result",
		Long: `Loads a gallery page, drives it through the same filter, view, search
and lightbox logic as the browser, and writes the page with the resulting
classes, inline styles and image sources.

Operations run in a fixed order: resize, view, filter, search, open.`,
		Example: `  # Show only masks in the list layout
  puppetgallery render gallery.html --filter mask --view list -o masks.html

  # Search and zoom the first match
  puppetgallery render gallery.html --search marionette --open 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.source(args)
			if err != nil {
				return err
			}
			if ext := strings.ToLower(filepath.Ext(src)); ext != ".html" && ext != ".htm" {
				return fmt.Errorf("render needs a gallery page, got %s", src)
			}

			page, err := loadPage(src)
			if err != nil {
				return err
			}
			if err := a.replay(page, opts); err != nil {
				return err
			}

			var out io.Writer = cmd.OutOrStdout()
			if opts.output != "" && opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			if _, err := page.WriteTo(out); err != nil {
				return fmt.Errorf("failed to write page: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.filter, "filter", "", "category to filter by (all for every item)")
	cmd.Flags().StringVar(&opts.view, "view", "", "layout: grid or list")
	cmd.Flags().StringVar(&opts.search, "search", "", "search term over titles, descriptions and tags")
	cmd.Flags().IntVar(&opts.open, "open", -1, "open the lightbox at this position of the visible sequence")
	cmd.Flags().IntVar(&opts.width, "width", 0, "viewport width for the mobile layout override (0 skips it)")
	cmd.Flags().BoolVar(&opts.resolve, "resolve", false, "load the deferred media of every visible card")
	cmd.Flags().BoolVar(&opts.animate, "animate", false, "keep the entrance and transition classes")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file (- for stdout)")

	return cmd
}

func loadPage(path string) (*dom.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gallery page: %w", err)
	}
	defer f.Close()

	page, err := dom.Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return page, nil
}

// replay drives a controller presenting onto the page
func (a *app) replay(page *dom.Page, opts renderOptions) error {
	reg := page.Registry().WithCategories(a.cfg.CategoryList())
	ctrl := gallery.NewController(reg, append(a.controllerOptions(), gallery.WithPresenter(page))...)
	ctrl.Sync()
	page.Stagger()

	if opts.width > 0 {
		ctrl.Resize(opts.width)
	}
	if opts.view != "" {
		mode := domain.ViewMode(opts.view)
		if !mode.Valid() {
			return fmt.Errorf("unknown view %q: want grid or list", opts.view)
		}
		ctrl.ApplyView(mode)
	}
	if opts.filter != "" {
		ctrl.ApplyFilter(domain.Category(opts.filter))
	}
	if opts.search != "" {
		ctrl.Search(opts.search)
	}
	if opts.resolve {
		ctrl.Intersect(ctrl.Filtered())
	}
	if opts.open >= 0 && !ctrl.OpenAt(opts.open) {
		return fmt.Errorf("no visible item at position %d (%d visible)", opts.open, len(ctrl.Filtered()))
	}
	if !opts.animate {
		page.Settle()
	}

	snap := ctrl.Snapshot()
	a.log.Info().
		Str("category", string(snap.ActiveCategory)).
		Str("view", string(snap.ActiveView)).
		Int("visible", len(snap.Filtered)).
		Bool("lightbox", snap.LightboxOpen).
		Msg("page rendered")
	return nil
}
