package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puppetgallery/internal/registry"
)

const fixture = "testdata/gallery.html"

// run executes the root command with an empty config and discarded logs
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PUPPETGALLERY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PUPPETGALLERY_LOG_FILE", "discard")
	t.Setenv("PUPPETGALLERY_SOURCE", "")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestListPlain(t *testing.T) {
	out, err := run(t, "list", fixture, "--filter", "mask", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "0\tmask\tRed Face Mask\n1\tmask\tMask Dance\n", out)
}

func TestListSearch(t *testing.T) {
	out, err := run(t, "list", fixture, "--search", "MARIONETTE", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "0\tpuppet\tString Marionette\n", out)
}

func TestListTable(t *testing.T) {
	out, err := run(t, "list", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Red Face Mask")
	assert.Contains(t, out, "Mask Dance")
	assert.Contains(t, out, "3 of 3 items")
}

func TestListManifest(t *testing.T) {
	out, err := run(t, "list", "testdata/manifest.yaml", "--filter", "puppet", "--plain")
	require.NoError(t, err)
	assert.Equal(t, "0\tpuppet\tString Marionette\n", out)
}

func TestRenderFilterViewAndLightbox(t *testing.T) {
	out, err := run(t, "render", fixture, "--filter", "puppet", "--view", "list", "--open", "0")
	require.NoError(t, err)
	doc := parse(t, out)

	assert.Equal(t, "gallery-list", doc.Find("#galleryContainer").AttrOr("class", ""))

	cards := doc.Find(registry.CardSelector)
	require.Equal(t, 3, cards.Length())
	assert.Contains(t, cards.Eq(0).AttrOr("style", ""), "display: none")
	assert.Contains(t, cards.Eq(1).AttrOr("style", ""), "display: block")
	assert.Contains(t, cards.Eq(2).AttrOr("style", ""), "display: none")
	assert.False(t, cards.Eq(1).HasClass("fade-in-up"), "animations are settled by default")

	assert.True(t, doc.Find(`[data-filter="puppet"]`).HasClass("active"))
	assert.False(t, doc.Find(`[data-filter="all"]`).HasClass("active"))
	assert.True(t, doc.Find(`[data-view="list"]`).HasClass("active"))

	lightbox := doc.Find("#lightbox")
	assert.True(t, lightbox.HasClass("lightbox-active"))
	assert.Contains(t, lightbox.AttrOr("style", ""), "display: block")
	assert.Equal(t, "/static/images/marionette.jpg", doc.Find("#lightboxImage").AttrOr("src", ""))
	assert.Equal(t, "String Marionette", doc.Find("#lightboxCaption").Text())
	assert.Contains(t, doc.Find("body").AttrOr("style", ""), "overflow: hidden")

	// The zoomed card's deferred media was resolved, the others stay lazy
	assert.Equal(t, "/static/images/marionette.jpg", cards.Eq(1).Find("img").AttrOr("src", ""))
	assert.Equal(t, "/static/images/placeholder.jpg", cards.Eq(0).Find("img").AttrOr("src", ""))
}

func TestRenderSearchAndResolve(t *testing.T) {
	out, err := run(t, "render", fixture, "--search", "mask", "--resolve", "--animate")
	require.NoError(t, err)
	doc := parse(t, out)

	cards := doc.Find(registry.CardSelector)
	assert.True(t, cards.Eq(0).HasClass("fade-in-up"))
	assert.Contains(t, cards.Eq(1).AttrOr("style", ""), "display: none")
	assert.True(t, doc.Find(`[data-filter="all"]`).HasClass("active"))

	img := cards.Eq(0).Find("img")
	assert.Equal(t, "/static/images/mask-red.jpg", img.AttrOr("src", ""))
	assert.True(t, img.HasClass("loaded"))
	assert.False(t, img.HasClass("lazy"))
	assert.Contains(t, cards.Eq(2).AttrOr("style", ""), "animation-delay: 0.2s")
}

func TestRenderMobileWidthForcesGrid(t *testing.T) {
	out, err := run(t, "render", fixture, "--view", "list", "--width", "40")
	require.NoError(t, err)
	doc := parse(t, out)
	// The explicit view comes after the resize and wins
	assert.Equal(t, "gallery-list", doc.Find("#galleryContainer").AttrOr("class", ""))

	out, err = run(t, "render", fixture, "--width", "40")
	require.NoError(t, err)
	doc = parse(t, out)
	assert.Equal(t, "gallery-grid", doc.Find("#galleryContainer").AttrOr("class", ""))
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	out, err := run(t, "render", fixture, "--filter", "mask", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "galleryContainer")
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"position out of range", []string{"render", fixture, "--filter", "puppet", "--open", "1"}, "no visible item at position 1"},
		{"unknown view", []string{"render", fixture, "--view", "carousel"}, "unknown view"},
		{"manifest", []string{"render", "testdata/manifest.yaml"}, "needs a gallery page"},
		{"missing page", []string{"render", "testdata/nope.html"}, "failed to open gallery page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMissingSource(t *testing.T) {
	_, err := run(t, "list")
	assert.ErrorIs(t, err, ErrNoSource)

	txt := filepath.Join(t.TempDir(), "gallery.txt")
	require.NoError(t, os.WriteFile(txt, []byte("cards"), 0o644))
	_, err = run(t, "list", txt)
	assert.ErrorIs(t, err, registry.ErrUnsupportedSource)
}

func TestSourceAndViewFromConfig(t *testing.T) {
	abs, err := filepath.Abs(fixture)
	require.NoError(t, err)

	cfgPath := filepath.Join(t.TempDir(), "puppetgallery.toml")
	cfg := "source = '" + abs + "'\n\n[gallery]\ndefault_view = 'list'\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	out, err := run(t, "render", "--config", cfgPath)
	require.NoError(t, err)
	doc := parse(t, out)
	assert.Equal(t, "gallery-list", doc.Find("#galleryContainer").AttrOr("class", ""))
	assert.True(t, doc.Find(`[data-view="list"]`).HasClass("active"))
}
