package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puppetgallery/internal/domain"
)

func TestLoadHTMLSnapshotsCardsInDocumentOrder(t *testing.T) {
	reg, err := LoadFile(filepath.Join("testdata", "gallery.html"))
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	items := reg.Items()
	for i, item := range items {
		assert.Equal(t, domain.ItemID(i), item.ID)
	}

	mask := items[0]
	assert.Equal(t, domain.Category("mask"), mask.Category)
	assert.Equal(t, "Red Face Mask", mask.Title)
	assert.Equal(t, "A painted mask worn by the loyal general.", mask.Description)
	assert.Equal(t, []string{"Opera", "Painted"}, mask.Tags)
	assert.Equal(t, domain.MediaImage, mask.Media.Kind)
	assert.Equal(t, "/static/images/mask-red.jpg", mask.Media.DeferredSrc)
	assert.Equal(t, "/static/images/placeholder.jpg", mask.Media.Src)
	assert.Equal(t, "Red opera mask", mask.AltText())

	marionette := items[1]
	assert.Equal(t, []string{"Carving", "string", "marionette"}, marionette.Tags)
	assert.Equal(t, "String Marionette", marionette.AltText(), "alt falls back to title")

	video := items[2]
	assert.Equal(t, domain.MediaVideo, video.Media.Kind)
	assert.Equal(t, "/static/video/mask-dance.mp4", video.Media.Src)
	assert.False(t, video.Media.Deferred())

	assert.Equal(t, []domain.Category{"mask", "puppet", "stage"}, reg.Categories())
}

func TestEmptyPageYieldsEmptyRegistry(t *testing.T) {
	reg, err := LoadHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Categories())
}

func TestCategoriesFallBackToCards(t *testing.T) {
	reg, err := LoadHTML(strings.NewReader(`
		<div class="gallery-card" data-category="stage"><h3 class="card-title">A</h3></div>
		<div class="gallery-card" data-category="mask"><h3 class="card-title">B</h3></div>
		<div class="gallery-card" data-category="stage"><h3 class="card-title">C</h3></div>`))
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{"stage", "mask"}, reg.Categories())
}

func TestLoadManifest(t *testing.T) {
	reg, err := LoadFile(filepath.Join("testdata", "manifest.yaml"))
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	item, ok := reg.At(1)
	require.True(t, ok)
	assert.Equal(t, domain.MediaVideo, item.Media.Kind)
	assert.Equal(t, "/static/video/marionette.mp4", item.Media.DeferredSrc)
	assert.Equal(t, []domain.Category{"mask", "puppet"}, reg.Categories())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "gallery.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err = LoadFile(path)
	require.ErrorIs(t, err, ErrUnsupportedSource)
}

func TestRegistryIsImmutable(t *testing.T) {
	reg := New([]domain.GalleryItem{{Title: "A", Tags: []string{"x"}}}, nil)

	items := reg.Items()
	items[0].Title = "changed"
	items[0].Tags[0] = "changed"

	again, ok := reg.At(0)
	require.True(t, ok)
	assert.Equal(t, "A", again.Title)
	assert.Equal(t, []string{"x"}, again.Tags)

	_, ok = reg.At(5)
	assert.False(t, ok)
}
