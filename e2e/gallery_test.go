//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startGallery(t *testing.T) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	require.NoError(t, tf.StartApp(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show the gallery title")
	require.True(t, tf.SeePlain("Red Face Mask"), "Should list the first card")
	return tf
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	require.NoError(t, tf.SendKeys(KeyQuit))
	if !tf.WaitExit(1500 * time.Millisecond) {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		require.NoError(t, tf.SendKeys(KeyCtrlC))
		require.True(t, tf.WaitExit(750*time.Millisecond), "app did not exit after ctrl+c")
	}
}

func TestFilterByDigit(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Mark()
	require.NoError(t, tf.SendKeys("2"))
	require.True(t, tf.SeePlain("Puppet: 1 items"), "Filter summary should appear")
	require.True(t, tf.SeePlain("1 / 3"), "Counter should show one visible card")

	tf.Mark()
	require.NoError(t, tf.SendKeys("0"))
	require.True(t, tf.SeePlain("All: 3 items"), "All filter should restore every card")
}

func TestSearchNarrowsCards(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	require.NoError(t, tf.SendKeys("/"))
	require.True(t, tf.SeePlain("Search:"), "Search prompt should appear")

	tf.Mark()
	require.NoError(t, tf.Type("marionette"))
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlain(`Search "marionette": 1 matches`), "Search summary should appear")
	require.True(t, tf.SeePlain("[Search: marionette]"), "Title should show the active query")
}

func TestLightboxNavigation(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Mark()
	require.NoError(t, tf.SendKeys(KeyEnter))
	require.True(t, tf.SeePlain("1 / 3"), "Lightbox should open on the first card")
	require.True(t, tf.SeePlain("mask-red.jpg"), "Lightbox should load the deferred image")

	tf.Mark()
	require.NoError(t, tf.SendKeys(KeyRight))
	require.True(t, tf.SeePlain("String Marionette"), "Next should show the second card")
	require.True(t, tf.SeePlain("2 / 3"))

	// q closes the lightbox before it quits
	tf.Mark()
	require.NoError(t, tf.SendKeys(KeyQuit))
	require.True(t, tf.SeePlain("Press / to search"), "Gallery should be back after closing")
	require.False(t, tf.WaitExit(300*time.Millisecond), "Closing the lightbox should not quit")
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	for _, want := range []string{"browse", "render", "list"} {
		require.True(t, strings.Contains(output, want), "Help should mention %q", want)
	}
}
