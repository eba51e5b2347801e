package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatchTriggersCallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markers.cmm")
	writeFile(t, path, "<marker_set name=\"a\">\n")

	fw, err := NewFileWatcher(20*time.Millisecond, nil)
	require.NoError(t, err)

	changed := make(chan string, 16)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	writeFile(t, path, "<marker_set name=\"b\">\n")

	select {
	case p := <-changed:
		abs, err := filepath.Abs(path)
		require.NoError(t, err)
		assert.Equal(t, abs, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	require.NoError(t, fw.Close())
	<-fw.Done()
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "markers.cmm")
	writeFile(t, path, "")

	fw, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)

	changed := make(chan string, 16)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	writeFile(t, filepath.Join(dir, "other.cmm"), "x")

	select {
	case p := <-changed:
		t.Fatalf("unexpected change for %s", p)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, fw.Close())
	<-fw.Done()
}

func TestCloseIsIdempotent(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	fw.Start()

	require.NoError(t, fw.Close())
	require.NoError(t, fw.Close())
	<-fw.Done()
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond, nil)
	require.NoError(t, err)
	defer fw.Close()

	err = fw.Watch([]string{filepath.Join(t.TempDir(), "missing", "file.cmm")}, func(string) {})
	assert.ErrorContains(t, err, "failed to watch")
}
