package enginelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_implementsScreechLogger(t *testing.T) {
	l := New("debug")

	assert.NotPanics(t, func() {
		l.Debugf("tick %d", 1)
		l.Warnf("patchbay exhausted")
	})
}

func TestWithDailyFile_writesLines(t *testing.T) {
	dir := t.TempDir()

	l, err := New("debug").WithDailyFile(dir, "screech-%Y%m%d.log")
	require.NoError(t, err)

	l.Debugf("hello %s", "world")

	require.NoError(t, l.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	contents, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "hello world")
}

func TestWithDailyFile_rejectsBadPattern(t *testing.T) {
	_, err := New("debug").WithDailyFile(t.TempDir(), "%Q")
	assert.Error(t, err)
}
