package archive

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantsight/plantsight-api/internal/gate"
)

func TestSaveWritesTimestampedFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	data := []byte("fake png bytes")
	path := store.Save(data, gate.ReasonLowConfidence)

	require.NotEmpty(t, path)
	assert.Regexp(t, regexp.MustCompile(`^low_confidence_\d{8}T\d{6}Z\.png$`), filepath.Base(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "rejected")
	store := NewStore(dir)

	path := store.Save([]byte("x"), gate.ReasonNotCropLike)

	assert.NotEmpty(t, path)
}

func TestSaveBestEffortOnFailure(t *testing.T) {
	// Using an existing file as the directory makes every write fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := NewStore(blocker)

	path := store.Save([]byte("x"), gate.ReasonNoPrediction)

	assert.Empty(t, path)
}
