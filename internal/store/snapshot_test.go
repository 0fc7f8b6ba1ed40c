package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
)

func TestSnapshot_MissingFileLoadsEmpty(t *testing.T) {
	b := NewSnapshotBackend(filepath.Join(t.TempDir(), "perfumes.json"))
	items, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfumes.json")
	b := NewSnapshotBackend(path)

	want := []domain.Perfume{
		{ID: 1, Name: "Rose Garden", Description: "a spring floral", Notes: []string{"rose", "vanilla"}, Profile: "floral", ImageURL: "/static/images/rose.png", LikeCount: 3, DislikeCount: 1, LikePercent: 75, DislikePercent: 25},
		{ID: 4, Name: "Cedar Trail", Hidden: true, Notes: []string{"cedar"}},
	}
	require.NoError(t, b.Save(context.Background(), want))

	got, err := NewSnapshotBackend(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshot_SaveOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfumes.json")
	b := NewSnapshotBackend(path)

	require.NoError(t, b.Save(context.Background(), []domain.Perfume{{ID: 1}, {ID: 2}}))
	require.NoError(t, b.Save(context.Background(), []domain.Perfume{{ID: 2}}))

	got, err := b.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestSnapshot_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	b := NewSnapshotBackend(filepath.Join(dir, "perfumes.json"))
	require.NoError(t, b.Save(context.Background(), nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "perfumes.json", entries[0].Name())
}

func TestSnapshot_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perfumes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewSnapshotBackend(path).Load(context.Background())
	assert.Error(t, err)
}
