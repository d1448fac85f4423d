package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/timely/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_CreatesFileStores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	projects := NewFileLineStore(filepath.Join(dir, "projects.txt"))
	timeLog := NewFileLineStore(filepath.Join(dir, "time_log.txt"))

	require.NoError(t, Bootstrap(ctx, projects, timeLog))

	lines, err := projects.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = timeLog.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.SummaryHeader}, lines)
}

func TestBootstrap_KeepsExistingStores(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	projects := NewFileLineStore(filepath.Join(dir, "projects.txt"))
	timeLog := NewFileLineStore(filepath.Join(dir, "time_log.txt"))
	require.NoError(t, Bootstrap(ctx, projects, timeLog))
	require.NoError(t, projects.Append(ctx, "Acme"))
	require.NoError(t, timeLog.Append(ctx, "2024-03-05 10:00:00 - Acme: 1.0 hours"))

	require.NoError(t, Bootstrap(ctx, projects, timeLog))

	lines, err := projects.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme"}, lines)

	lines, err = timeLog.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}
