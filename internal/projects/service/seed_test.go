package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseSeedFile(t *testing.T) {
	path := writeSeedFile(t, `
projects:
  - clientName: Hooli
    projectNo: P-201
    media: Web
  - clientName: "  Pied Piper "
    projectNo: P-202
    media: Video
    status: On Hold
`)

	records, err := ParseSeedFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.NewProject{ClientName: "Hooli", ProjectNo: "P-201", Media: "Web", Status: domain.StatusInProgress}, records[0])
	assert.Equal(t, "Pied Piper", records[1].ClientName)
	assert.Equal(t, domain.StatusOnHold, records[1].Status)
}

func TestParseSeedFileErrors(t *testing.T) {
	_, err := ParseSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseSeedFile(writeSeedFile(t, "projects: [unterminated"))
	assert.Error(t, err)

	_, err = ParseSeedFile(writeSeedFile(t, `
projects:
  - clientName: Hooli
    media: Web
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed record 0")
	assert.Contains(t, err.Error(), "projectNo")
}

func TestProjectService_SeedWith(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	records, err := ParseSeedFile(writeSeedFile(t, `
projects:
  - {clientName: Hooli, projectNo: P-201, media: Web}
`))
	require.NoError(t, err)

	n, err := svc.SeedWith(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Hooli", projects[0].ClientName)
}
