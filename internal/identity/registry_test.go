package identity

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/omarchive/pkg/omarchive"
)

const wellKnownGUID = "1b2e3f40-5a6b-4c7d-8e9f-0a1b2c3d4e5f"

func TestReserve_GeneratesDeterministicGUID(t *testing.T) {
	r1 := New()
	r2 := New()

	g1, err := r1.Reserve("DeployedImplementationType:PostgreSQL Server", "")
	require.NoError(t, err)
	g2, err := r2.Reserve("DeployedImplementationType:PostgreSQL Server", "")
	require.NoError(t, err)

	assert.Equal(t, g1, g2)
	assert.Equal(t, GenerateGUID("DeployedImplementationType:PostgreSQL Server"), g1)
	assert.Equal(t, 5, int(uuid.MustParse(g1).Version()))
}

func TestReserve_SameNameReturnsSameGUID(t *testing.T) {
	r := New()
	first, err := r.Reserve("a", "")
	require.NoError(t, err)
	second, err := r.Reserve("a", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Len())
}

func TestReserve_RequestedGUIDIsUsed(t *testing.T) {
	r := New()
	guid, err := r.Reserve("PostgreSQLServer:template", wellKnownGUID)
	require.NoError(t, err)
	assert.Equal(t, wellKnownGUID, guid)

	again, err := r.Reserve("PostgreSQLServer:template", "")
	require.NoError(t, err)
	assert.Equal(t, wellKnownGUID, again, "lookup without a requested GUID keeps the bound GUID")
}

func TestReserve_RequestedGUIDIsNormalized(t *testing.T) {
	r := New()
	guid, err := r.Reserve("x", "{1B2E3F40-5A6B-4C7D-8E9F-0A1B2C3D4E5F}")
	require.NoError(t, err)
	assert.Equal(t, wellKnownGUID, guid)
}

func TestReserve_ConflictingRequestedGUID(t *testing.T) {
	r := New()
	_, err := r.Reserve("PostgreSQLServer:template", wellKnownGUID)
	require.NoError(t, err)

	_, err = r.Reserve("PostgreSQLServer:template", "9d8c7b6a-5f4e-4d3c-8b2a-1f0e9d8c7b6a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrGUIDConflict))

	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, wellKnownGUID, conflict.ExistingGUID)
	assert.Contains(t, err.Error(), "PostgreSQLServer:template")
}

func TestReserve_GUIDClaimedByTwoNames(t *testing.T) {
	r := New()
	_, err := r.Reserve("first", wellKnownGUID)
	require.NoError(t, err)

	_, err = r.Reserve("second", wellKnownGUID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrGUIDConflict))
	assert.Contains(t, err.Error(), `"first"`)
}

func TestReserve_InvalidArguments(t *testing.T) {
	r := New()

	_, err := r.Reserve("", "")
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))

	_, err = r.Reserve("name", "not-a-guid")
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))

	_, err = r.Reserve("name", uuid.Nil.String())
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))
}

func TestLookup(t *testing.T) {
	r := New()
	_, ok := r.Lookup("missing")
	assert.False(t, ok)

	guid, err := r.Reserve("present", "")
	require.NoError(t, err)
	found, ok := r.Lookup("present")
	assert.True(t, ok)
	assert.Equal(t, guid, found)
}

func TestOwner(t *testing.T) {
	r := New()
	_, ok := r.Owner(wellKnownGUID)
	assert.False(t, ok)

	guid, err := r.Reserve("PostgreSQLServer:template", wellKnownGUID)
	require.NoError(t, err)
	name, ok := r.Owner(guid)
	assert.True(t, ok)
	assert.Equal(t, "PostgreSQLServer:template", name)
}

func TestPersistAndLoad_RoundTripKeepsIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")

	run1 := New()
	require.NoError(t, run1.Load(path))
	explicit, err := run1.Reserve("PostgreSQLServer:template", wellKnownGUID)
	require.NoError(t, err)
	generated, err := run1.Reserve("ConnectorType:CSV File", "")
	require.NoError(t, err)
	require.NoError(t, run1.Persist(path))

	run2 := New()
	require.NoError(t, run2.Load(path))
	assert.Equal(t, 2, run2.Len())

	again, err := run2.Reserve("PostgreSQLServer:template", "")
	require.NoError(t, err)
	assert.Equal(t, explicit, again)

	again, err = run2.Reserve("ConnectorType:CSV File", "")
	require.NoError(t, err)
	assert.Equal(t, generated, again)
}

func TestLoad_PriorRandomGUIDWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")
	legacy := uuid.New().String()
	content := "version: 1\nguids:\n  \"Legacy:Name\": " + legacy + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := New()
	require.NoError(t, r.Load(path))
	guid, err := r.Reserve("Legacy:Name", "")
	require.NoError(t, err)
	assert.Equal(t, legacy, guid)
}

func TestLoad_RetiredGUIDStaysReserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")
	content := "version: 1\nguids: {}\nusedGuids:\n  - " + wellKnownGUID + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := New()
	require.NoError(t, r.Load(path))
	owner, ok := r.Owner(wellKnownGUID)
	assert.True(t, ok)
	assert.Empty(t, owner)

	_, err := r.Reserve("NewName", wellKnownGUID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrGUIDConflict))
	assert.Contains(t, err.Error(), "retired")
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	r := New()
	require.NoError(t, r.Load(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, 0, r.Len())
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{not yaml"), 0644))

	err := New().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrPersistenceFailure))
}

func TestLoad_InvalidGUIDInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nguids:\n  a: nope\n"), 0644))

	err := New().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrPersistenceFailure))
}

func TestLoad_GUIDBoundToTwoNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")
	content := "version: 1\nguids:\n  \"First:Name\": " + wellKnownGUID + "\n  \"Second:Name\": " + wellKnownGUID + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	err := New().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrPersistenceFailure))
	assert.False(t, errors.Is(err, omarchive.ErrGUIDConflict))
	assert.Equal(t, omarchive.ExitPersistenceFailure, omarchive.ExitCodeForError(err))
}

func TestLoad_NewerFormatRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guidmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 99\nguids: {}\n"), 0644))

	err := New().Load(path)
	assert.True(t, errors.Is(err, omarchive.ErrPersistenceFailure))
}

func TestLoad_AfterReserveRejected(t *testing.T) {
	r := New()
	_, err := r.Reserve("a", "")
	require.NoError(t, err)

	err = r.Load(filepath.Join(t.TempDir(), "guidmap.yaml"))
	assert.True(t, errors.Is(err, omarchive.ErrInvalidArgument))
}

func TestPersist_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	r := New()
	_, err := r.Reserve("a", "")
	require.NoError(t, err)

	err = r.Persist(filepath.Join(blocker, "guidmap.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, omarchive.ErrPersistenceFailure))
}

func TestPersist_IsStableAcrossWrites(t *testing.T) {
	dir := t.TempDir()
	r := New()
	for _, name := range []string{"c", "a", "b"} {
		_, err := r.Reserve(name, "")
		require.NoError(t, err)
	}

	first := filepath.Join(dir, "one.yaml")
	second := filepath.Join(dir, "two.yaml")
	require.NoError(t, r.Persist(first))
	require.NoError(t, r.Persist(second))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEntries_SortedByQualifiedName(t *testing.T) {
	r := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := r.Reserve(name, "")
		require.NoError(t, err)
	}
	entries := r.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].QualifiedName)
	assert.Equal(t, "mid", entries[1].QualifiedName)
	assert.Equal(t, "zeta", entries[2].QualifiedName)
	assert.Len(t, r.UsedGUIDs(), 3)
}
