package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanIdents(t *testing.T) {
	got := ScanIdents([]byte("def walk(speed):\n    return walk2(speed, _x)\n"))
	want := map[string]int{
		"def": 1, "walk": 1, "speed": 2, "return": 1, "walk2": 1, "_x": 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanIdents mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.py", "walk(1)\nwalk(2)\n")
	b := writeFile(t, dir, "sub/b.py", "walk(3)\n")
	writeFile(t, dir, "notes.txt", "walk everywhere\n")
	writeFile(t, dir, ".hidden/c.py", "walk(4)\n")

	ix, err := Build(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, ix.Files)

	refs := ix.Refs("walk")
	require.Len(t, refs, 2)
	assert.Equal(t, Ref{Path: a, Count: 2}, refs[0])
	assert.Equal(t, Ref{Path: b, Count: 1}, refs[1])
	assert.Empty(t, ix.Refs("absent"))
}

func TestBuildDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.py", "walk(1)\n")
	writeFile(t, dir, "a.py", "walk(2)\n")

	first, err := Build(dir)
	require.NoError(t, err)
	second, err := Build(dir)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Build is not deterministic (-first +second):\n%s", diff)
	}
}

func TestAllNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "b a c\n")

	ix, err := Build(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ix.AllNames())
}

func TestSkeleton(t *testing.T) {
	m := Skeleton("/src/a.py", []byte("walk(speed)\n"))
	assert.Equal(t, "/src/a.py", m.Path)
	assert.Contains(t, m.UsedNames, "walk")
	assert.Contains(t, m.UsedNames, "speed")
	assert.NotContains(t, m.UsedNames, "absent")
}

func TestOpenSnapshotRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "walk(1)\n")

	built, err := Open("indextest", dir)
	require.NoError(t, err)

	// The snapshot was written; a second open must load it.
	key, err := DigestDir(dir)
	require.NoError(t, err)
	path, err := snapshotPath("indextest", key)
	require.NoError(t, err)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	loaded, err := Open("indextest", dir)
	require.NoError(t, err)
	if diff := cmp.Diff(built, loaded); diff != "" {
		t.Errorf("snapshot round trip mismatch (-built +loaded):\n%s", diff)
	}
}

func TestOpenIgnoresStaleSnapshot(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "walk(1)\n")

	key, err := DigestDir(dir)
	require.NoError(t, err)
	path, err := snapshotPath("indextest", key)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0o644))

	ix, err := Open("indextest", dir)
	require.NoError(t, err)
	assert.Len(t, ix.Refs("walk"), 1)
}

func TestDigestChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "walk(1)\n")

	before, err := DigestDir(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("walk(1)\nwalk(2)\n"), 0o644))
	after, err := DigestDir(dir)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}
