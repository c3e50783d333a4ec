package assets

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/filesystem"
	"github.com/fortresskit/gfxpack/pkg/types"
)

func memFS(t *testing.T, files map[string]string, dirs ...string) types.FS {
	t.Helper()
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	for _, dir := range dirs {
		require.NoError(t, fsys.MkdirAll(dir, 0o755))
	}
	for path, content := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, fsys.WriteFile(path, []byte(content), 0o644))
	}
	return fsys
}

func kinds(plan *Plan) []OpKind {
	out := make([]OpKind, 0, plan.Len())
	for _, op := range plan.Ops() {
		out = append(out, op.Kind)
	}
	return out
}

func TestPlanPrimitives(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.Empty())

	plan.CreateDir("/a")
	plan.CopyFile("/src", "/a/f")
	plan.WriteFile("/a/g", []byte("x"), 0o600)
	plan.DeleteFile("/a/h")

	require.Equal(t, 4, plan.Len())
	assert.False(t, plan.Empty())
	assert.Equal(t, []OpKind{OpCreateDir, OpCopyFile, OpWriteFile, OpDeleteFile}, kinds(plan))
	assert.Equal(t, "/src", plan.Ops()[1].Source)
	assert.Equal(t, []byte("x"), plan.Ops()[2].Content)
	assert.Equal(t, uint32(0o600), plan.Ops()[2].Mode)
}

func TestAddCopyFile(t *testing.T) {
	fsys := memFS(t, map[string]string{"/dst/existing.png": "old"})

	t.Run("missing target", func(t *testing.T) {
		plan := NewPlan()
		added := AddCopyFile(fsys, plan, "/src/new.png", "/dst/new.png", false)
		assert.True(t, added)
		assert.Equal(t, []OpKind{OpCopyFile}, kinds(plan))
	})

	t.Run("existing target is deleted first", func(t *testing.T) {
		plan := NewPlan()
		added := AddCopyFile(fsys, plan, "/src/existing.png", "/dst/existing.png", false)
		assert.True(t, added)
		assert.Equal(t, []OpKind{OpDeleteFile, OpCopyFile}, kinds(plan))
	})

	t.Run("existing target skipped", func(t *testing.T) {
		plan := NewPlan()
		added := AddCopyFile(fsys, plan, "/src/existing.png", "/dst/existing.png", true)
		assert.False(t, added)
		assert.True(t, plan.Empty())
	})
}

func TestAddTree(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/pack/art/curses.png":      "curses",
		"/pack/art/mouse.png":       "mouse",
		"/pack/art/extra/graph.png": "graph",
	})

	plan := NewPlan()
	require.NoError(t, AddTree(fsys, plan, "/pack/art", "/df/data/art", CopyTreeOptions{}))

	var created, copied []string
	for _, op := range plan.Ops() {
		switch op.Kind {
		case OpCreateDir:
			created = append(created, op.Target)
		case OpCopyFile:
			copied = append(copied, op.Target)
		}
	}
	assert.Equal(t, []string{"/df/data/art", "/df/data/art/extra"}, created)
	assert.ElementsMatch(t, []string{
		"/df/data/art/curses.png",
		"/df/data/art/mouse.png",
		"/df/data/art/extra/graph.png",
	}, copied)
}

func TestAddTreeExistingTargets(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/pack/art/curses.png":    "new",
		"/df/data/art/curses.png": "old",
	})

	t.Run("overwrite plans delete then copy", func(t *testing.T) {
		plan := NewPlan()
		require.NoError(t, AddTree(fsys, plan, "/pack/art", "/df/data/art", CopyTreeOptions{}))
		assert.Equal(t, []OpKind{OpDeleteFile, OpCopyFile}, kinds(plan),
			"existing target dir must not be recreated")
	})

	t.Run("skip existing", func(t *testing.T) {
		plan := NewPlan()
		require.NoError(t, AddTree(fsys, plan, "/pack/art", "/df/data/art", CopyTreeOptions{SkipExisting: true}))
		assert.True(t, plan.Empty())
	})
}

func TestAddTreeMissingSource(t *testing.T) {
	fsys := memFS(t, nil, "/df")

	plan := NewPlan()
	err := AddTree(fsys, plan, "/pack/data/twbt_art", "/df/data/art", CopyTreeOptions{MissingOK: true})
	require.NoError(t, err)
	assert.True(t, plan.Empty())

	err = AddTree(fsys, plan, "/pack/data/art", "/df/data/art", CopyTreeOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestAddTreeSourceNotDir(t *testing.T) {
	fsys := memFS(t, map[string]string{"/pack/art": "a file, not a dir"})

	err := AddTree(fsys, NewPlan(), "/pack/art", "/df/data/art", CopyTreeOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
