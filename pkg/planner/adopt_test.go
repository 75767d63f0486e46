package planner

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/testutil"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdoptFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.AddTargetFile(".config/git/config", "[user]")
	pkg := types.Package{Name: "git", Path: filepath.Join(env.DotfilesDir, "git")}

	plan, err := newPlanner(env, plannerOpts{}).Adopt(pkg, []string{path})
	require.NoError(t, err)
	assert.Empty(t, plan.Conflicts)

	dest := env.PackagePath("git", ".config/git/config")
	assert.Equal(t, []types.Action{
		{Kind: types.ActionCreateDirectory, Target: pkg.Path, Entry: ".config/git/config", Mode: 0755},
		{Kind: types.ActionCreateDirectory, Target: env.PackagePath("git", ".config"), Entry: ".config/git/config", Mode: 0755},
		{Kind: types.ActionCreateDirectory, Target: env.PackagePath("git", ".config/git"), Entry: ".config/git/config", Mode: 0755},
		{Kind: types.ActionCopyFileIntoPackage, Source: path, Target: dest, Entry: ".config/git/config", Mode: 0644},
		{Kind: types.ActionCreateSymlink, Source: dest, Target: path, Entry: ".config/git/config", Replace: true},
	}, plan.Actions)
}

func TestAdoptDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("nvim")
	env.AddFile("nvim", ".config/nvim/existing.lua", "")
	env.AddTargetFile(".config/nvim/init.lua", "")
	env.AddTargetFile(".config/nvim/existing.lua", "")
	env.AddTargetLink(".config/nvim/link.lua", "/etc/hosts")

	plan, err := newPlanner(env, plannerOpts{}).Adopt(pkg, []string{env.TargetPath(".config/nvim")})
	require.NoError(t, err)

	assert.Equal(t, []types.ActionKind{types.ActionCopyFileIntoPackage, types.ActionCreateSymlink}, kinds(plan))
	assert.Equal(t, ".config/nvim/init.lua", plan.Actions[0].Entry)

	require.Len(t, plan.Conflicts, 2)
	assert.Equal(t, env.TargetPath(".config/nvim/existing.lua"), plan.Conflicts[0].Path)
	assert.Contains(t, plan.Conflicts[0].Reason, "already exists in package")
	assert.Equal(t, env.TargetPath(".config/nvim/link.lua"), plan.Conflicts[1].Path)
	assert.Contains(t, plan.Conflicts[1].Reason, "symlink")
}

func TestAdoptConflicts(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	env.AddFile("zsh", ".zshrc", "")
	linked := env.Link("zsh", ".zshrc")
	outside := env.AddTargetFile("../outside.txt", "x")
	require.Equal(t, filepath.Join(env.Root, "outside.txt"), outside)

	plan, err := newPlanner(env, plannerOpts{}).Adopt(pkg, []string{linked, outside})
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	require.Len(t, plan.Conflicts, 2)
	assert.Contains(t, plan.Conflicts[0].Reason, "already adopted")
	assert.Contains(t, plan.Conflicts[1].Reason, "outside the target directory")
}

func TestAdoptMissingSourceIsFatal(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	present := env.AddTargetFile(".zshrc", "")

	_, err := newPlanner(env, plannerOpts{}).Adopt(pkg, []string{present, env.TargetPath(".missing")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAdoptSourceMissing))
}
