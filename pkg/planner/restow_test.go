package planner

import (
	"testing"

	"github.com/arthur-debert/stau/pkg/testutil"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestowInstalledPackageIsNoop(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	env.AddFile("zsh", ".zshrc", "")
	env.AddFile("zsh", ".zsh/aliases.zsh", "")
	env.Link("zsh", ".zshrc")
	env.Link("zsh", ".zsh/aliases.zsh")

	plan, err := newPlanner(env, plannerOpts{}).Restow(pkg)
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Empty(t, plan.Conflicts)
}

func TestRestowRelinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	env.AddFile("zsh", ".zshrc", "")
	env.AddFile("zsh", ".zshenv", "")
	env.Link("zsh", ".zshrc")
	// stale link for an existing entry, pointing at a removed file
	env.AddTargetLink(".zshenv", env.PackagePath("zsh", ".zshenv.bak"))
	// leftover link for a removed entry
	env.AddTargetLink(".zlogin", env.PackagePath("zsh", ".zlogin"))
	// new entry
	env.AddFile("zsh", ".zprofile", "")

	plan, err := newPlanner(env, plannerOpts{}).Restow(pkg)
	require.NoError(t, err)
	assert.Empty(t, plan.Conflicts)

	assert.Equal(t, []types.Action{
		{Kind: types.ActionRemoveSymlink, Target: env.TargetPath(".zlogin"), Entry: ".zlogin"},
		{Kind: types.ActionRemoveSymlink, Target: env.TargetPath(".zshenv"), Entry: ".zshenv.bak"},
		{Kind: types.ActionCreateSymlink, Source: env.PackagePath("zsh", ".zprofile"), Target: env.TargetPath(".zprofile"), Entry: ".zprofile"},
		{Kind: types.ActionCreateSymlink, Source: env.PackagePath("zsh", ".zshenv"), Target: env.TargetPath(".zshenv"), Entry: ".zshenv"},
	}, plan.Actions)
}

func TestRestowKeepsConflicts(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	env.AddFile("zsh", ".zshrc", "")
	env.AddTargetFile(".zshrc", "mine")

	plan, err := newPlanner(env, plannerOpts{}).Restow(pkg)
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Len(t, plan.Conflicts, 1)
}

func TestClean(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.Package("zsh")
	env.AddFile("zsh", ".zshrc", "")
	env.Link("zsh", ".zshrc")
	env.AddTargetLink(".zshenv", env.PackagePath("zsh", ".zshenv"))
	env.AddTargetLink(".gitconfig", env.PackagePath("git", ".gitconfig"))

	plan, err := newPlanner(env, plannerOpts{}).Clean()
	require.NoError(t, err)
	assert.Equal(t, types.CommandClean, plan.Command)
	assert.Equal(t, []types.Action{
		{Kind: types.ActionRemoveSymlink, Target: env.TargetPath(".gitconfig"), Entry: ".gitconfig"},
		{Kind: types.ActionRemoveSymlink, Target: env.TargetPath(".zshenv"), Entry: ".zshenv"},
	}, plan.Actions)

	plan, err = newPlanner(env, plannerOpts{}).Clean("zsh")
	require.NoError(t, err)
	assert.Equal(t, "zsh", plan.Package)
	assert.Equal(t, []types.ActionKind{types.ActionRemoveSymlink}, kinds(plan))
}
