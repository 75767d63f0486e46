package planner

import (
	"testing"

	"github.com/arthur-debert/stau/pkg/cleaner"
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/packs"
	"github.com/arthur-debert/stau/pkg/probe"
	"github.com/arthur-debert/stau/pkg/testutil"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plannerOpts struct {
	force    bool
	copyBack bool
	prune    bool
}

func newPlanner(env *testutil.TestEnvironment, o plannerOpts) *Planner {
	prober := probe.New(env.FS, env.DotfilesDir)
	return New(Options{
		FS:        env.FS,
		Prober:    prober,
		Walker:    packs.NewWalker(env.FS, nil),
		Cleaner:   cleaner.New(env.FS, prober, env.TargetDir, nil),
		TargetDir: env.TargetDir,
		Force:     o.force,
		CopyBack:  o.copyBack,
		Prune:     o.prune,
	})
}

func kinds(plan *types.Plan) []types.ActionKind {
	var out []types.ActionKind
	for _, a := range plan.Actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestInstall(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("nvim")
	env.AddFile("nvim", ".vimrc", "")
	env.AddFile("nvim", ".config/nvim/init.lua", "")
	env.AddFile("nvim", ".config/nvim/lua/plugins.lua", "")
	env.AddTargetDir(".config")

	plan, err := newPlanner(env, plannerOpts{}).Install(pkg)
	require.NoError(t, err)

	assert.Equal(t, types.CommandInstall, plan.Command)
	assert.Equal(t, "nvim", plan.Package)
	assert.Empty(t, plan.Conflicts)
	assert.Equal(t, []types.Action{
		{Kind: types.ActionCreateDirectory, Target: env.TargetPath(".config/nvim"), Entry: ".config/nvim/init.lua", Mode: 0755},
		{Kind: types.ActionCreateSymlink, Source: env.PackagePath("nvim", ".config/nvim/init.lua"), Target: env.TargetPath(".config/nvim/init.lua"), Entry: ".config/nvim/init.lua"},
		{Kind: types.ActionCreateDirectory, Target: env.TargetPath(".config/nvim/lua"), Entry: ".config/nvim/lua/plugins.lua", Mode: 0755},
		{Kind: types.ActionCreateSymlink, Source: env.PackagePath("nvim", ".config/nvim/lua/plugins.lua"), Target: env.TargetPath(".config/nvim/lua/plugins.lua"), Entry: ".config/nvim/lua/plugins.lua"},
		{Kind: types.ActionCreateSymlink, Source: env.PackagePath("nvim", ".vimrc"), Target: env.TargetPath(".vimrc"), Entry: ".vimrc"},
	}, plan.Actions)
}

func TestInstallStates(t *testing.T) {
	tests := []struct {
		name      string
		force     bool
		nested    bool
		setup     func(env *testutil.TestEnvironment)
		want      []types.ActionKind
		conflicts int
	}{
		{
			name:  "already linked",
			setup: func(env *testutil.TestEnvironment) { env.Link("zsh", ".zshrc") },
		},
		{
			name:      "regular file",
			setup:     func(env *testutil.TestEnvironment) { env.AddTargetFile(".zshrc", "mine") },
			conflicts: 1,
		},
		{
			name:  "regular file forced",
			force: true,
			setup: func(env *testutil.TestEnvironment) { env.AddTargetFile(".zshrc", "mine") },
			want:  []types.ActionKind{types.ActionRemovePath, types.ActionCreateSymlink},
		},
		{
			name:      "directory",
			setup:     func(env *testutil.TestEnvironment) { env.AddTargetDir(".zshrc") },
			conflicts: 1,
		},
		{
			name:  "directory forced",
			force: true,
			setup: func(env *testutil.TestEnvironment) { env.AddTargetDir(".zshrc") },
			want:  []types.ActionKind{types.ActionRemovePath, types.ActionCreateSymlink},
		},
		{
			name:      "foreign link",
			setup:     func(env *testutil.TestEnvironment) { env.AddTargetLink(".zshrc", "/etc/zshrc") },
			conflicts: 1,
		},
		{
			name:  "foreign link forced",
			force: true,
			setup: func(env *testutil.TestEnvironment) { env.AddTargetLink(".zshrc", "/etc/zshrc") },
			want:  []types.ActionKind{types.ActionRemovePath, types.ActionCreateSymlink},
		},
		{
			name: "link into another package",
			setup: func(env *testutil.TestEnvironment) {
				env.AddFile("other", ".zshrc", "")
				env.Link("other", ".zshrc")
			},
			conflicts: 1,
		},
		{
			name:      "stale link into this package",
			setup:     func(env *testutil.TestEnvironment) { env.AddTargetLink(".zshrc", env.PackagePath("zsh", ".zshenv")) },
			conflicts: 1,
		},
		{
			name:  "stale link forced",
			force: true,
			setup: func(env *testutil.TestEnvironment) { env.AddTargetLink(".zshrc", env.PackagePath("zsh", ".zshenv")) },
			want:  []types.ActionKind{types.ActionRemoveSymlink, types.ActionCreateSymlink},
		},
		{
			name:      "parent is a file",
			nested:    true,
			setup:     func(env *testutil.TestEnvironment) { env.AddTargetFile(".zsh", "x") },
			conflicts: 1,
			want:      []types.ActionKind{types.ActionCreateSymlink},
		},
		{
			name:   "parent is a file forced",
			force:  true,
			nested: true,
			setup:  func(env *testutil.TestEnvironment) { env.AddTargetFile(".zsh", "x") },
			want: []types.ActionKind{
				types.ActionRemovePath, types.ActionCreateDirectory, types.ActionCreateSymlink,
				types.ActionCreateSymlink,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			pkg := env.Package("zsh")
			if tt.nested {
				env.AddFile("zsh", ".zsh/aliases.zsh", "")
				env.AddFile("zsh", ".zshenv", "")
			} else {
				env.AddFile("zsh", ".zshrc", "")
			}
			tt.setup(env)

			plan, err := newPlanner(env, plannerOpts{force: tt.force}).Install(pkg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kinds(plan))
			assert.Len(t, plan.Conflicts, tt.conflicts)
			for _, c := range plan.Conflicts {
				assert.NotEmpty(t, c.Reason)
				assert.NotEmpty(t, c.Entry)
			}
		})
	}
}

func TestInstallZshrcConflictMessage(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	env.AddFile("zsh", ".zshrc", "")
	env.AddTargetFile(".zshrc", "mine")

	plan, err := newPlanner(env, plannerOpts{}).Install(pkg)
	require.NoError(t, err)
	require.Len(t, plan.Conflicts, 1)

	c := plan.Conflicts[0]
	assert.Equal(t, env.TargetPath(".zshrc"), c.Path)
	assert.Equal(t, ".zshrc", c.Entry)
	assert.Equal(t, types.TargetRegularFile, c.Current.Kind)
	assert.Equal(t, types.ActionCreateSymlink, c.Required)
	assert.Contains(t, c.Reason, "--force")
	assert.Contains(t, c.Reason, "stau adopt zsh")
	assert.Empty(t, plan.Actions)
}

func TestInstallThroughFoldedParent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("nvim")
	env.AddFile("nvim", ".config/nvim/init.lua", "")
	env.AddTargetDir(".config")
	env.AddTargetLink(".config/nvim", env.PackagePath("nvim", ".config/nvim"))

	plan, err := newPlanner(env, plannerOpts{force: true}).Install(pkg)
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Empty(t, plan.Conflicts)
}

func TestInstallWalkError(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	pkg := env.Package("zsh")
	env.AddFile("zsh", ".stau.toml", "ignore = [")

	_, err := newPlanner(env, plannerOpts{}).Install(pkg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackageInvalid))
}
