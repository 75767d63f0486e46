package scripts

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/testutil"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hookFor(env *testutil.TestEnvironment, script string) types.ScriptHook {
	return types.ScriptHook{
		Kind:    types.HookSetup,
		Package: "zsh",
		Script:  script,
		Dir:     env.TargetDir,
		Env: map[string]string{
			types.ScriptEnvDir:     env.DotfilesDir,
			types.ScriptEnvPackage: "zsh",
			types.ScriptEnvTarget:  env.TargetDir,
		},
	}
}

func TestRunStreamsOutputWithEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	script := env.AddScript("zsh", "setup.sh", `echo "$STAU_PACKAGE $(pwd)"; echo oops >&2; touch made-here`)

	var stdout, stderr bytes.Buffer
	r := NewRunner()
	r.Stdout = &stdout
	r.Stderr = &stderr

	require.NoError(t, r.Run(context.Background(), hookFor(env, script)))
	assert.Equal(t, "zsh "+env.TargetDir+"\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
	testutil.AssertFile(t, filepath.Join(env.TargetDir, "made-here"), "")
}

func TestRunFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	script := env.AddScript("zsh", "setup.sh", "exit 3")

	r := NewRunner()
	r.Stdout = &bytes.Buffer{}
	r.Stderr = &bytes.Buffer{}

	err := r.Run(context.Background(), hookFor(env, script))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptFailed))
	assert.Equal(t, script, errors.GetErrorDetails(err)["path"])
}

func TestRunCancelled(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	script := env.AddScript("zsh", "setup.sh", "sleep 5")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner()
	err := r.Run(ctx, hookFor(env, script))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScriptFailed))
}
