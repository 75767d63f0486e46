package text

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/errors"
	"github.com/arthur-debert/stau/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	plan := &types.Plan{Command: types.CommandClean}
	action := types.Action{Kind: types.ActionRemoveSymlink, Target: "/h/.zprofile"}
	plan.AddAction(action)

	err := r.RenderResult(&commands.Result{
		Command: types.CommandClean,
		Plan:    plan,
		Actions: []types.ActionResult{{Action: action, Status: types.StatusApplied}},
	})
	require.NoError(t, err)
	assert.Equal(t, "clean\nActions\n  applied     remove link /h/.zprofile\n1 applied\n", buf.String())
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderError(errors.New(errors.ErrConflict, "install zsh: 1 conflict left untouched")))
	assert.Contains(t, buf.String(), "Error [CONFLICT]: install zsh: 1 conflict left untouched\n")
	assert.Contains(t, buf.String(), "Hint: ")
}
