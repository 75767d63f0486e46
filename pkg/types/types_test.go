package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageFilePath(t *testing.T) {
	p := Package{Name: "nvim", Path: "/dotfiles/nvim"}
	assert.Equal(t, "/dotfiles/nvim/.config/nvim/init.lua", p.FilePath(".config/nvim/init.lua"))
}

func TestTargetStateDescribe(t *testing.T) {
	tests := []struct {
		name  string
		state TargetState
		want  string
	}{
		{"absent", TargetState{Kind: TargetAbsent}, "nothing"},
		{"managed", TargetState{Kind: TargetManagedLink, Package: "zsh", Entry: ".zshrc"}, "link to zsh/.zshrc"},
		{"managed broken", TargetState{Kind: TargetManagedLink, Destination: "/d/zsh/.zshrc", Broken: true}, "broken link to /d/zsh/.zshrc"},
		{"foreign", TargetState{Kind: TargetForeignLink, Destination: "/etc/hosts"}, "link to /etc/hosts"},
		{"other package", TargetState{Kind: TargetForeignLink, Package: "bash"}, "link into package bash"},
		{"foreign broken", TargetState{Kind: TargetForeignLink, Destination: "/gone", Broken: true}, "broken link to /gone"},
		{"file", TargetState{Kind: TargetRegularFile}, "existing file"},
		{"dir", TargetState{Kind: TargetDirectory}, "existing directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Describe())
		})
	}

	assert.True(t, TargetState{Kind: TargetForeignLink}.IsLink())
	assert.False(t, TargetState{Kind: TargetDirectory}.IsLink())
}

func TestActionDescribe(t *testing.T) {
	a := Action{Kind: ActionCreateSymlink, Source: "/d/zsh/.zshrc", Target: "/h/.zshrc"}
	assert.Equal(t, "link /h/.zshrc -> /d/zsh/.zshrc", a.Describe())

	a.Replace = true
	assert.Contains(t, a.Describe(), "replace /h/.zshrc")

	assert.Equal(t, "delete /h/.zshrc", Action{Kind: ActionRemovePath, Target: "/h/.zshrc"}.Describe())
}

func TestPlan(t *testing.T) {
	p := &Plan{Command: CommandInstall, Package: "zsh"}
	assert.True(t, p.IsEmpty())
	assert.False(t, p.HasConflicts())

	p.AddAction(Action{Kind: ActionCreateSymlink, Target: "/h/.zshenv"})
	p.AddConflict(Conflict{Path: "/h/.zshrc", Reason: "an existing file is in the way"})

	assert.False(t, p.IsEmpty())
	assert.True(t, p.HasConflicts())
	assert.Equal(t, map[string]bool{"/h/.zshrc": true}, p.ConflictPaths())
	assert.Equal(t, "/h/.zshrc: an existing file is in the way", p.Conflicts[0].Message())
}

func TestPackageStatusDeriveState(t *testing.T) {
	tests := []struct {
		name   string
		status PackageStatus
		want   InstallState
	}{
		{"all linked", PackageStatus{Linked: 3}, StateInstalled},
		{"some linked", PackageStatus{Linked: 1, Missing: 2}, StatePartial},
		{"linked and conflicted", PackageStatus{Linked: 1, Conflicted: 1}, StatePartial},
		{"none linked", PackageStatus{Missing: 2}, StateNotInstalled},
		{"empty", PackageStatus{}, StateNotInstalled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.DeriveState())
		})
	}
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus([]ActionResult{
		{Status: StatusApplied},
		{Status: StatusApplied},
		{Status: StatusFailed},
	})
	assert.Equal(t, 2, counts[StatusApplied])
	assert.Equal(t, 1, counts[StatusFailed])
	assert.True(t, ActionResult{Status: StatusSimulated}.Succeeded())
	assert.False(t, ActionResult{Status: StatusSkipped}.Succeeded())
}
