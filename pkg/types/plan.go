package types

import "fmt"

// Command names a stau operation
type Command string

const (
	CommandInstall   Command = "install"
	CommandUninstall Command = "uninstall"
	CommandRestow    Command = "restow"
	CommandAdopt     Command = "adopt"
	CommandClean     Command = "clean"
	CommandStatus    Command = "status"
	CommandList      Command = "list"
)

// Conflict is a target path the planner refused to touch
type Conflict struct {
	Path    string      `json:"path" yaml:"path"`
	Entry   string      `json:"entry,omitempty" yaml:"entry,omitempty"`
	Current TargetState `json:"current" yaml:"current"`

	// Required is the action that would have been needed
	Required ActionKind `json:"required,omitempty" yaml:"required,omitempty"`

	Reason string `json:"reason" yaml:"reason"`
}

// Message returns the conflict as a single actionable sentence
func (c Conflict) Message() string {
	return fmt.Sprintf("%s: %s", c.Path, c.Reason)
}

// Plan is the ordered list of actions for one command, plus the conflicts
// found while planning
type Plan struct {
	Command   Command    `json:"command" yaml:"command"`
	Package   string     `json:"package,omitempty" yaml:"package,omitempty"`
	Actions   []Action   `json:"actions" yaml:"actions"`
	Conflicts []Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
	Force     bool       `json:"force,omitempty" yaml:"force,omitempty"`
}

// HasConflicts reports whether planning found conflicts
func (p *Plan) HasConflicts() bool {
	return len(p.Conflicts) > 0
}

// IsEmpty reports whether there is nothing to do
func (p *Plan) IsEmpty() bool {
	return len(p.Actions) == 0
}

// ConflictPaths returns the set of conflicting target paths
func (p *Plan) ConflictPaths() map[string]bool {
	set := make(map[string]bool, len(p.Conflicts))
	for _, c := range p.Conflicts {
		set[c.Path] = true
	}
	return set
}

// AddAction appends an action
func (p *Plan) AddAction(a Action) {
	p.Actions = append(p.Actions, a)
}

// AddConflict appends a conflict
func (p *Plan) AddConflict(c Conflict) {
	p.Conflicts = append(p.Conflicts, c)
}
