package types

// InstallState summarizes how much of a package is linked
type InstallState string

const (
	StateInstalled    InstallState = "installed"
	StatePartial      InstallState = "partial"
	StateNotInstalled InstallState = "not installed"
)

// EntryCondition is the status of a single package entry
type EntryCondition string

const (
	EntryLinked     EntryCondition = "linked"
	EntryMissing    EntryCondition = "missing"
	EntryConflicted EntryCondition = "conflicted"
)

// EntryStatus describes one package entry in a status report
type EntryStatus struct {
	Entry     string         `json:"entry" yaml:"entry"`
	Condition EntryCondition `json:"condition" yaml:"condition"`
	Current   TargetState    `json:"current" yaml:"current"`
}

// PackageStatus is the read-only summary of a package's installation
type PackageStatus struct {
	Package    string        `json:"package" yaml:"package"`
	State      InstallState  `json:"state" yaml:"state"`
	Linked     int           `json:"linked" yaml:"linked"`
	Missing    int           `json:"missing" yaml:"missing"`
	Conflicted int           `json:"conflicted" yaml:"conflicted"`
	Broken     int           `json:"broken" yaml:"broken"`
	Entries    []EntryStatus `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// Total returns the number of entries considered
func (s PackageStatus) Total() int {
	return s.Linked + s.Missing + s.Conflicted
}

// DeriveState computes the aggregate state from the counters
func (s PackageStatus) DeriveState() InstallState {
	switch {
	case s.Linked > 0 && s.Linked == s.Total():
		return StateInstalled
	case s.Linked > 0:
		return StatePartial
	default:
		return StateNotInstalled
	}
}
