package types

// RunOptions carries the three inputs and the header-row choice for one
// resolve-and-transfer pass.
type RunOptions struct {
	MasterPath     string
	OnboardingPath string
	AliasPath      string
	// HeaderRow is the 1-based onboarding header row; 0 means auto-detect.
	HeaderRow int
	// OutputPath overrides the default output location when non-empty.
	OutputPath string
}

// RunResult summarizes a completed pass.
type RunResult struct {
	OutputFile  string
	HeaderRow   int // 1-based header row actually used
	KeptColumns int // onboarding columns surviving header cleaning
	Resolved    int
	Unmatched   []string
	Report      []string
	RowsWritten int
}
