package model

// Status is a point-in-time view of what could be detected about the
// running platform and the environment it was exposed through.
type Status struct {
	ProcessName string           // Name fragment searched for (e.g. Starter)
	Detected    bool             // True if at least one process matched
	PID         Optional[int32]  // PID of the first match
	ProcessPath Optional[string] // Main executable of the first match
	ProcessDir  Optional[string] // Directory containing the executable
	Root        Optional[string] // Installation root derived from ProcessDir
	Indicators  Optional[string] // Custom indicators directory under Root

	RootExists       bool // Root resolved to an existing directory
	IndicatorsExists bool // Indicators resolved to an existing directory

	EnvKey       string           // Environment variable name
	EnvProcess   Optional[string] // Value visible to this process
	EnvUser      Optional[string] // Value persisted for the current user
	UserStore    string           // Where user-scope values live (registry key, file)
	EnvInSync    bool             // Both scopes hold the detected root
	ExploreMuted bool             // Explore requests are suppressed
}
