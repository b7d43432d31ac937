package domain

// Config represents the romcalc configuration loaded from romcalc.yaml.
type Config struct {
	Paths PathsConfig
	Trace TraceConfig
	Runs  RunsConfig
}

// PathsConfig holds workspace-relative stream and artifact locations.
type PathsConfig struct {
	Input      string
	Output     string
	ProcessLog string
	RunsDir    string
}

// TraceConfig toggles the process log.
type TraceConfig struct {
	Enabled bool
}

type RunsConfig struct {
	Save  bool
	Index bool
}

// DefaultConfig provides sane defaults if romcalc.yaml is partially missing.
// Stream names match the classic batch file names.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:      "Input.txt",
			Output:     "Output.txt",
			ProcessLog: "Process.txt",
			RunsDir:    "runs",
		},
		Trace: TraceConfig{Enabled: true},
		Runs:  RunsConfig{Save: true, Index: true},
	}
}

// WorkspaceSpec describes a workspace to initialize.
type WorkspaceSpec struct {
	Root string
}
