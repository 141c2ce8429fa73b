package domain

// Stage names a step of a build run.
type Stage string

const (
	// StageProbing is the compiler probe.
	StageProbing Stage = "probing"
	// StageAssembling is the descriptor assembly.
	StageAssembling Stage = "assembling"
	// StageBuilding is the build tool invocation and descriptor cleanup.
	StageBuilding Stage = "building"
	// StageDone is reached once the build driver returns, whatever the build outcome.
	StageDone Stage = "done"
)

// String returns the stage name.
func (s Stage) String() string {
	return string(s)
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
