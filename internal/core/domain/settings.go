package domain

// Settings holds everything a run needs to know about the library being built.
type Settings struct {
	// Library is the human-readable name used in status lines.
	Library string
	// TemplatePath is the static make template, relative to the working directory.
	TemplatePath string
	// DescriptorPath is where the generated descriptor is written and later removed.
	DescriptorPath string
	// BuildTool is the external build tool invoked against the descriptor.
	BuildTool string
	// QuietFlag silences the build tool's own rule echoing.
	QuietFlag string
	// FileFlag points the build tool at the descriptor.
	FileFlag string
	// Compilers are probed in order; the last resolvable one wins.
	Compilers []Candidate
	// DefaultOptimizationFlags apply when no compiler is found.
	DefaultOptimizationFlags string
	// FeatureFlags is the baseline set of preprocessor definitions.
	FeatureFlags []string
	// PlatformFlags are appended to the baseline when the host platform matches the key.
	PlatformFlags map[string][]string
	// Platform overrides host detection when non-empty.
	Platform string
	// Strict surfaces a failed build as an error instead of absorbing it.
	Strict bool
}

// DefaultSettings returns the settings for building Triangle++ from its
// source tree.
func DefaultSettings() Settings {
	return Settings{
		Library:        "Triangle++",
		TemplatePath:   "./src/makefile.input",
		DescriptorPath: "./src/makefile.tmp",
		BuildTool:      "make",
		QuietFlag:      "--quiet",
		FileFlag:       "-f",
		Compilers: []Candidate{
			{Name: "icpc", OptimizationFlags: "-O"},
			{Name: "g++", OptimizationFlags: "-O3"},
		},
		DefaultOptimizationFlags: "-g -Wall",
		FeatureFlags: []string{
			"-DREDUCED",
			"-DANSI_DECLARATORS",
			"-DTRILIBRARY",
			"-DCDT_ONLY",
			"-DLINUX",
		},
		PlatformFlags: map[string][]string{
			"cygwin": {"-DCYGWIN"},
		},
	}
}
