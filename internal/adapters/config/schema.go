package config

// Tribuildfile represents the structure of the tribuild.yaml settings file.
type Tribuildfile struct {
	Library             string              `yaml:"library"`
	Template            string              `yaml:"template"`
	Descriptor          string              `yaml:"descriptor"`
	Build               BuildDTO            `yaml:"build"`
	Compilers           []CompilerDTO       `yaml:"compilers"`
	DefaultOptimization string              `yaml:"defaultOptimization"`
	FeatureFlags        []string            `yaml:"featureFlags"`
	PlatformFlags       map[string][]string `yaml:"platformFlags"`
	Platform            string              `yaml:"platform"`
	Strict              bool                `yaml:"strict"`
}

// BuildDTO describes how the build tool is invoked.
type BuildDTO struct {
	Tool      string `yaml:"tool"`
	QuietFlag string `yaml:"quietFlag"`
	FileFlag  string `yaml:"fileFlag"`
}

// CompilerDTO represents a candidate compiler in the settings file.
type CompilerDTO struct {
	Name         string `yaml:"name"`
	Optimization string `yaml:"optimization"`
}
