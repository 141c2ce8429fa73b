package domain

import "strings"

// FeatureFlags holds the preprocessor definitions handed to the library build.
// Platform flags are always appended after the baseline, never in its place.
type FeatureFlags struct {
	Baseline []string
	Platform []string
}

// All returns the baseline flags followed by the platform flags.
func (f FeatureFlags) All() []string {
	all := make([]string, 0, len(f.Baseline)+len(f.Platform))
	all = append(all, f.Baseline...)
	return append(all, f.Platform...)
}

// String renders the flags the way they appear in the descriptor.
func (f FeatureFlags) String() string {
	return strings.Join(f.All(), " ")
}
