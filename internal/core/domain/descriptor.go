package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// DescriptorSeparator frames the generated header inside the descriptor.
	DescriptorSeparator = "#--------------------------"

	// CompilerVar names the make variable holding the compiler.
	CompilerVar = "CC"
	// OptimizationVar names the make variable holding the optimization flags.
	OptimizationVar = "OFLAGS"
	// FeatureVar names the make variable holding the feature flags.
	FeatureVar = "TFLAGS"
)

// Descriptor is a make file built from generated variable definitions
// followed by the untouched lines of the static template.
type Descriptor struct {
	Compiler CompilerChoice
	Flags    FeatureFlags
	Template []string
}

// Header returns the generated lines in the order make has to see them:
// separator, compiler definition, feature flags, separator.
func (d Descriptor) Header() []string {
	return []string{
		DescriptorSeparator,
		CompilerVar + "=" + d.Compiler.Name,
		OptimizationVar + "=" + d.Compiler.OptimizationFlags,
		FeatureVar + "=" + d.Flags.String(),
		DescriptorSeparator,
	}
}

// Lines returns the header followed by the template lines.
func (d Descriptor) Lines() []string {
	header := d.Header()
	lines := make([]string, 0, len(header)+len(d.Template))
	lines = append(lines, header...)
	return append(lines, d.Template...)
}

// Bytes returns the file image of the descriptor, one newline-terminated
// line per entry of Lines.
func (d Descriptor) Bytes() []byte {
	var b strings.Builder
	for _, line := range d.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Digest fingerprints the descriptor contents.
func (d Descriptor) Digest() string {
	return fmt.Sprintf("%016x", xxhash.Sum64(d.Bytes()))
}
