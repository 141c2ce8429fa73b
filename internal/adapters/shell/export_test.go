package shell

// LookPathFor exposes the environment-driven PATH search for a given GOOS.
func LookPathFor(file string, env []string, goos string) (string, error) {
	return lookPath(file, env, goos)
}
