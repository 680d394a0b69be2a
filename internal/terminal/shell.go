package terminal

import (
	"os"
	"path/filepath"
)

// defaultShellPath returns the shell to spawn when a Config leaves
// ShellPath empty: the SHELL environment variable if set, else /bin/zsh.
func defaultShellPath() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/zsh"
}

// resolveShellPath picks the shell to spawn: explicit configuration takes
// precedence over SHELL, which takes precedence over the built-in default.
func resolveShellPath(configured string) string {
	if configured != "" {
		return configured
	}
	return defaultShellPath()
}

// loginArgv0 returns the login-shell form of a shell path: a leading dash
// followed by the executable's base name (e.g. "/bin/zsh" -> "-zsh"),
// which tells the shell to read its login startup files.
func loginArgv0(shellPath string) string {
	return "-" + filepath.Base(shellPath)
}
