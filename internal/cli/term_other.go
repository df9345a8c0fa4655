//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package cli

// isTerminal always reports false; the REPL then reads plain lines.
func isTerminal(uintptr) bool { return false }
