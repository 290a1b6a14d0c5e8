// Package cliutil holds small helpers shared by the command line tools
package cliutil

import "golang.org/x/term"

// IsTty reports whether fd refers to a terminal
func IsTty(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}
