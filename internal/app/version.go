package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/agbru/fpsum/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version string. It is
// checked before flag parsing so that --version works alongside any other
// argument.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fpsum %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
