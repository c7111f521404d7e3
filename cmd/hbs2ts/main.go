// Command hbs2ts transforms Handlebars-family templates into typed script
// text for a host type checker to consume.
package main

import (
	"errors"
	"os"

	"github.com/abiiranathan/hbs2ts/cmd/hbs2ts/internal/cli"
)

// Build-time variables, set by the linker via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{Version: version, Commit: commit}

	if err := cli.NewRootCommand(info).Execute(); err != nil {
		if !errors.Is(err, cli.ErrDiagnosticsFound) {
			os.Stderr.WriteString("hbs2ts: " + err.Error() + "\n")
		}
		return 1
	}
	return 0
}
