package main

import (
	"fmt"

	"github.com/bnema/tintbar/internal/cli/cmd"
)

// Build-time variables (set via ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.SetVersion(fmt.Sprintf("%s (%s)", version, commit))
	cmd.Execute()
}
