// a11ykit - An accessibility auditor for UI element snapshots
//
// a11ykit rates colour contrast against WCAG 2.0, checks touch targets and
// accessibility metadata, and validates colours against an approved palette.
package main

import (
	"os"

	"github.com/jmylchreest/a11ykit/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
