// Package ui holds shared terminal styling helpers used by the views.
package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// PrintL1Title prints a top-level section banner.
func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	style.Printf(" %s   \n", fmt.Sprintf(format, a...))
}

// PrintL2Title prints a second-level section heading.
func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	style.Printf("# %s   \n", fmt.Sprintf(format, a...))
}
