package cli

import (
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		inv, code, ok := start(cmd, args, stdout, stderr, nil)
		if !ok {
			return code
		}
		bank, ok := inv.loadBank()
		if !ok {
			return inv.finish(ExitError)
		}
		fmt.Fprintf(stdout, "Question bank OK (%d questions)\n", len(bank.Questions))
		return inv.finish(ExitOK)
	}
}
