/*
File    : ziget/cmd/toolchain.go
Package : cmd
*/
package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/Zeph16/ziget/diag"
)

// compileAndLink drives the three external toolchain invocations spec.md
// §6 specifies: assemble the textual LLIR to machine assembly, assemble
// that to an object file, then link the object file into an executable.
// Each step's stdout/stderr goes straight to the process's own
// os.Stdout/os.Stderr, so the driver's output is surfaced verbatim; a
// non-zero exit is returned as an error naming the failed step.
func compileAndLink(clangPath string, p paths, r *diag.Reporter) error {
	steps := [][]string{
		{clangPath, "-S", p.ir, "-o", p.assembly, "-Wno-override-module"},
		{clangPath, "-c", p.assembly, "-o", p.object, "-Wno-override-module"},
		{clangPath, p.object, "-o", p.executable, "-pie", "-lc"},
	}
	for _, args := range steps {
		if err := runToolchainStep(args, r); err != nil {
			return err
		}
	}
	return nil
}

func runToolchainStep(args []string, r *diag.Reporter) error {
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("toolchain step %v failed: %w", args, err)
	}
	return nil
}
