// Package runner executes administrative commands through the host's
// scripting shell. It is the only integration point between the console and
// OS-level operations; everything above it treats command execution as an
// opaque capability so tests can substitute a fake.
package runner

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"
)

// Output captures the streams of one command execution. Following the
// original console's contract, a non-empty stderr means the command failed
// regardless of exit status.
type Output struct {
	Stdout string
	Stderr string
}

// Failed reports whether the command wrote to stderr.
func (o Output) Failed() bool {
	return strings.TrimSpace(o.Stderr) != ""
}

// Runner runs a single command string synchronously.
type Runner interface {
	Run(command string) (Output, error)
}

// Shell runs commands through PowerShell on Windows and sh elsewhere.
type Shell struct {
	name string
	args []string
}

// NewShell picks the platform's scripting shell.
func NewShell() *Shell {
	if runtime.GOOS == "windows" {
		return &Shell{name: "powershell.exe", args: []string{"-NoProfile", "-Command"}}
	}
	return &Shell{name: "sh", args: []string{"-c"}}
}

func (s *Shell) Run(command string) (Output, error) {
	cmd := exec.Command(s.name, append(append([]string{}, s.args...), command)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil && out.Failed() {
		// Exit status folds into the stderr contract.
		return out, nil
	}
	return out, err
}
