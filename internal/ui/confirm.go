package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks the user a yes/no question. Abstracted so non-interactive
// callers and tests can script the answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// IOConfirmer prompts on Out and reads one answer line from In. Only an
// explicit "y" or "yes" counts as confirmation.
type IOConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (c IOConfirmer) Confirm(prompt string) bool {
	fmt.Fprintln(c.Out, prompt)
	sc := bufio.NewScanner(c.In)
	if !sc.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(sc.Text()))
	return answer == "y" || answer == "yes"
}
