package prompt

import (
	"io"

	"github.com/conn-castle/create-littlejs/internal/project"
	"github.com/conn-castle/create-littlejs/internal/terminal"
)

var isInteractive = terminal.IsInteractive

// New returns a HuhUI when stdin and stdout are terminals and a LineUI over in/out otherwise.
func New(in io.Reader, out io.Writer) project.Prompter {
	if isInteractive() {
		return NewHuhUI()
	}
	return NewLineUI(in, out)
}
