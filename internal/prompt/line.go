package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// LineUI asks questions on plain line-oriented streams. It is used when stdin
// is not a terminal (piped input, CI).
type LineUI struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLineUI creates a LineUI reading answers from in and writing prompts to out.
func NewLineUI(in io.Reader, out io.Writer) *LineUI {
	return &LineUI{reader: bufio.NewReader(in), out: out}
}

// Input prints the question, reads one line, and re-asks after printing the
// validation message until the answer is accepted. End of input before a valid
// answer is an error.
func (ui *LineUI) Input(title string, defaultValue string, validate func(string) error) (string, error) {
	for {
		if _, err := fmt.Fprintf(ui.out, messages.PromptLineFmt, title, defaultValue); err != nil {
			return "", err
		}
		line, readErr := ui.reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", readErr
		}
		eof := errors.Is(readErr, io.EOF)
		if eof && line == "" {
			return "", errors.New(messages.PromptInputClosed)
		}
		answer := orDefault(strings.TrimRight(line, "\r\n"), defaultValue)
		err := validate(answer)
		if err == nil {
			return answer, nil
		}
		if eof {
			return "", err
		}
		if _, werr := fmt.Fprintf(ui.out, messages.PromptRetryFmt, err); werr != nil {
			return "", werr
		}
	}
}
