package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/teyvatdex/catalog/internal/ports"
)

// Renderer writes user-facing lines to an output stream, normally stdout.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a console renderer
func NewRenderer(out io.Writer) ports.Renderer {
	return &Renderer{out: out}
}

// Render writes one line to the output stream.
func (r *Renderer) Render(line string) {
	fmt.Fprintln(r.out, line)
}

// Prompter reads one line of input per prompt from an input stream, normally
// stdin.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a console prompter
func NewPrompter(in io.Reader, out io.Writer) ports.Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt prints the label and returns the next input line without its
// trailing newline.
func (p *Prompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
