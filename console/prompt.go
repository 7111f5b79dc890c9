package console

import (
	"bufio"
	"fmt"
	"io"
	"rps/game"
)

const promptText = "Select your move [r]ock, [p]aper, [s]cissors: "

// Prompt reads the human's move one line at a time.
type Prompt struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{scanner: bufio.NewScanner(in), out: out}
}

// Select blocks until a valid move is entered. Unrecognised lines are
// rejected and the prompt is shown again; io.EOF is returned once input ends.
func (p *Prompt) Select() (game.Move, error) {
	for {
		fmt.Fprint(p.out, promptText)
		if !p.scanner.Scan() {
			fmt.Fprintln(p.out)
			if err := p.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}
		move, err := game.ParseMove(p.scanner.Text())
		if err != nil {
			fmt.Fprintf(p.out, "%v, try again.\n", err)
			continue
		}
		return move, nil
	}
}
