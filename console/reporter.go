package console

import (
	"io"
	"rps/engine"
	"rps/game"
	"rps/player"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Reporter prints round summaries to a terminal.
type Reporter struct {
	out     io.Writer
	printer *message.Printer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		printer: message.NewPrinter(language.English),
	}
}

func (r *Reporter) Welcome() {
	r.printer.Fprintln(r.out, "Welcome to Rock Paper Scissors.")
}

func (r *Reporter) Round(round engine.Round) {
	r.printer.Fprintf(r.out, "You played %v, CPU played %v. %s\n", round.Human, round.CPU, verdict(round.Outcome))
	r.record(round.Tally)
}

func (r *Reporter) Frequencies(freqs []player.Frequency) {
	r.printer.Fprintf(r.out, "Frequency table (%d windows):\n", len(freqs))
	for _, f := range freqs {
		r.printer.Fprintf(r.out, "  %v: %d\n", f.Window, f.Count)
	}
}

// Summary prints the final record of a match.
func (r *Reporter) Summary(tally engine.Tally) {
	r.printer.Fprintf(r.out, "Played %d rounds.\n", tally.Rounds)
	r.record(tally)
}

func (r *Reporter) record(tally engine.Tally) {
	r.printer.Fprintf(r.out, "Record: %d wins, %d losses, %d ties. Win rate: %.1f%%\n",
		tally.HumanWins, tally.CPUWins, tally.Ties, tally.WinRate()*100)
}

func verdict(outcome game.Outcome) string {
	switch outcome {
	case game.HumanWins:
		return "You won!"
	case game.CPUWins:
		return "You lost :("
	default:
		return "Tie."
	}
}
