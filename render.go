// render.go
//
// Console rendering of the constraint state and remaining candidates:
// the confirmed-letter row, per-letter availability grids, and the
// possible-word list. Confirmed letters render green, required letters
// yellow.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/colorstring"

	"github.com/robalobadob/wordle-helper/internal/progress"
	"github.com/robalobadob/wordle-helper/internal/word"
)

const rule = "-----------"

// printInfo renders the full board: known letters, required letters with
// the positions they can still occupy, the availability grid for the
// whole alphabet, and the remaining candidate words.
func printInfo(out io.Writer, p *progress.Progress, remaining []word.Word) {
	fmt.Fprintln(out, "Known letters")
	cells := make([]string, word.Length)
	for i := range cells {
		if l, ok := p.ConfirmedAt(i); ok {
			cells[i] = colorstring.Color("[green]" + l.String())
		} else {
			cells[i] = " "
		}
	}
	fmt.Fprintf(out, "  |%s|\n", strings.Join(cells, "|"))
	fmt.Fprintln(out, rule)

	fmt.Fprintln(out, "Required letters")
	for _, l := range p.MustInclude() {
		fmt.Fprintf(out, "%s |%s|\n", colorstring.Color("[yellow]"+l.String()), strings.Join(optionRow(p, l), "|"))
	}
	fmt.Fprintln(out, rule)

	fmt.Fprintln(out, "Available letters")
	for i := 0; i < word.AlphabetSize; i++ {
		l := word.LetterAt(i)
		fmt.Fprintf(out, "%s |%s|\n", l.String(), strings.Join(optionRow(p, l), "|"))
	}
	fmt.Fprintln(out, rule)

	fmt.Fprintf(out, "Possible words (%d options)\n", len(remaining))
	for _, w := range remaining {
		letters := make([]string, word.Length)
		for i, l := range w {
			letters[i] = l.String()
		}
		fmt.Fprintf(out, "  |%s|\n", strings.Join(letters, "|"))
	}
	fmt.Fprintln(out, rule)
}

// optionRow marks with X each open position where l is still possible.
func optionRow(p *progress.Progress, l word.Letter) []string {
	row := make([]string, word.Length)
	for i := range row {
		row[i] = " "
		for _, o := range p.OptionsAt(i) {
			if o == l {
				row[i] = "X"
				break
			}
		}
	}
	return row
}
