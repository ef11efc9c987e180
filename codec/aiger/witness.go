package aiger

import (
	"bufio"
	"io"
)

// WriteWitness writes a SAT counterexample in the §6 AIGER witness
// format: a leading "1" line, then one space-separated line of 0/1
// primary-input values per frame up to and including the violating one.
func WriteWitness(w io.Writer, pisByFrame [][]bool) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("1\n"); err != nil {
		return err
	}
	for _, row := range pisByFrame {
		for i, v := range row {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			b := byte('0')
			if v {
				b = '1'
			}
			if err := bw.WriteByte(b); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteUnsat writes the §6 UNSAT output: a bare "0" line.
func WriteUnsat(w io.Writer) error {
	_, err := io.WriteString(w, "0\n")
	return err
}
