package blif

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// netName renders variable v's unsigned net name.
func netName(v int) string {
	return fmt.Sprintf("x%d", v)
}

// Write emits m (with per-latch initial values initValues, one per
// trailing latch PI/PO pair) as a BLIF model named modelName.
func Write(w io.Writer, m *aig.Manager, initValues []seqaig.LatchValue, modelName string) error {
	bw := bufio.NewWriter(w)

	numLatches := m.NumLatches
	pis := m.PIs()
	pos := m.POs()
	numRealPIs := len(pis) - numLatches
	numRealPOs := len(pos) - numLatches

	if _, err := fmt.Fprintf(bw, ".model %s\n", modelName); err != nil {
		return err
	}

	if err := writePortList(bw, ".inputs", pis[:numRealPIs]); err != nil {
		return err
	}

	// .outputs names the output net directly; a negated PO fanin needs an
	// inverter .names table, emitted after the AND-gate section below.
	outNames := make([]string, numRealPOs)
	for i := 0; i < numRealPOs; i++ {
		outNames[i] = outputNet(pos[i], i)
	}
	if _, err := fmt.Fprintf(bw, ".outputs"); err != nil {
		return err
	}
	for _, n := range outNames {
		if _, err := fmt.Fprintf(bw, " %s", n); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}

	for _, v := range m.TopoAnds() {
		node, err := m.Node(v)
		if err != nil {
			return err
		}
		a, b := node.Fanin0, node.Fanin1
		bitA, bitB := '1', '1'
		if a.Sign() {
			bitA = '0'
		}
		if b.Sign() {
			bitB = '0'
		}
		if _, err := fmt.Fprintf(bw, ".names %s %s %s\n%c%c 1\n",
			netName(a.Var()), netName(b.Var()), netName(v), bitA, bitB); err != nil {
			return err
		}
	}

	for i := 0; i < numRealPOs; i++ {
		lit := pos[i]
		if lit.Sign() {
			bit := '0'
			if _, err := fmt.Fprintf(bw, ".names %s %s\n%c 1\n", netName(lit.Var()), outNames[i], bit); err != nil {
				return err
			}
		}
	}

	for i := 0; i < numLatches; i++ {
		nextLit := pos[numRealPOs+i]
		outLit := pis[numRealPIs+i]
		in := latchInputNet(bw, nextLit, i)
		if _, err := fmt.Fprintf(bw, ".latch %s %s 2 NIL %d\n", in, netName(outLit.Var()), initCode(initValues[i])); err != nil {
			return err
		}
	}

	if _, err := bw.WriteString(".end\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// outputNet returns the net name a real PO's value is read from: the
// driven var directly when the PO fanin is unsigned, or a synthesized
// inverter net otherwise.
func outputNet(lit aig.Lit, idx int) string {
	if !lit.Sign() {
		return netName(lit.Var())
	}
	return fmt.Sprintf("po%d_n", idx)
}

// latchInputNet returns the net the latch's next-state function reads
// from, writing an inverter .names table first if the driving literal
// is negated (BLIF .latch IN fields name unsigned nets only).
func latchInputNet(bw *bufio.Writer, lit aig.Lit, idx int) string {
	if !lit.Sign() {
		return netName(lit.Var())
	}
	n := fmt.Sprintf("lin%d_n", idx)
	fmt.Fprintf(bw, ".names %s %s\n0 1\n", netName(lit.Var()), n)
	return n
}

func initCode(v seqaig.LatchValue) int {
	switch v {
	case seqaig.LVZero:
		return 0
	case seqaig.LVOne:
		return 1
	case seqaig.LVDC:
		return 2
	default:
		return 3
	}
}

func writePortList(bw *bufio.Writer, directive string, lits []aig.Lit) error {
	if _, err := bw.WriteString(directive); err != nil {
		return err
	}
	for _, l := range lits {
		if _, err := fmt.Fprintf(bw, " %s", netName(l.Var())); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("\n")
	return err
}
