package aiger

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/katalvlaran/logicsynth/seqaig"
)

// Sentinel errors, in the teacher's convention.
var (
	ErrBadMagic   = errors.New("aiger: missing \"aig\" magic")
	ErrBadHeader  = errors.New("aiger: malformed header")
	ErrShortRead  = errors.New("aiger: unexpected end of input")
	ErrBadLiteral = errors.New("aiger: literal out of range")
)

// Read parses an AIGER stream into a fresh *aig.Manager, returning the
// per-latch initial values alongside it (every latch defaults to zero;
// see doc.go). PIs occupy indices 1..I, latches I+1..I+L, AND nodes
// I+L+1..M, matching §6's header convention; the returned Manager's POs
// are ordered real-POs-then-latch-input-POs per the §9 decision, even
// though the file itself lists latch next-state literals before PO
// literals.
func Read(r io.Reader) (*aig.Manager, []seqaig.LatchValue, error) {
	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasPrefix(header, "aig ") {
		return nil, nil, ErrBadMagic
	}
	fields := strings.Fields(header)
	if len(fields) != 6 {
		return nil, nil, ErrBadHeader
	}
	nums := make([]int, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil || v < 0 {
			return nil, nil, ErrBadHeader
		}
		nums[i] = v
	}
	M, I, L, O, A := nums[0], nums[1], nums[2], nums[3], nums[4]
	if M != I+L+A {
		return nil, nil, ErrBadHeader
	}

	m := aig.NewManager()
	varMap := make(map[int]aig.Lit, M+1)
	for i := 0; i < I; i++ {
		varMap[i+1] = m.CreatePI()
	}

	nextLits := make([]int, L)
	for i := 0; i < L; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, nil, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, nil, ErrBadHeader
		}
		nextLits[i] = v
	}
	poLits := make([]int, O)
	for i := 0; i < O; i++ {
		line, err := readLine(br)
		if err != nil {
			return nil, nil, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, nil, ErrBadHeader
		}
		poLits[i] = v
	}

	for i := 0; i < L; i++ {
		varMap[I+i+1] = m.CreatePI()
	}

	for i := 0; i < A; i++ {
		outVar := I + L + i + 1
		n := 2 * outVar
		d0, err := readVarint(br)
		if err != nil {
			return nil, nil, err
		}
		d1, err := readVarint(br)
		if err != nil {
			return nil, nil, err
		}
		lhsVal := n - int(d0)
		rhsVal := lhsVal - int(d1)
		a, err := resolveLit(lhsVal, varMap)
		if err != nil {
			return nil, nil, err
		}
		b, err := resolveLit(rhsVal, varMap)
		if err != nil {
			return nil, nil, err
		}
		varMap[outVar] = m.And(a, b)
	}

	for i := 0; i < O; i++ {
		lit, err := resolveLit(poLits[i], varMap)
		if err != nil {
			return nil, nil, err
		}
		m.CreatePO(lit)
	}
	initValues := make([]seqaig.LatchValue, L)
	for i := 0; i < L; i++ {
		lit, err := resolveLit(nextLits[i], varMap)
		if err != nil {
			return nil, nil, err
		}
		m.CreatePO(lit)
		initValues[i] = seqaig.LVZero
	}
	m.NumLatches = L

	return m, initValues, nil
}

func resolveLit(litVal int, varMap map[int]aig.Lit) (aig.Lit, error) {
	if litVal < 0 {
		return 0, ErrBadLiteral
	}
	if litVal == 0 {
		return aig.ConstFalse, nil
	}
	if litVal == 1 {
		return aig.ConstTrue, nil
	}
	v := litVal / 2
	sign := litVal%2 == 1
	lit, ok := varMap[v]
	if !ok {
		return 0, ErrBadLiteral
	}
	if sign {
		return lit.Not(), nil
	}
	return lit, nil
}

// readVarint decodes one AIGER variable-length delta: each byte's high
// bit signals continuation, the low 7 bits carry the next payload chunk
// starting at the least significant end.
func readVarint(br *bufio.Reader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, ErrShortRead
			}
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return result, nil
}

func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrShortRead
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
