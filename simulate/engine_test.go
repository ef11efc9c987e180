package simulate

import (
	"testing"

	"github.com/katalvlaran/logicsynth/aig"
	"github.com/stretchr/testify/require"
)

func buildAnd2(t *testing.T) (*aig.Manager, aig.Lit, aig.Lit, aig.Lit) {
	t.Helper()
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	n := m.And(a, b)
	m.CreatePO(n)
	return m, a, b, n
}

func TestEngineAndMatchesBitwiseAnd(t *testing.T) {
	m, a, b, _ := buildAnd2(t)
	e, err := NewEngine(m, 4, 42)
	require.NoError(t, err)

	e.SetWords(a.Var(), []uint32{0xFFFFFFFF, 0x0, 0xAAAAAAAA, 0x12345678})
	e.SetWords(b.Var(), []uint32{0xFFFFFFFF, 0xFFFFFFFF, 0x55555555, 0x0F0F0F0F})
	e.Propagate()

	got := e.POWords(0)
	require.Equal(t, uint32(0xFFFFFFFF), got[0])
	require.Equal(t, uint32(0), got[1])
	require.Equal(t, uint32(0), got[2])
	require.Equal(t, uint32(0x02040608), got[3])
}

func TestEnginePOHonorsSign(t *testing.T) {
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	n := m.And(a, b)
	m.CreatePO(n.Not())

	e, err := NewEngine(m, 1, 1)
	require.NoError(t, err)
	e.SetWords(a.Var(), []uint32{0xFFFFFFFF})
	e.SetWords(b.Var(), []uint32{0xFFFFFFFF})
	e.Propagate()

	require.Equal(t, uint32(0), e.POWords(0)[0])
}

func TestRandomizeProducesDeterministicStream(t *testing.T) {
	m, _, _, _ := buildAnd2(t)
	e1, _ := NewEngine(m, 2, 7)
	e2, _ := NewEngine(m, 2, 7)
	e1.Randomize()
	e2.Randomize()
	require.Equal(t, e1.Words(1), e2.Words(1))
	require.Equal(t, e1.POWords(0), e2.POWords(0))
}

func TestCountOnesAndSignature(t *testing.T) {
	m, a, _, _ := buildAnd2(t)
	e, _ := NewEngine(m, 1, 0)
	e.SetWords(a.Var(), []uint32{0b1011})
	require.Equal(t, 3, e.CountOnes(a.Var()))
	require.Equal(t, uint32(0b1011), e.Signature(a.Var()))
}

func TestStructuralSupportChainOfAnds(t *testing.T) {
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	c := m.CreatePI()
	n1 := m.And(a, b)
	n2 := m.And(n1, c)
	m.CreatePO(n2)

	sup := StructuralSupport(m)
	supp := sup.POStructural(0)
	require.True(t, supp.get(0))
	require.True(t, supp.get(1))
	require.True(t, supp.get(2))
}

func TestStructuralSupportExcludesUnrelatedPI(t *testing.T) {
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	_ = m.CreatePI() // unrelated PI, index 2
	n1 := m.And(a, b)
	m.CreatePO(n1)

	sup := StructuralSupport(m)
	supp := sup.POStructural(0)
	require.True(t, supp.get(0))
	require.True(t, supp.get(1))
	require.False(t, supp.get(2))
}

func TestRunTargetDrivenConvergesForSimpleAnd(t *testing.T) {
	m, _, _, _ := buildAnd2(t)
	e, err := NewEngine(m, 8, 99)
	require.NoError(t, err)
	sup := StructuralSupport(m)

	funSupp, rounds := RunTargetDriven(e, sup)
	require.LessOrEqual(t, rounds, maxRefinementRounds)
	require.True(t, funSupp[0].get(0))
	require.True(t, funSupp[0].get(1))
}

func TestSeedStructuralMarksDisjointBranchesNonSymmetric(t *testing.T) {
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	c := m.CreatePI()
	d := m.CreatePI()
	left := m.And(a, b)
	right := m.And(c, d)
	m.And(left, right)

	sup := StructuralSupport(m)
	leftSupp := sup.StructuralOf(left.Var())
	rightSupp := sup.StructuralOf(right.Var())

	mat := SeedStructural(sup, 0, [2]bitset{leftSupp, rightSupp})
	require.True(t, mat.IsNonSymmetric(0, 2)) // a vs c
	require.False(t, mat.IsNonSymmetric(0, 1)) // a vs b, both left
}

func TestRefineFromPatternDetectsNonSymmetricAndNotPair(t *testing.T) {
	m := aig.NewManager()
	a := m.CreatePI()
	b := m.CreatePI()
	po := m.And(a, b.Not())
	m.CreatePO(po)

	e, err := NewEngine(m, 1, 3)
	require.NoError(t, err)
	e.SetWords(a.Var(), []uint32{0b1})
	e.SetWords(b.Var(), []uint32{0b0})
	e.Propagate()

	sup := StructuralSupport(m)
	mat := NewSymmetryMatrices(sup.nCi)
	RefineFromPattern(e, mat, 0)
	require.True(t, mat.IsNonSymmetric(0, 1))
}

func TestSymmetryTransitiveClosure(t *testing.T) {
	mat := NewSymmetryMatrices(3)
	mat.markSym(0, 1)
	mat.markSym(1, 2)
	mat.closeSymTransitively()
	require.True(t, mat.IsSymmetric(0, 2))
}
