package poseidon

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"

	gposeidon "github.com/vocdoni/poseidon-gadget/gnark/poseidon"
	"github.com/vocdoni/poseidon-gadget/params"
)

func mustRandom(t *testing.T) fr.Element {
	t.Helper()
	var e fr.Element
	if _, err := e.SetRandom(); err != nil {
		t.Fatalf("random element: %v", err)
	}
	return e
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	f()
}

func TestCubeSbox(t *testing.T) {
	inputs := []fr.Element{{}, mustRandom(t), mustRandom(t), mustRandom(t)}
	inputs[0].SetZero()

	for _, x := range inputs {
		got := x
		if err := applySbox(params.SboxCube, &got); err != nil {
			t.Fatalf("cube sbox: %v", err)
		}
		var want fr.Element
		want.Mul(&x, &x)
		want.Mul(&want, &x)
		if !got.Equal(&want) {
			t.Fatalf("cube sbox mismatch for %s: got %s, want %s", x.String(), got.String(), want.String())
		}
	}
}

func TestInverseSbox(t *testing.T) {
	var zero fr.Element
	if err := applySbox(params.SboxInverse, &zero); err == nil {
		t.Fatal("inverse sbox of zero should fail")
	}

	for i := 0; i < 4; i++ {
		x := mustRandom(t)
		if x.IsZero() {
			continue
		}
		inv := x
		if err := applySbox(params.SboxInverse, &inv); err != nil {
			t.Fatalf("inverse sbox: %v", err)
		}
		var prod fr.Element
		prod.Mul(&x, &inv)
		if !prod.IsOne() {
			t.Fatalf("x * x^-1 != 1 for %s", x.String())
		}
	}
}

func TestPermuteDeterministic(t *testing.T) {
	p := params.New(6, 4, 4, 140)
	for _, sbox := range []params.Sbox{params.SboxCube, params.SboxInverse} {
		state := make([]fr.Element, p.Width)
		first, err := Permute(state, p, sbox)
		if err != nil {
			t.Fatalf("%s permute: %v", sbox, err)
		}
		second, err := Permute(state, p, sbox)
		if err != nil {
			t.Fatalf("%s permute: %v", sbox, err)
		}
		for i := range first {
			if !first[i].Equal(&second[i]) {
				t.Fatalf("%s permute not deterministic at position %d", sbox, i)
			}
		}
	}
}

func TestPermuteRejectsBadInput(t *testing.T) {
	p := params.New(6, 4, 4, 140)
	if _, err := Permute(make([]fr.Element, 5), p, params.SboxCube); err == nil {
		t.Fatal("expected error for short input state")
	}
	if _, err := Permute(make([]fr.Element, 6), p, params.Sbox(42)); err == nil {
		t.Fatal("expected error for unknown sbox")
	}
}

func TestParametersConstruction(t *testing.T) {
	p := params.New(6, 4, 4, 140)
	if got, want := len(p.RoundKeys), p.TotalRounds()*p.Width; got != want {
		t.Fatalf("round keys: got %d, want %d", got, want)
	}
	if got, want := len(p.MDS), p.Width*p.Width; got != want {
		t.Fatalf("mds: got %d, want %d", got, want)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}

	// The static tables are prepared for width 6 and 148 rounds; anything
	// beyond that is a deployment mistake and must abort construction.
	mustPanic(t, "width mismatch", func() { params.New(5, 4, 4, 140) })
	mustPanic(t, "width mismatch", func() { params.New(7, 4, 4, 140) })
	mustPanic(t, "round keys exhausted", func() { params.New(6, 4, 4, 141) })
	mustPanic(t, "zero width", func() { params.New(0, 4, 4, 140) })
	mustPanic(t, "negative rounds", func() { params.New(6, -1, 4, 140) })
}

func TestValidateRejectsBadShape(t *testing.T) {
	p := params.New(6, 4, 4, 140)

	short := *p
	short.RoundKeys = p.RoundKeys[:len(p.RoundKeys)-1]
	if err := short.Validate(); err == nil {
		t.Fatal("expected error for truncated round keys")
	}

	badMDS := *p
	badMDS.MDS = p.MDS[:len(p.MDS)-1]
	if err := badMDS.Validate(); err == nil {
		t.Fatal("expected error for truncated mds")
	}
}

func TestHash2(t *testing.T) {
	p := params.New(6, 4, 4, 140)
	xl := mustRandom(t)
	xr := mustRandom(t)

	for _, sbox := range []params.Sbox{params.SboxCube, params.SboxInverse} {
		h1, err := Hash2(xl, xr, p, sbox)
		if err != nil {
			t.Fatalf("%s hash2: %v", sbox, err)
		}
		h2, err := Hash2(xl, xr, p, sbox)
		if err != nil {
			t.Fatalf("%s hash2: %v", sbox, err)
		}
		if !h1.Equal(&h2) {
			t.Fatalf("%s hash2 not deterministic", sbox)
		}

		// The output must be position 1 of the padded permutation, never
		// the reserved position 0.
		state := make([]fr.Element, p.Width)
		state[1] = xl
		state[2] = xr
		out, err := Permute(state, p, sbox)
		if err != nil {
			t.Fatalf("%s permute: %v", sbox, err)
		}
		if !h1.Equal(&out[1]) {
			t.Fatalf("%s hash2 does not match permutation position 1", sbox)
		}
	}
}

func TestHash2RejectsNarrowWidth(t *testing.T) {
	p := params.New(6, 4, 4, 140)
	narrow := &params.Parameters{
		Width:               3,
		FullRoundsBeginning: 4,
		FullRoundsEnd:       4,
		PartialRounds:       140,
		RoundKeys:           p.RoundKeys[:148*3],
		MDS:                 p.MDS[:9],
	}
	if _, err := Hash2(fr.Element{}, fr.Element{}, narrow, params.SboxCube); err == nil {
		t.Fatal("expected error for width below the padding minimum")
	}
}

// Circuit that runs the permutation and pins all six outputs to constants.
type permCircuit struct {
	Input [6]frontend.Variable

	sbox     params.Sbox
	expected []fr.Element
}

func (c *permCircuit) Define(api frontend.API) error {
	p := params.New(6, 4, 4, 140)
	return gposeidon.PermuteAndConstrain(api, c.Input[:], p, c.sbox, c.expected)
}

// Circuit form of the 2:1 hash with caller-supplied padding zeros.
type hash2Circuit struct {
	Xl    frontend.Variable
	Xr    frontend.Variable
	Zeros [4]frontend.Variable

	sbox     params.Sbox
	expected fr.Element
}

func (c *hash2Circuit) Define(api frontend.API) error {
	p := params.New(6, 4, 4, 140)
	return gposeidon.Hash2AndConstrain(api, c.Xl, c.Xr, c.Zeros[:], p, c.sbox, c.expected)
}

func testPermutationCircuit(t *testing.T, sbox params.Sbox) {
	assert := test.NewAssert(t)
	p := params.New(6, 4, 4, 140)

	input := make([]fr.Element, p.Width)
	for i := range input {
		input[i] = mustRandom(t)
	}
	expected, err := Permute(input, p, sbox)
	if err != nil {
		t.Fatalf("native permute: %v", err)
	}

	witness := &permCircuit{sbox: sbox, expected: expected}
	for i := range input {
		witness.Input[i] = input[i]
	}

	assert.ProverSucceeded(
		&permCircuit{sbox: sbox, expected: expected},
		witness,
		test.WithCurves(ecc.BLS12_377),
		test.WithBackends(backend.GROTH16),
	)
}

func TestPermutationCircuitCubeSbox(t *testing.T) {
	testPermutationCircuit(t, params.SboxCube)
}

func TestPermutationCircuitInverseSbox(t *testing.T) {
	testPermutationCircuit(t, params.SboxInverse)
}

func testHash2Circuit(t *testing.T, sbox params.Sbox) {
	assert := test.NewAssert(t)
	p := params.New(6, 4, 4, 140)

	xl := mustRandom(t)
	xr := mustRandom(t)
	expected, err := Hash2(xl, xr, p, sbox)
	if err != nil {
		t.Fatalf("native hash2: %v", err)
	}

	witness := &hash2Circuit{sbox: sbox, expected: expected, Xl: xl, Xr: xr}
	for i := range witness.Zeros {
		witness.Zeros[i] = 0
	}

	assert.ProverSucceeded(
		&hash2Circuit{sbox: sbox, expected: expected},
		witness,
		test.WithCurves(ecc.BLS12_377),
		test.WithBackends(backend.GROTH16),
	)

	// A tampered claimed output must not be provable.
	var tampered fr.Element
	tampered.SetOne()
	tampered.Add(&tampered, &expected)

	assert.ProverFailed(
		&hash2Circuit{sbox: sbox, expected: tampered},
		witness,
		test.WithCurves(ecc.BLS12_377),
		test.WithBackends(backend.GROTH16),
	)
}

func TestHash2CircuitCubeSbox(t *testing.T) {
	testHash2Circuit(t, params.SboxCube)
}

func TestHash2CircuitInverseSbox(t *testing.T) {
	testHash2Circuit(t, params.SboxInverse)
}

// The gate topology must depend only on the configuration, never on witness
// values: compiling the same circuit twice has to yield the same counts. This
// is what lets the proving and verifying roles agree on the circuit.
func TestCircuitTopologyStable(t *testing.T) {
	for _, sbox := range []params.Sbox{params.SboxCube, params.SboxInverse} {
		placeholder := func() *hash2Circuit {
			return &hash2Circuit{sbox: sbox}
		}
		ccs1, err := frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, placeholder())
		if err != nil {
			t.Fatalf("compile %s: %v", sbox, err)
		}
		ccs2, err := frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, placeholder())
		if err != nil {
			t.Fatalf("recompile %s: %v", sbox, err)
		}
		if ccs1.GetNbConstraints() != ccs2.GetNbConstraints() {
			t.Fatalf("%s sbox: constraint count changed between compiles (%d vs %d)",
				sbox, ccs1.GetNbConstraints(), ccs2.GetNbConstraints())
		}
		t.Logf("hash2 %s sbox constraints: %d", sbox, ccs1.GetNbConstraints())
	}
}
