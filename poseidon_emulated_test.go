package poseidon

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/test"

	emposeidon "github.com/vocdoni/poseidon-gadget/gnark/emulated/poseidon"
	"github.com/vocdoni/poseidon-gadget/params"
)

// Reduced schedule for the emulated tests: every emulated multiplication is
// expensive on the host curve, and the schedule logic is identical at any
// round configuration.
func emuTestParams() *params.Parameters {
	return params.New(6, 2, 2, 10)
}

type emuHash2Circuit struct {
	Xl       emulated.Element[emposeidon.FrParams]
	Xr       emulated.Element[emposeidon.FrParams]
	Expected emulated.Element[emposeidon.FrParams] `gnark:",public"`

	sbox params.Sbox
}

func (c *emuHash2Circuit) Define(api frontend.API) error {
	field, err := emulated.NewField[emposeidon.FrParams](api)
	if err != nil {
		return err
	}
	out, err := emposeidon.Hash2(api, c.Xl, c.Xr, emuTestParams(), c.sbox)
	if err != nil {
		return err
	}
	field.AssertIsEqual(&out, &c.Expected)
	return nil
}

func valueOf(e fr.Element) emulated.Element[emposeidon.FrParams] {
	return emulated.ValueOf[emposeidon.FrParams](e.BigInt(new(big.Int)))
}

func testEmulatedHash2(t *testing.T, sbox params.Sbox) {
	assert := test.NewAssert(t)
	p := emuTestParams()

	xl := mustRandom(t)
	xr := mustRandom(t)
	native, err := Hash2(xl, xr, p, sbox)
	if err != nil {
		t.Fatalf("native hash2: %v", err)
	}

	witness := emuHash2Circuit{
		Xl:       valueOf(xl),
		Xr:       valueOf(xr),
		Expected: valueOf(native),
		sbox:     sbox,
	}

	assert.ProverSucceeded(
		&emuHash2Circuit{sbox: sbox},
		&witness,
		test.WithCurves(ecc.BW6_761),
		test.WithBackends(backend.GROTH16),
	)
}

func TestEmulatedHash2CubeSbox(t *testing.T) {
	testEmulatedHash2(t, params.SboxCube)
}

func TestEmulatedHash2InverseSbox(t *testing.T) {
	testEmulatedHash2(t, params.SboxInverse)
}

func TestEmulatedHash2ConstraintCount(t *testing.T) {
	for _, sbox := range []params.Sbox{params.SboxCube, params.SboxInverse} {
		ccs, err := frontend.Compile(ecc.BW6_761.ScalarField(), r1cs.NewBuilder, &emuHash2Circuit{sbox: sbox})
		if err != nil {
			t.Fatalf("compile %s: %v", sbox, err)
		}
		t.Logf("emulated hash2 %s sbox constraints (bw6-761 host, r1cs): %d", sbox, ccs.GetNbConstraints())
	}
}
