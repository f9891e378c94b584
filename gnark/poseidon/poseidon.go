// Package poseidon emits the Poseidon permutation and 2:1 hash as gnark
// constraints. The gate topology depends only on the parameter set and S-box
// variant, never on witness values, so a prover and a verifier compiling the
// same configuration obtain byte-identical circuits.
package poseidon

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/vocdoni/poseidon-gadget/params"
)

// Permute mirrors the native permutation over linear combinations and returns
// the final state as Width combinations. Full rounds spend S-box gates on
// every position; partial rounds gate only the last position and carry
// combination+key forward for the rest, which is where the schedule saves
// constraints.
func Permute(api frontend.API, input []frontend.Variable, p *params.Parameters, sbox params.Sbox) ([]frontend.Variable, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(input) != p.Width {
		return nil, fmt.Errorf("poseidon: expected %d input variables, got %d", p.Width, len(input))
	}

	state := make([]frontend.Variable, p.Width)
	copy(state, input)

	offset := 0
	for r := 0; r < p.FullRoundsBeginning; r++ {
		var err error
		if state, err = fullRound(api, state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	for r := 0; r < p.PartialRounds; r++ {
		var err error
		if state, err = partialRound(api, state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	for r := 0; r < p.FullRoundsEnd; r++ {
		var err error
		if state, err = fullRound(api, state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// PermuteAndConstrain builds the permutation circuit and pins every output
// combination to the matching expected constant. The constraints are checked
// by the backend at proof time, not here.
func PermuteAndConstrain(api frontend.API, input []frontend.Variable, p *params.Parameters, sbox params.Sbox, expected []fr.Element) error {
	if len(expected) != p.Width {
		return fmt.Errorf("poseidon: expected %d output constants, got %d", p.Width, len(expected))
	}
	out, err := Permute(api, input, p, sbox)
	if err != nil {
		return err
	}
	for i := range out {
		api.AssertIsEqual(out[i], expected[i])
	}
	return nil
}

// Hash2 is the circuit form of the 2:1 hash. The caller supplies the width-2
// padding variables, committed to the public zero constant with zero blinding,
// so both roles agree on the padding independently. The returned combination
// is the permutation's position-1 output.
func Hash2(api frontend.API, xl, xr frontend.Variable, zeros []frontend.Variable, p *params.Parameters, sbox params.Sbox) (frontend.Variable, error) {
	if p.Width < params.MinHashWidth {
		return nil, fmt.Errorf("poseidon: hash2 needs width >= %d, got %d", params.MinHashWidth, p.Width)
	}
	if len(zeros) != p.Width-2 {
		return nil, fmt.Errorf("poseidon: hash2 needs %d zero variables, got %d", p.Width-2, len(zeros))
	}

	state := make([]frontend.Variable, 0, p.Width)
	state = append(state, zeros[0], xl, xr)
	state = append(state, zeros[1:]...)

	out, err := Permute(api, state, p, sbox)
	if err != nil {
		return nil, err
	}
	return out[1], nil
}

// Hash2AndConstrain constrains the circuit hash to equal the expected
// constant, typically the native Hash2 output the prover claims.
func Hash2AndConstrain(api frontend.API, xl, xr frontend.Variable, zeros []frontend.Variable, p *params.Parameters, sbox params.Sbox, expected fr.Element) error {
	out, err := Hash2(api, xl, xr, zeros, p, sbox)
	if err != nil {
		return err
	}
	api.AssertIsEqual(out, expected)
	return nil
}

func fullRound(api frontend.API, state []frontend.Variable, p *params.Parameters, sbox params.Sbox, offset *int) ([]frontend.Variable, error) {
	out := make([]frontend.Variable, p.Width)
	for i := range state {
		var err error
		if out[i], err = sboxCircuit(api, state[i], p.RoundKeys[*offset], sbox); err != nil {
			return nil, err
		}
		*offset++
	}
	return mixLayer(api, out, p), nil
}

// partialRound gates only the last position; every other position carries the
// key-shifted combination forward without a constraint.
func partialRound(api frontend.API, state []frontend.Variable, p *params.Parameters, sbox params.Sbox, offset *int) ([]frontend.Variable, error) {
	out := make([]frontend.Variable, p.Width)
	for i := range state {
		if i == p.Width-1 {
			var err error
			if out[i], err = sboxCircuit(api, state[i], p.RoundKeys[*offset], sbox); err != nil {
				return nil, err
			}
		} else {
			out[i] = api.Add(state[i], p.RoundKeys[*offset])
		}
		*offset++
	}
	return mixLayer(api, out, p), nil
}

// mixLayer recombines the state linearly; no gates are consumed, linear
// combinations are free in this circuit model.
func mixLayer(api frontend.API, state []frontend.Variable, p *params.Parameters) []frontend.Variable {
	t := p.Width
	out := make([]frontend.Variable, t)
	for i := 0; i < t; i++ {
		rowOffset := i * t
		sum := api.Mul(state[0], p.MDS[rowOffset])
		for j := 1; j < t; j++ {
			sum = api.Add(sum, api.Mul(state[j], p.MDS[rowOffset+j]))
		}
		out[i] = sum
	}
	return out
}

// sboxCircuit adds the round key to the combination and emits the selected
// non-linearity. Cube costs two multiplication gates. Inverse asserts the
// shifted combination is non-zero, then allocates its inverse; api.Inverse
// constrains value * claimed-inverse = 1, so a fabricated witness cannot
// satisfy the gate.
func sboxCircuit(api frontend.API, v frontend.Variable, roundKey fr.Element, sbox params.Sbox) (frontend.Variable, error) {
	shifted := api.Add(v, roundKey)
	switch sbox {
	case params.SboxCube:
		sq := api.Mul(shifted, shifted)
		return api.Mul(sq, shifted), nil
	case params.SboxInverse:
		api.AssertIsDifferent(shifted, 0)
		return api.Inverse(shifted), nil
	default:
		return nil, fmt.Errorf("poseidon: unknown sbox %s", sbox)
	}
}
