// Package poseidon implements the Poseidon permutation over the BLS12-377
// scalar field and a 2:1 compression hash derived from it. The circuit
// counterparts live under gnark/ and must stay computation-for-computation
// identical to this package.
package poseidon

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/vocdoni/poseidon-gadget/params"
)

// Permute applies the full round schedule to the input state and returns the
// resulting state. The input is not mutated.
//
// Each round adds the next Width round keys element-wise, applies the S-box
// (to every element in full rounds, to the last element only in partial
// rounds) and mixes the state through the MDS matrix. The round-key offset is
// a single running counter across all three phases.
func Permute(input []fr.Element, p *params.Parameters, sbox params.Sbox) ([]fr.Element, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(input) != p.Width {
		return nil, fmt.Errorf("poseidon: expected %d input elements, got %d", p.Width, len(input))
	}

	state := make([]fr.Element, p.Width)
	copy(state, input)

	offset := 0
	for r := 0; r < p.FullRoundsBeginning; r++ {
		if err := fullRound(state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	for r := 0; r < p.PartialRounds; r++ {
		if err := partialRound(state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	for r := 0; r < p.FullRoundsEnd; r++ {
		if err := fullRound(state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Hash2 compresses two field elements into one: the permutation input is
// [0, xl, xr, 0, ...] and the output is taken from position 1. Position 0 is
// reserved and never exposed as output.
func Hash2(xl, xr fr.Element, p *params.Parameters, sbox params.Sbox) (fr.Element, error) {
	if p.Width < params.MinHashWidth {
		return fr.Element{}, fmt.Errorf("poseidon: hash2 needs width >= %d, got %d", params.MinHashWidth, p.Width)
	}
	state := make([]fr.Element, p.Width)
	state[1] = xl
	state[2] = xr

	out, err := Permute(state, p, sbox)
	if err != nil {
		return fr.Element{}, err
	}
	return out[1], nil
}

func fullRound(state []fr.Element, p *params.Parameters, sbox params.Sbox, offset *int) error {
	for i := range state {
		state[i].Add(&state[i], &p.RoundKeys[*offset])
		*offset++
		if err := applySbox(sbox, &state[i]); err != nil {
			return err
		}
	}
	mixLayer(state, p)
	return nil
}

// partialRound applies the S-box to the last state element only; the choice
// of position is arbitrary but must match the circuit engine exactly.
func partialRound(state []fr.Element, p *params.Parameters, sbox params.Sbox, offset *int) error {
	for i := range state {
		state[i].Add(&state[i], &p.RoundKeys[*offset])
		*offset++
	}
	if err := applySbox(sbox, &state[p.Width-1]); err != nil {
		return err
	}
	mixLayer(state, p)
	return nil
}

func mixLayer(state []fr.Element, p *params.Parameters) {
	t := p.Width
	newState := make([]fr.Element, t)
	for i := 0; i < t; i++ {
		var sum fr.Element
		rowOffset := i * t
		for j := 0; j < t; j++ {
			var prod fr.Element
			prod.Mul(&p.MDS[rowOffset+j], &state[j])
			sum.Add(&sum, &prod)
		}
		newState[i] = sum
	}
	copy(state, newState)
}

// applySbox evaluates the selected S-box in place. The cube uses two
// sequential multiplications to mirror the circuit's two-gate form.
func applySbox(sbox params.Sbox, x *fr.Element) error {
	switch sbox {
	case params.SboxCube:
		var sq fr.Element
		sq.Mul(x, x)
		x.Mul(&sq, x)
		return nil
	case params.SboxInverse:
		if x.IsZero() {
			return fmt.Errorf("poseidon: inverse sbox undefined for zero")
		}
		x.Inverse(x)
		return nil
	default:
		return fmt.Errorf("poseidon: unknown sbox %s", sbox)
	}
}
