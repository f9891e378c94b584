// Package poseidon emits the Poseidon permutation and 2:1 hash over an
// emulated BLS12-377 scalar field, for circuits whose host curve differs from
// the hash's native field. The schedule is identical to the native engine.
package poseidon

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/emulated"
	"github.com/consensys/gnark/std/math/emulated/emparams"

	"github.com/vocdoni/poseidon-gadget/params"
)

// FrParams defines the emulated parameters for the BLS12-377 scalar field.
type FrParams = emparams.BLS12377Fr

// Permute applies the full round schedule to emulated field elements and
// returns the final state in canonical (reduced) form.
func Permute(api frontend.API, input []emulated.Element[FrParams], p *params.Parameters, sbox params.Sbox) ([]emulated.Element[FrParams], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(input) != p.Width {
		return nil, fmt.Errorf("poseidon: expected %d input elements, got %d", p.Width, len(input))
	}
	field, err := emulated.NewField[FrParams](api)
	if err != nil {
		return nil, err
	}

	state := make([]*emulated.Element[FrParams], p.Width)
	for i := range input {
		state[i] = field.NewElement(input[i])
	}

	offset := 0
	for r := 0; r < p.FullRoundsBeginning; r++ {
		if state, err = fullRound(api, field, state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	for r := 0; r < p.PartialRounds; r++ {
		if state, err = partialRound(api, field, state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}
	for r := 0; r < p.FullRoundsEnd; r++ {
		if state, err = fullRound(api, field, state, p, sbox, &offset); err != nil {
			return nil, err
		}
	}

	out := make([]emulated.Element[FrParams], p.Width)
	for i := range state {
		out[i] = *field.Reduce(state[i])
	}
	return out, nil
}

// Hash2 is the emulated circuit form of the 2:1 hash: state [0, xl, xr, 0...],
// output position 1. Padding zeros are built in-circuit from the constant
// zero, there is no commitment to share with a counterpart at this layer.
func Hash2(api frontend.API, xl, xr emulated.Element[FrParams], p *params.Parameters, sbox params.Sbox) (emulated.Element[FrParams], error) {
	var zero emulated.Element[FrParams]
	if p.Width < params.MinHashWidth {
		return zero, fmt.Errorf("poseidon: hash2 needs width >= %d, got %d", params.MinHashWidth, p.Width)
	}
	state := make([]emulated.Element[FrParams], p.Width)
	for i := range state {
		state[i] = emulated.ValueOf[FrParams](0)
	}
	state[1] = xl
	state[2] = xr

	out, err := Permute(api, state, p, sbox)
	if err != nil {
		return zero, err
	}
	return out[1], nil
}

func fullRound(api frontend.API, field *emulated.Field[FrParams], state []*emulated.Element[FrParams], p *params.Parameters, sbox params.Sbox, offset *int) ([]*emulated.Element[FrParams], error) {
	out := make([]*emulated.Element[FrParams], p.Width)
	for i := range state {
		var err error
		if out[i], err = sboxEmulated(api, field, state[i], p.RoundKeys[*offset], sbox); err != nil {
			return nil, err
		}
		*offset++
	}
	return mixLayer(field, out, p), nil
}

func partialRound(api frontend.API, field *emulated.Field[FrParams], state []*emulated.Element[FrParams], p *params.Parameters, sbox params.Sbox, offset *int) ([]*emulated.Element[FrParams], error) {
	out := make([]*emulated.Element[FrParams], p.Width)
	for i := range state {
		if i == p.Width-1 {
			var err error
			if out[i], err = sboxEmulated(api, field, state[i], p.RoundKeys[*offset], sbox); err != nil {
				return nil, err
			}
		} else {
			key := constElement(field, p.RoundKeys[*offset])
			out[i] = field.Add(state[i], &key)
		}
		*offset++
	}
	return mixLayer(field, out, p), nil
}

func mixLayer(field *emulated.Field[FrParams], state []*emulated.Element[FrParams], p *params.Parameters) []*emulated.Element[FrParams] {
	t := p.Width
	out := make([]*emulated.Element[FrParams], t)
	for i := 0; i < t; i++ {
		rowOffset := i * t
		coeff := constElement(field, p.MDS[rowOffset])
		sum := field.Mul(&coeff, state[0])
		for j := 1; j < t; j++ {
			coeff = constElement(field, p.MDS[rowOffset+j])
			sum = field.Add(sum, field.Mul(&coeff, state[j]))
		}
		out[i] = sum
	}
	return out
}

func sboxEmulated(api frontend.API, field *emulated.Field[FrParams], v *emulated.Element[FrParams], roundKey fr.Element, sbox params.Sbox) (*emulated.Element[FrParams], error) {
	key := constElement(field, roundKey)
	shifted := field.Add(v, &key)
	switch sbox {
	case params.SboxCube:
		sq := field.Mul(shifted, shifted)
		return field.Mul(sq, shifted), nil
	case params.SboxInverse:
		api.AssertIsEqual(field.IsZero(shifted), 0)
		return field.Inverse(shifted), nil
	default:
		return nil, fmt.Errorf("poseidon: unknown sbox %s", sbox)
	}
}

func constElement(f *emulated.Field[FrParams], fe fr.Element) emulated.Element[FrParams] {
	return *f.NewElement(fe.BigInt(new(big.Int)))
}
