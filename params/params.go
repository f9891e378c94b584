// Package params holds the precomputed constants of the Poseidon permutation
// and the configuration shared by the native and circuit engines.
package params

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// MinHashWidth is the smallest permutation width usable by the 2:1 hash
// padding convention (one reserved slot, two inputs, at least one zero).
const MinHashWidth = 4

// Sbox selects the non-linear layer applied each round. The variant is fixed
// per hash instance and never mixed within a single permutation run.
type Sbox uint8

const (
	// SboxCube is x^3, computed as two sequential multiplications.
	SboxCube Sbox = iota
	// SboxInverse is x^-1, undefined for zero.
	SboxInverse
)

func (s Sbox) String() string {
	switch s {
	case SboxCube:
		return "cube"
	case SboxInverse:
		return "inverse"
	default:
		return fmt.Sprintf("sbox(%d)", uint8(s))
	}
}

// Parameters bundles the round schedule and constant tables consumed by a
// permutation. Immutable after construction; safe to share across calls.
type Parameters struct {
	Width               int
	FullRoundsBeginning int
	FullRoundsEnd       int
	PartialRounds       int

	// RoundKeys holds TotalRounds()*Width keys, consumed sequentially, one
	// per state element per round.
	RoundKeys []fr.Element
	// MDS is the row-major Width x Width mixing matrix.
	MDS []fr.Element
}

// TotalRounds is the length of the full round schedule.
func (p *Parameters) TotalRounds() int {
	return p.FullRoundsBeginning + p.PartialRounds + p.FullRoundsEnd
}

// New slices the static constant tables into a parameter set for the given
// width and round counts. It panics when the prepared tables cannot serve the
// requested configuration: that is a deployment mistake with no safe fallback,
// not a per-request fault.
func New(width, fullRoundsBeginning, fullRoundsEnd, partialRounds int) *Parameters {
	if width <= 0 {
		panic(fmt.Sprintf("poseidon: invalid width %d", width))
	}
	if fullRoundsBeginning < 0 || fullRoundsEnd < 0 || partialRounds < 0 {
		panic(fmt.Sprintf("poseidon: negative round count (%d,%d,%d)",
			fullRoundsBeginning, fullRoundsEnd, partialRounds))
	}
	p := &Parameters{
		Width:               width,
		FullRoundsBeginning: fullRoundsBeginning,
		FullRoundsEnd:       fullRoundsEnd,
		PartialRounds:       partialRounds,
	}
	p.RoundKeys = loadRoundKeys(width, p.TotalRounds())
	p.MDS = loadMDSMatrix(width)
	return p
}

// Validate checks the shape of a parameter set. New always produces a valid
// set; this guards engines against hand-built structs.
func (p *Parameters) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("poseidon: invalid width %d", p.Width)
	}
	if p.FullRoundsBeginning < 0 || p.FullRoundsEnd < 0 || p.PartialRounds < 0 {
		return fmt.Errorf("poseidon: negative round count (%d,%d,%d)",
			p.FullRoundsBeginning, p.FullRoundsEnd, p.PartialRounds)
	}
	if want := p.TotalRounds() * p.Width; len(p.RoundKeys) != want {
		return fmt.Errorf("poseidon: round key length mismatch, need %d, have %d", want, len(p.RoundKeys))
	}
	if want := p.Width * p.Width; len(p.MDS) != want {
		return fmt.Errorf("poseidon: mds length mismatch, need %d, have %d", want, len(p.MDS))
	}
	return nil
}

func loadRoundKeys(width, totalRounds int) []fr.Element {
	need := totalRounds * width
	if len(roundConsts) < need {
		panic(fmt.Sprintf("poseidon: not enough round constants, need %d, found %d", need, len(roundConsts)))
	}
	keys := make([]fr.Element, need)
	for i := range keys {
		keys[i] = mustElementFromHex(roundConsts[i])
	}
	return keys
}

func loadMDSMatrix(width int) []fr.Element {
	if len(mdsEntries) != width {
		panic(fmt.Sprintf("poseidon: mds table prepared for width %d, configured width %d", len(mdsEntries), width))
	}
	mds := make([]fr.Element, 0, width*width)
	for i, row := range mdsEntries {
		if len(row) != width {
			panic(fmt.Sprintf("poseidon: mds row %d has %d entries, configured width %d", i, len(row), width))
		}
		for _, entry := range row {
			mds = append(mds, mustElementFromHex(entry))
		}
	}
	return mds
}

func mustElementFromHex(s string) fr.Element {
	bi, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("poseidon: malformed hex constant %q", s))
	}
	var e fr.Element
	e.SetBigInt(bi)
	return e
}
