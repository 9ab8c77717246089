package sigma

import "math/big"

// AndWitness, AndCommitment, AndResponse are the conjunctive composition
// of two Σ-protocols' witness/commitment/response types (spec §4.E).
// Grounded on original_source/src/pok/and_proof.rs, flattened from Rust's
// boxed-trait-object composition into Go generics per spec §9's design
// note ("only the combinators themselves need to be generic").
type AndWitness[W0, W1 any] struct {
	W0 W0
	W1 W1
}

type AndCommitment[C0, C1 any] struct {
	T0 C0
	T1 C1
}

type AndResponse[Z0, Z1 any] struct {
	Z0 Z0
	Z1 Z1
}

// AndProver runs two child Σ-protocols under one shared challenge.
type AndProver[W0, C0, Z0, W1, C1, Z1 any] struct {
	P0 Prover[W0, C0, Z0]
	P1 Prover[W1, C1, Z1]
}

func (p *AndProver[W0, C0, Z0, W1, C1, Z1]) Commit(w AndWitness[W0, W1]) (AndCommitment[C0, C1], error) {
	t0, err := p.P0.Commit(w.W0)
	if err != nil {
		return AndCommitment[C0, C1]{}, err
	}
	t1, err := p.P1.Commit(w.W1)
	if err != nil {
		return AndCommitment[C0, C1]{}, err
	}
	return AndCommitment[C0, C1]{T0: t0, T1: t1}, nil
}

func (p *AndProver[W0, C0, Z0, W1, C1, Z1]) SerializeCommitment(t AndCommitment[C0, C1]) []byte {
	buf := p.P0.SerializeCommitment(t.T0)
	buf = append(buf, p.P1.SerializeCommitment(t.T1)...)
	return buf
}

func (p *AndProver[W0, C0, Z0, W1, C1, Z1]) Respond(c *big.Int) (AndResponse[Z0, Z1], error) {
	z0, err := p.P0.Respond(c)
	if err != nil {
		return AndResponse[Z0, Z1]{}, err
	}
	z1, err := p.P1.Respond(c)
	if err != nil {
		return AndResponse[Z0, Z1]{}, err
	}
	return AndResponse[Z0, Z1]{Z0: z0, Z1: z1}, nil
}

// AndVerifier is the stateless verifier for the conjunction of two
// statements.
type AndVerifier[C0, Z0, C1, Z1 any] struct {
	V0 Verifier[C0, Z0]
	V1 Verifier[C1, Z1]
}

func (v *AndVerifier[C0, Z0, C1, Z1]) Challenge() (*big.Int, error) {
	return v.V0.Challenge()
}

func (v *AndVerifier[C0, Z0, C1, Z1]) Check(t AndCommitment[C0, C1], c *big.Int, z AndResponse[Z0, Z1]) bool {
	return v.V0.Check(t.T0, c, z.Z0) && v.V1.Check(t.T1, c, z.Z1)
}

func (v *AndVerifier[C0, Z0, C1, Z1]) Simulate(c *big.Int) (AndCommitment[C0, C1], AndResponse[Z0, Z1], error) {
	t0, z0, err := v.V0.Simulate(c)
	if err != nil {
		return AndCommitment[C0, C1]{}, AndResponse[Z0, Z1]{}, err
	}
	t1, z1, err := v.V1.Simulate(c)
	if err != nil {
		return AndCommitment[C0, C1]{}, AndResponse[Z0, Z1]{}, err
	}
	return AndCommitment[C0, C1]{T0: t0, T1: t1}, AndResponse[Z0, Z1]{Z0: z0, Z1: z1}, nil
}
