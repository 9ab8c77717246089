package sigma

import (
	"math/big"

	"github.com/go-amf/amf/curve"
)

// OrWitness, OrCommitment, OrResponse are the disjunctive composition of
// two Σ-protocols' types, using the Cramer–Damgård–Schoenmakers (CDS)
// simulation trick (spec §4.F). Exactly one of Branch==0/Branch==1 is
// known to the prover.
//
// Grounded on original_source/src/pok/or_proof.rs.
type OrWitness[W0, W1 any] struct {
	// Branch selects which child's witness is known: 0 selects W0, 1
	// selects W1 (mirrors Rust's OrWitness.b).
	Branch uint8
	W0     W0
	W1     W1
}

type OrCommitment[C0, C1 any] struct {
	T0 C0
	T1 C1
}

// OrResponse is (c0, z0, z1); c1 is always recoverable as c - c0, so it is
// not carried explicitly (spec §4.F: "note c₁ is recoverable as c − c₀").
type OrResponse[Z0, Z1 any] struct {
	C0 *big.Int
	Z0 Z0
	Z1 Z1
}

// OrProver is one session of an OR-combinator prover. It commits honestly
// on the real branch and simulates the other, then at Respond splits the
// top-level challenge additively between the two branches (spec §4.F:
// "the construction uses additive splitting rather than XOR").
type OrProver[W0, C0, Z0, W1, C1, Z1 any] struct {
	P0 Prover[W0, C0, Z0]
	V0 Verifier[C0, Z0]
	P1 Prover[W1, C1, Z1]
	V1 Verifier[C1, Z1]

	state  State
	branch uint8
	// simC is the locally drawn challenge for the simulated branch;
	// simZ0/simZ1 is that branch's simulated response. Exactly one of
	// (simZ1 set, branch==0) or (simZ0 set, branch==1) applies.
	simC  *big.Int
	simZ0 Z0
	simZ1 Z1
}

func (p *OrProver[W0, C0, Z0, W1, C1, Z1]) Commit(w OrWitness[W0, W1]) (OrCommitment[C0, C1], error) {
	if p.state != Uncommitted {
		return OrCommitment[C0, C1]{}, &ErrProverState{Op: "Commit", State: p.state}
	}
	p.branch = w.Branch

	if w.Branch == 0 {
		t0, err := p.P0.Commit(w.W0)
		if err != nil {
			return OrCommitment[C0, C1]{}, err
		}
		c1, err := p.V1.Challenge()
		if err != nil {
			return OrCommitment[C0, C1]{}, err
		}
		t1, z1, err := p.V1.Simulate(c1)
		if err != nil {
			return OrCommitment[C0, C1]{}, err
		}
		p.simC = c1
		p.simZ1 = z1
		p.state = Committed
		return OrCommitment[C0, C1]{T0: t0, T1: t1}, nil
	}

	c0, err := p.V0.Challenge()
	if err != nil {
		return OrCommitment[C0, C1]{}, err
	}
	t0, z0, err := p.V0.Simulate(c0)
	if err != nil {
		return OrCommitment[C0, C1]{}, err
	}
	t1, err := p.P1.Commit(w.W1)
	if err != nil {
		return OrCommitment[C0, C1]{}, err
	}
	p.simC = c0
	p.simZ0 = z0
	p.state = Committed
	return OrCommitment[C0, C1]{T0: t0, T1: t1}, nil
}

func (p *OrProver[W0, C0, Z0, W1, C1, Z1]) SerializeCommitment(t OrCommitment[C0, C1]) []byte {
	buf := p.P0.SerializeCommitment(t.T0)
	buf = append(buf, p.P1.SerializeCommitment(t.T1)...)
	return buf
}

func (p *OrProver[W0, C0, Z0, W1, C1, Z1]) Respond(c *big.Int) (OrResponse[Z0, Z1], error) {
	if p.state != Committed {
		return OrResponse[Z0, Z1]{}, &ErrProverState{Op: "Respond", State: p.state}
	}
	defer func() { p.state = Spent }()

	if p.branch == 0 {
		// c1 is fixed (p.simC); the real branch's local challenge is
		// c0 = c - c1, matching the verifier's c1 = c - c0 reconstruction.
		c0 := curve.SubMod(c, p.simC)
		z0, err := p.P0.Respond(c0)
		if err != nil {
			return OrResponse[Z0, Z1]{}, err
		}
		return OrResponse[Z0, Z1]{C0: c0, Z0: z0, Z1: p.simZ1}, nil
	}

	// c0 is fixed (p.simC); the real branch's local challenge is
	// c1 = c - c0.
	c1 := curve.SubMod(c, p.simC)
	z1, err := p.P1.Respond(c1)
	if err != nil {
		return OrResponse[Z0, Z1]{}, err
	}
	return OrResponse[Z0, Z1]{C0: p.simC, Z0: p.simZ0, Z1: z1}, nil
}

// OrVerifier is the stateless verifier for a disjunction of two statements.
type OrVerifier[C0, Z0, C1, Z1 any] struct {
	V0 Verifier[C0, Z0]
	V1 Verifier[C1, Z1]
}

func (v *OrVerifier[C0, Z0, C1, Z1]) Challenge() (*big.Int, error) {
	return v.V0.Challenge()
}

func (v *OrVerifier[C0, Z0, C1, Z1]) Check(t OrCommitment[C0, C1], c *big.Int, z OrResponse[Z0, Z1]) bool {
	c1 := curve.SubMod(c, z.C0)
	return v.V0.Check(t.T0, z.C0, z.Z0) && v.V1.Check(t.T1, c1, z.Z1)
}

func (v *OrVerifier[C0, Z0, C1, Z1]) Simulate(c *big.Int) (OrCommitment[C0, C1], OrResponse[Z0, Z1], error) {
	c0, err := v.V0.Challenge()
	if err != nil {
		return OrCommitment[C0, C1]{}, OrResponse[Z0, Z1]{}, err
	}
	c1 := curve.SubMod(c, c0)

	t0, z0, err := v.V0.Simulate(c0)
	if err != nil {
		return OrCommitment[C0, C1]{}, OrResponse[Z0, Z1]{}, err
	}
	t1, z1, err := v.V1.Simulate(c1)
	if err != nil {
		return OrCommitment[C0, C1]{}, OrResponse[Z0, Z1]{}, err
	}
	return OrCommitment[C0, C1]{T0: t0, T1: t1}, OrResponse[Z0, Z1]{C0: c0, Z0: z0, Z1: z1}, nil
}
