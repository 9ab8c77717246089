package sigma

import (
	"math/big"

	"github.com/go-amf/amf/curve"
)

// Schnorr is the atomic Σ-protocol for proof of knowledge of a discrete
// logarithm (spec §4.C). Witness = α ∈ 𝔽q; Statement = u = α·g; Commitment
// = u_t = α_t·g; Response = α_z = α_t + c·α.
//
// Grounded on original_source/src/pok/schnorr.rs.

// SchnorrWitness is the secret scalar α such that Statement = α·g.
type SchnorrWitness = *big.Int

// SchnorrCommitment is the prover's first message u_t = α_t·g.
type SchnorrCommitment = curve.Point

// SchnorrResponse is the prover's response α_z = α_t + c·α.
type SchnorrResponse = *big.Int

// SchnorrProver is one session of a Schnorr prover for the statement
// u = Statement.
type SchnorrProver struct {
	Statement curve.Point

	state    State
	witness  *big.Int
	secretTp *big.Int
}

// NewSchnorrProver constructs a prover for the statement u = Statement.
func NewSchnorrProver(statement curve.Point) *SchnorrProver {
	return &SchnorrProver{Statement: statement}
}

func (p *SchnorrProver) Commit(witness SchnorrWitness) (SchnorrCommitment, error) {
	if p.state != Uncommitted {
		return curve.Point{}, &ErrProverState{Op: "Commit", State: p.state}
	}
	tp, err := curve.RandomNonZeroScalar()
	if err != nil {
		return curve.Point{}, err
	}
	p.witness = witness
	p.secretTp = tp
	p.state = Committed
	return curve.BaseScale(tp), nil
}

func (p *SchnorrProver) SerializeCommitment(t SchnorrCommitment) []byte {
	return t.Bytes()
}

func (p *SchnorrProver) Respond(c *big.Int) (SchnorrResponse, error) {
	if p.state != Committed {
		return nil, &ErrProverState{Op: "Respond", State: p.state}
	}
	z := curve.AddMod(p.secretTp, curve.MulMod(c, p.witness))
	p.state = Spent
	return z, nil
}

// SchnorrVerifier is the stateless verifier for the statement u = Statement.
type SchnorrVerifier struct {
	Statement curve.Point
}

// NewSchnorrVerifier constructs a verifier for the statement u = Statement.
func NewSchnorrVerifier(statement curve.Point) *SchnorrVerifier {
	return &SchnorrVerifier{Statement: statement}
}

func (v *SchnorrVerifier) Challenge() (*big.Int, error) {
	return curve.RandomScalar()
}

func (v *SchnorrVerifier) Check(t SchnorrCommitment, c *big.Int, z SchnorrResponse) bool {
	left := curve.BaseScale(z)
	right := curve.Add(t, curve.Scale(v.Statement, c))
	return left.Equal(right)
}

func (v *SchnorrVerifier) Simulate(c *big.Int) (SchnorrCommitment, SchnorrResponse, error) {
	z, err := curve.RandomScalar()
	if err != nil {
		return curve.Point{}, nil, err
	}
	t := curve.Subtract(curve.BaseScale(z), curve.Scale(v.Statement, c))
	return t, z, nil
}

var (
	_ Prover[SchnorrWitness, SchnorrCommitment, SchnorrResponse]     = (*SchnorrProver)(nil)
	_ Verifier[SchnorrCommitment, SchnorrResponse]                   = (*SchnorrVerifier)(nil)
)
