package sigma

import (
	"math/big"

	"github.com/go-amf/amf/curve"
)

// ChaumPedersen is the atomic Σ-protocol proving that (u, v, w) is a DDH
// triple (spec §4.D). Witness = β ∈ 𝔽q; Statement = (u, v, w) with claim
// v = β·g ∧ w = β·u; Commitment = (v_t, w_t) = (β_t·g, β_t·u); Response
// β_z = β_t + c·β.
//
// Grounded on original_source/src/pok/chaum_pedersen.rs.

// ChaumPedersenStatement is the public claim (u, v, w).
type ChaumPedersenStatement struct {
	U, V, W curve.Point
}

// ChaumPedersenWitness is the secret scalar β.
type ChaumPedersenWitness = *big.Int

// ChaumPedersenCommitment is the prover's first message (v_t, w_t).
type ChaumPedersenCommitment struct {
	Vt, Wt curve.Point
}

// ChaumPedersenResponse is the prover's response β_z = β_t + c·β.
type ChaumPedersenResponse = *big.Int

// ChaumPedersenProver is one session of a Chaum–Pedersen prover.
type ChaumPedersenProver struct {
	Statement ChaumPedersenStatement

	state    State
	witness  *big.Int
	secretBt *big.Int
}

// NewChaumPedersenProver constructs a prover for the given statement.
func NewChaumPedersenProver(statement ChaumPedersenStatement) *ChaumPedersenProver {
	return &ChaumPedersenProver{Statement: statement}
}

func (p *ChaumPedersenProver) Commit(witness ChaumPedersenWitness) (ChaumPedersenCommitment, error) {
	if p.state != Uncommitted {
		return ChaumPedersenCommitment{}, &ErrProverState{Op: "Commit", State: p.state}
	}
	bt, err := curve.RandomNonZeroScalar()
	if err != nil {
		return ChaumPedersenCommitment{}, err
	}
	p.witness = witness
	p.secretBt = bt
	p.state = Committed
	return ChaumPedersenCommitment{
		Vt: curve.BaseScale(bt),
		Wt: curve.Scale(p.Statement.U, bt),
	}, nil
}

func (p *ChaumPedersenProver) SerializeCommitment(t ChaumPedersenCommitment) []byte {
	buf := make([]byte, 0, 2*curve.PointSize)
	buf = append(buf, t.Vt.Bytes()...)
	buf = append(buf, t.Wt.Bytes()...)
	return buf
}

func (p *ChaumPedersenProver) Respond(c *big.Int) (ChaumPedersenResponse, error) {
	if p.state != Committed {
		return nil, &ErrProverState{Op: "Respond", State: p.state}
	}
	z := curve.AddMod(p.secretBt, curve.MulMod(c, p.witness))
	p.state = Spent
	return z, nil
}

// ChaumPedersenVerifier is the stateless verifier for a DDH-triple statement.
type ChaumPedersenVerifier struct {
	Statement ChaumPedersenStatement
}

// NewChaumPedersenVerifier constructs a verifier for the given statement.
func NewChaumPedersenVerifier(statement ChaumPedersenStatement) *ChaumPedersenVerifier {
	return &ChaumPedersenVerifier{Statement: statement}
}

func (v *ChaumPedersenVerifier) Challenge() (*big.Int, error) {
	return curve.RandomScalar()
}

func (v *ChaumPedersenVerifier) Check(t ChaumPedersenCommitment, c *big.Int, z ChaumPedersenResponse) bool {
	left1 := curve.BaseScale(z)
	right1 := curve.Add(t.Vt, curve.Scale(v.Statement.V, c))

	left2 := curve.Scale(v.Statement.U, z)
	right2 := curve.Add(t.Wt, curve.Scale(v.Statement.W, c))

	return left1.Equal(right1) && left2.Equal(right2)
}

func (v *ChaumPedersenVerifier) Simulate(c *big.Int) (ChaumPedersenCommitment, ChaumPedersenResponse, error) {
	z, err := curve.RandomScalar()
	if err != nil {
		return ChaumPedersenCommitment{}, nil, err
	}
	t := ChaumPedersenCommitment{
		Vt: curve.Subtract(curve.BaseScale(z), curve.Scale(v.Statement.V, c)),
		Wt: curve.Subtract(curve.Scale(v.Statement.U, z), curve.Scale(v.Statement.W, c)),
	}
	return t, z, nil
}

var (
	_ Prover[ChaumPedersenWitness, ChaumPedersenCommitment, ChaumPedersenResponse] = (*ChaumPedersenProver)(nil)
	_ Verifier[ChaumPedersenCommitment, ChaumPedersenResponse]                     = (*ChaumPedersenVerifier)(nil)
)
