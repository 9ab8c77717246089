package amf

import (
	"math/big"

	"github.com/go-amf/amf/curve"
	"github.com/go-amf/amf/sigma"
)

// The AMF relation is (Sch(pk_S) ∨ Sch(J)) ∧ (CP(pk_J,E_J,J) ∨ Sch(R))
// (spec §4.H), flattened into concrete generic instantiations per spec
// §9's design note that only the combinators need stay generic once the
// tree shape is fixed at compile time.

type (
	leftOrWitness    = sigma.OrWitness[sigma.SchnorrWitness, sigma.SchnorrWitness]
	leftOrCommitment = sigma.OrCommitment[sigma.SchnorrCommitment, sigma.SchnorrCommitment]
	leftOrResponse   = sigma.OrResponse[sigma.SchnorrResponse, sigma.SchnorrResponse]

	rightOrWitness    = sigma.OrWitness[sigma.ChaumPedersenWitness, sigma.SchnorrWitness]
	rightOrCommitment = sigma.OrCommitment[sigma.ChaumPedersenCommitment, sigma.SchnorrCommitment]
	rightOrResponse   = sigma.OrResponse[sigma.ChaumPedersenResponse, sigma.SchnorrResponse]

	leftOrProver   = sigma.OrProver[sigma.SchnorrWitness, sigma.SchnorrCommitment, sigma.SchnorrResponse, sigma.SchnorrWitness, sigma.SchnorrCommitment, sigma.SchnorrResponse]
	leftOrVerifier = sigma.OrVerifier[sigma.SchnorrCommitment, sigma.SchnorrResponse, sigma.SchnorrCommitment, sigma.SchnorrResponse]

	rightOrProver   = sigma.OrProver[sigma.ChaumPedersenWitness, sigma.ChaumPedersenCommitment, sigma.ChaumPedersenResponse, sigma.SchnorrWitness, sigma.SchnorrCommitment, sigma.SchnorrResponse]
	rightOrVerifier = sigma.OrVerifier[sigma.ChaumPedersenCommitment, sigma.ChaumPedersenResponse, sigma.SchnorrCommitment, sigma.SchnorrResponse]
)

// spokWitness, spokCommitment, spokResponse are the top-level AND-of-ORs
// types; their shapes are exactly π's three parts from spec §3.
type (
	spokWitness    = sigma.AndWitness[leftOrWitness, rightOrWitness]
	spokCommitment = sigma.AndCommitment[leftOrCommitment, rightOrCommitment]
	spokResponse   = sigma.AndResponse[leftOrResponse, rightOrResponse]
)

type spokProver = sigma.AndProver[leftOrWitness, leftOrCommitment, leftOrResponse, rightOrWitness, rightOrCommitment, rightOrResponse]
type spokVerifier = sigma.AndVerifier[leftOrCommitment, leftOrResponse, rightOrCommitment, rightOrResponse]

// spok is a Fiat–Shamir signature scheme over the AMF AND-of-ORs tree.
type spok = sigma.FiatShamir[spokWitness, spokCommitment, spokResponse]

// statement holds the public parameters the SPoK tree is built over: the
// Sender's public key, the Judge's public key, and the per-message
// ephemeral points J, R, E_J. R is the statement of the right sub-OR's
// Schnorr branch (the branch the honest Sender simulates). E_R is not
// part of the statement: it is bound into the external signature σ
// separately, via the Recipient's own R == skR·E_R check.
type statement struct {
	PkS curve.Point
	PkJ curve.Point
	J   curve.Point
	R   curve.Point
	EJ  curve.Point
}

func newSpokProver(s statement) *spokProver {
	left := &leftOrProver{
		P0: sigma.NewSchnorrProver(s.PkS),
		V0: sigma.NewSchnorrVerifier(s.PkS),
		P1: sigma.NewSchnorrProver(s.J),
		V1: sigma.NewSchnorrVerifier(s.J),
	}
	cpStatement := sigma.ChaumPedersenStatement{U: s.PkJ, V: s.EJ, W: s.J}
	right := &rightOrProver{
		P0: sigma.NewChaumPedersenProver(cpStatement),
		V0: sigma.NewChaumPedersenVerifier(cpStatement),
		P1: sigma.NewSchnorrProver(s.R),
		V1: sigma.NewSchnorrVerifier(s.R),
	}
	return &spokProver{P0: left, P1: right}
}

func newSpokVerifier(s statement) *spokVerifier {
	cpStatement := sigma.ChaumPedersenStatement{U: s.PkJ, V: s.EJ, W: s.J}
	left := &leftOrVerifier{
		V0: sigma.NewSchnorrVerifier(s.PkS),
		V1: sigma.NewSchnorrVerifier(s.J),
	}
	right := &rightOrVerifier{
		V0: sigma.NewChaumPedersenVerifier(cpStatement),
		V1: sigma.NewSchnorrVerifier(s.R),
	}
	return &spokVerifier{V0: left, V1: right}
}

// newSpok builds the Fiat–Shamir signature scheme for statement.
func newSpok(s statement) *spok {
	return &spok{Prover: newSpokProver(s), Verifier: newSpokVerifier(s)}
}

// senderWitness builds the honest Sender's witness: real knowledge on
// branch 0 of both sub-ORs (sk_S on the left, α on the right — the
// witness binding resolved in DESIGN.md in favor of the algebra over
// the original construction's witness naming).
func senderWitness(skS, alpha *big.Int) spokWitness {
	return spokWitness{
		W0: leftOrWitness{Branch: 0, W0: skS},
		W1: rightOrWitness{Branch: 0, W0: alpha},
	}
}
