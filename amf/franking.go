package amf

import (
	"math/big"

	"github.com/go-amf/amf/curve"
	"github.com/go-amf/amf/sigma"
)

// Role tags a key to its position in the franking triangle (spec §3).
// It is attached for defensive tagging only — it never enters the
// algebra.
type Role byte

const (
	RoleSender Role = iota
	RoleRecipient
	RoleJudge
)

func (r Role) valid() bool {
	return r == RoleSender || r == RoleRecipient || r == RoleJudge
}

func (r Role) String() string {
	switch r {
	case RoleSender:
		return "sender"
	case RoleRecipient:
		return "recipient"
	case RoleJudge:
		return "judge"
	default:
		return "invalid"
	}
}

// PublicKey is (role, P) with the invariant P = sk·g for the matching
// SecretKey (spec §3).
type PublicKey struct {
	Role Role
	P    curve.Point
}

// SecretKey is (role, sk) with sk ≠ 0 (spec §3). It is opaque to the
// Σ-protocol machinery except as a witness input.
type SecretKey struct {
	Role Role
	Sk   *big.Int
}

// Pi is the AMF internal SPoK signature: a Fiat–Shamir (commitment,
// response) pair over the AND-of-two-ORs tree (spec §3).
type Pi = sigma.Signature[spokCommitment, spokResponse]

// Signature is the AMF external signature σ = (π, J, R, E_J, E_R)
// (spec §3).
type Signature struct {
	Pi Pi
	J  curve.Point
	R  curve.Point
	EJ curve.Point
	ER curve.Point
}

// Keygen draws sk ∈_R 𝔽q and returns the matching (PublicKey, SecretKey)
// pair for role (spec §4.I).
func Keygen(role Role) (PublicKey, SecretKey, error) {
	sk, err := curve.RandomNonZeroScalar()
	if err != nil {
		return PublicKey{}, SecretKey{}, randomnessUnavailable("keygen: " + err.Error())
	}
	pk := curve.BaseScale(sk)
	return PublicKey{Role: role, P: pk}, SecretKey{Role: role, Sk: sk}, nil
}

func checkRole(got, want Role, slot string) error {
	if got != want {
		return roleMismatch("expected " + want.String() + " key in " + slot + " slot, got " + got.String())
	}
	return nil
}

// Frank produces an AMF signature binding message to skS/pkS and the
// Recipient/Judge public keys (spec §4.I).
func Frank(skS SecretKey, pkS, pkR, pkJ PublicKey, message []byte) (Signature, error) {
	if err := checkRole(skS.Role, RoleSender, "skS"); err != nil {
		return Signature{}, err
	}
	if err := checkRole(pkS.Role, RoleSender, "pkS"); err != nil {
		return Signature{}, err
	}
	if err := checkRole(pkR.Role, RoleRecipient, "pkR"); err != nil {
		return Signature{}, err
	}
	if err := checkRole(pkJ.Role, RoleJudge, "pkJ"); err != nil {
		return Signature{}, err
	}

	alpha, err := curve.RandomScalar()
	if err != nil {
		return Signature{}, randomnessUnavailable("frank: " + err.Error())
	}
	beta, err := curve.RandomScalar()
	if err != nil {
		return Signature{}, randomnessUnavailable("frank: " + err.Error())
	}

	j := curve.Scale(pkJ.P, alpha)
	r := curve.Scale(pkR.P, beta)
	ej := curve.BaseScale(alpha)
	er := curve.BaseScale(beta)

	stmt := statement{PkS: pkS.P, PkJ: pkJ.P, J: j, R: r, EJ: ej}
	s := newSpok(stmt)

	witness := senderWitness(skS.Sk, alpha)
	pi, err := s.Sign(witness, message)
	if err != nil {
		return Signature{}, err
	}

	return Signature{Pi: pi, J: j, R: r, EJ: ej, ER: er}, nil
}

// Verify accepts iff pkR is skR's public key, R == skR·E_R, and the SPoK
// verifies against message (spec §4.I). All conditions are required; a
// Recipient's own DDH check alone is never sufficient.
func Verify(skR SecretKey, pkS, pkR, pkJ PublicKey, message []byte, sig Signature) bool {
	if skR.Role != RoleRecipient || pkS.Role != RoleSender ||
		pkR.Role != RoleRecipient || pkJ.Role != RoleJudge {
		return false
	}

	if !curve.BaseScale(skR.Sk).Equal(pkR.P) {
		return false
	}

	expectedR := curve.Scale(sig.ER, skR.Sk)
	if !expectedR.Equal(sig.R) {
		return false
	}

	stmt := statement{PkS: pkS.P, PkJ: pkJ.P, J: sig.J, R: sig.R, EJ: sig.EJ}
	s := newSpok(stmt)
	return s.Verify(message, sig.Pi)
}

// Judge accepts iff J == skJ·E_J and the SPoK verifies against message
// (spec §4.I).
func Judge(skJ SecretKey, pkS, pkR, pkJ PublicKey, message []byte, sig Signature) bool {
	if skJ.Role != RoleJudge || pkS.Role != RoleSender ||
		pkR.Role != RoleRecipient || pkJ.Role != RoleJudge {
		return false
	}

	expectedJ := curve.Scale(sig.EJ, skJ.Sk)
	if !expectedJ.Equal(sig.J) {
		return false
	}

	stmt := statement{PkS: pkS.P, PkJ: pkJ.P, J: sig.J, R: sig.R, EJ: sig.EJ}
	s := newSpok(stmt)
	return s.Verify(message, sig.Pi)
}
