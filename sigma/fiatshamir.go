package sigma

import (
	"math/big"

	"github.com/go-amf/amf/curve"
)

// domainSeparator is the two ASCII pipe characters spec §6 fixes as the
// Fiat–Shamir wire contract: "c = SHA-512(message ‖ 0x7C7C ‖
// serialize(commitment)) mod q ... this is the canonical cross-
// implementation byte stream and must be preserved bit-exactly."
var domainSeparator = []byte("||")

// Signature is the non-interactive (commitment, response) pair a
// Fiat–Shamir-transformed Σ-protocol produces (spec §4.G).
type Signature[Commitment, Response any] struct {
	Commitment Commitment
	Response   Response
}

// FiatShamir turns an interactive Σ-protocol into a signature scheme by
// deriving the challenge as a hash of the message and the commitment
// (spec §4.G). Grounded on original_source/src/pok/fiat_shamir.rs.
type FiatShamir[Witness, Commitment, Response any] struct {
	Prover   Prover[Witness, Commitment, Response]
	Verifier Verifier[Commitment, Response]
}

func (fs *FiatShamir[Witness, Commitment, Response]) challenge(message []byte, t Commitment) *big.Int {
	transcript := make([]byte, 0, len(message)+len(domainSeparator)+64)
	transcript = append(transcript, message...)
	transcript = append(transcript, domainSeparator...)
	transcript = append(transcript, fs.Prover.SerializeCommitment(t)...)
	return curve.HashToScalar(transcript)
}

// Sign produces a signature (t, z) over message under witness.
func (fs *FiatShamir[Witness, Commitment, Response]) Sign(
	witness Witness, message []byte,
) (Signature[Commitment, Response], error) {
	t, err := fs.Prover.Commit(witness)
	if err != nil {
		return Signature[Commitment, Response]{}, err
	}
	c := fs.challenge(message, t)
	z, err := fs.Prover.Respond(c)
	if err != nil {
		return Signature[Commitment, Response]{}, err
	}
	return Signature[Commitment, Response]{Commitment: t, Response: z}, nil
}

// Verify reports whether sig is a valid signature over message. It never
// touches the Prover's session state: only its witness-independent
// SerializeCommitment is used, so Verify may be called any number of
// times, including against signatures this process never produced.
func (fs *FiatShamir[Witness, Commitment, Response]) Verify(
	message []byte, sig Signature[Commitment, Response],
) bool {
	c := fs.challenge(message, sig.Commitment)
	return fs.Verifier.Check(sig.Commitment, c, sig.Response)
}
