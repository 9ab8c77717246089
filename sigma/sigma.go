// Package sigma implements the compositional Σ-protocol engine spec §4.B–§4.G
// describes: atomic Schnorr and Chaum–Pedersen protocols, AND/OR
// combinators, and the Fiat–Shamir transform. Challenges are always
// elements of the Ristretto255 scalar field (*big.Int, reduced mod
// curve.Order), so the contracts below fix that type rather than carrying
// it as a fourth type parameter, matching spec §3's "VerifierChallenge
// (always 𝔽q)".
//
// Grounded on the generic SigmaProver/SigmaVerifier traits of
// original_source/src/pok/linear_sigma.rs, translated into Go generics per
// spec §9's design note: the combinators are generic, the composed AMF
// tree is a concrete instantiation fixed at compile time.
package sigma

import "math/big"

// State tracks a prover's position in the three-state commit/respond
// state machine spec §9 calls out: uncommitted -> commit ->
// committed-with-secret -> respond -> spent. A prover in a state other
// than Uncommitted refusing Commit, or one that has not Committed refusing
// Respond, replaces the reference implementation's run-time panics with
// errors a caller can check.
type State int

const (
	Uncommitted State = iota
	Committed
	Spent
)

// Prover is one session of the prover side of a Σ-protocol: commit to a
// witness, then respond to a challenge. A Prover instance is single-use
// (cf. spec §5, "must not be used by two sessions in parallel") and is
// NOT safe for concurrent use by two callers, or for Respond calls from
// two different goroutines on the same instance.
type Prover[Witness, Commitment, Response any] interface {
	// Commit draws the per-session randomness and returns the prover's
	// first message. Calling Commit on an already-committed or spent
	// prover returns ErrProverState.
	Commit(witness Witness) (Commitment, error)
	// SerializeCommitment is a pure function of the commitment value; it
	// does not touch prover state, so it may be called from a prover that
	// has not been used to Commit (e.g. the Fiat–Shamir verify path,
	// grounded on original_source/src/pok/fiat_shamir.rs's
	// hash_message_and_commitment_to_scalar calling
	// self.prover.as_ref().serialize_commitment).
	SerializeCommitment(t Commitment) []byte
	// Respond consumes the per-session secret stored by Commit and
	// produces the prover's response to challenge c. Calling Respond
	// before Commit, or twice, returns ErrProverState.
	Respond(c *big.Int) (Response, error)
}

// Verifier is the stateless verifier side of a Σ-protocol. A Verifier
// value is an immutable descriptor of a public statement and is safe for
// concurrent use (spec §5: "freely shareable across threads").
type Verifier[Commitment, Response any] interface {
	// Challenge draws a uniformly random challenge from an OS-backed
	// CSPRNG, for interactive use.
	Challenge() (*big.Int, error)
	// Check reports whether (t, c, z) is an accepting transcript.
	Check(t Commitment, c *big.Int, z Response) bool
	// Simulate produces an accepting transcript for challenge c without
	// knowledge of a witness, drawn from the same distribution as an
	// honest transcript (honest-verifier zero-knowledge).
	Simulate(c *big.Int) (Commitment, Response, error)
}

// ErrProverState is returned when Commit/Respond is called out of order
// on a Prover, per the state-machine invariant in spec §9.
type ErrProverState struct {
	Op    string
	State State
}

func (e *ErrProverState) Error() string {
	switch e.State {
	case Uncommitted:
		return "sigma: " + e.Op + " called before Commit"
	case Spent:
		return "sigma: " + e.Op + " called on a spent prover"
	default:
		return "sigma: " + e.Op + " called out of order"
	}
}
