// Package curve is the group arithmetic facade the rest of the AMF engine
// builds on. It fixes the group to Ristretto255 (cf. spec §1: "the curve
// choice is fixed") and wraps github.com/cloudflare/circl/group the same
// way the teacher's group/ristretto255.go does, trimmed to a single curve
// and to scalar-field arithmetic expressed over math/big, matching the
// convention voteproof.go used for its own Sigma-protocol scalar algebra.
package curve

import (
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"math/big"

	circl "github.com/cloudflare/circl/group"
)

// ScalarSize and PointSize are the fixed-width canonical encodings used
// throughout the codec (cf. spec §4.J).
const (
	ScalarSize = 32
	PointSize  = 32
)

// Order is the prime order of the Ristretto255 group, l = 2^252 +
// 27742317777372353535851937790883648493.
var Order, _ = new(big.Int).SetString(
	"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

// group is the sole backing curve; kept private so callers can't reach for
// a second curve, which spec §1's "no group-agnostic abstraction" Non-goal
// rules out by construction.
var group = circl.Ristretto255

// ErrMalformedPoint and ErrMalformedScalar are the decode-time errors
// spec §7 kind 1 ("Malformed encoding") surfaces.
var (
	ErrMalformedPoint  = errors.New("curve: malformed or non-canonical point encoding")
	ErrMalformedScalar = errors.New("curve: scalar out of range")
)

// Point is a Ristretto255 group element.
type Point struct {
	val circl.Element
}

// Generator returns the group's distinguished generator g.
func Generator() Point {
	return Point{val: group.Generator()}
}

// Identity returns the group's identity element.
func Identity() Point {
	return Point{val: group.Identity()}
}

// Add returns a + b.
func Add(a, b Point) Point {
	return Point{val: group.NewElement().Add(a.val, b.val)}
}

// Negate returns -a.
func Negate(a Point) Point {
	return Point{val: group.NewElement().Neg(a.val)}
}

// Subtract returns a - b.
func Subtract(a, b Point) Point {
	return Add(a, Negate(b))
}

// Scale returns s*X, the group operation applied s times to X.
func Scale(x Point, s *big.Int) Point {
	sc := group.NewScalar()
	sc.SetBigInt(reduced(s))
	return Point{val: group.NewElement().Mul(x.val, sc)}
}

// BaseScale returns s*g, the group operation applied s times to the
// generator. Uses the group's base-point table, the one piece of global
// state spec §9 allows ("a read-only constant, safe to share").
func BaseScale(s *big.Int) Point {
	sc := group.NewScalar()
	sc.SetBigInt(reduced(s))
	return Point{val: group.NewElement().MulGen(sc)}
}

// Equal reports whether a and b represent the same group element.
func (a Point) Equal(b Point) bool {
	return a.val.IsEqual(b.val)
}

// IsIdentity reports whether a is the group's identity element.
func (a Point) IsIdentity() bool {
	return a.val.IsIdentity()
}

// Bytes returns the 32-byte canonical compressed encoding of a.
func (a Point) Bytes() []byte {
	b, err := a.val.MarshalBinary()
	if err != nil {
		// circl only fails to marshal an uninitialized zero Element, which
		// every exported constructor here avoids producing.
		panic("curve: marshal of a valid point failed: " + err.Error())
	}
	return b
}

// DecodePoint parses a's canonical compressed encoding, rejecting
// non-canonical encodings and points outside the prime-order subgroup
// (Ristretto255's whole purpose, cf. spec §4.A).
func DecodePoint(b []byte) (Point, error) {
	if len(b) != PointSize {
		return Point{}, ErrMalformedPoint
	}
	e := group.NewElement()
	if err := e.UnmarshalBinary(b); err != nil {
		return Point{}, ErrMalformedPoint
	}
	return Point{val: e}, nil
}

// RandomScalar draws a uniformly random scalar in [0, Order) from an
// OS-backed CSPRNG.
func RandomScalar() (*big.Int, error) {
	s, err := rand.Int(rand.Reader, Order)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// RandomNonZeroScalar draws a uniformly random scalar in [1, Order), as
// required for secret keys (spec §3: "sk ≠ 0") and per-verifier Schnorr
// secrets (spec §4.C: "α_t ∈_R 𝔽q*").
func RandomNonZeroScalar() (*big.Int, error) {
	for {
		s, err := RandomScalar()
		if err != nil {
			return nil, err
		}
		if s.Sign() != 0 {
			return s, nil
		}
	}
}

// AddMod, SubMod, MulMod perform scalar-field arithmetic modulo Order.
func AddMod(a, b *big.Int) *big.Int {
	return reduced(new(big.Int).Add(a, b))
}

func SubMod(a, b *big.Int) *big.Int {
	return reduced(new(big.Int).Sub(a, b))
}

func MulMod(a, b *big.Int) *big.Int {
	return reduced(new(big.Int).Mul(a, b))
}

// reduced returns x mod Order, normalized into [0, Order).
func reduced(x *big.Int) *big.Int {
	r := new(big.Int).Mod(x, Order)
	if r.Sign() < 0 {
		r.Add(r, Order)
	}
	return r
}

// EncodeScalar returns the canonical 32-byte little-endian encoding of s
// reduced modulo Order.
func EncodeScalar(s *big.Int) []byte {
	r := reduced(s)
	buf := make([]byte, ScalarSize)
	b := r.Bytes() // big-endian, no leading zeros
	for i := 0; i < len(b); i++ {
		buf[len(b)-1-i] = b[i]
	}
	return buf
}

// DecodeScalar parses a 32-byte little-endian encoding, rejecting any
// value that is not already reduced modulo Order (spec §4.J: "Decoding
// must reject ... any scalar ≥ q").
func DecodeScalar(b []byte) (*big.Int, error) {
	if len(b) != ScalarSize {
		return nil, ErrMalformedScalar
	}
	be := make([]byte, ScalarSize)
	for i := 0; i < ScalarSize; i++ {
		be[i] = b[ScalarSize-1-i]
	}
	x := new(big.Int).SetBytes(be)
	if x.Cmp(Order) >= 0 {
		return nil, ErrMalformedScalar
	}
	return x, nil
}

// HashToScalar implements spec §4.A's hash_to_scalar: a SHA-512 digest of
// data, interpreted as a little-endian integer and reduced modulo Order.
// This is curve25519-dalek's Scalar::from_hash construction, the
// "standard construction for Ristretto255" spec §4.G requires bit-exactly.
func HashToScalar(data []byte) *big.Int {
	digest := sha512.Sum512(data)
	le := make([]byte, len(digest))
	for i, bb := range digest {
		le[len(digest)-1-i] = bb
	}
	return reduced(new(big.Int).SetBytes(le))
}
