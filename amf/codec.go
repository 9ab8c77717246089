package amf

import (
	"github.com/go-amf/amf/curve"
	"github.com/go-amf/amf/sigma"
)

// Fixed-width sizes from spec §4.J. All fields are fixed width; the
// codec is deliberately length-prefix-free.
const (
	roleSize        = 1
	publicKeySize   = roleSize + curve.PointSize
	secretKeySize   = roleSize + curve.ScalarSize
	orResponseSize  = 3 * curve.ScalarSize // c0 ‖ z0 ‖ z1
	leftCommitSize  = 2 * curve.PointSize  // point ‖ point
	rightCommitSize = 3 * curve.PointSize  // (v_t ‖ w_t) ‖ point

	// PiSize is the encoded size of an internal SPoK signature π:
	// 64 (left commitment) + 96 (right commitment) + 96 (left response) +
	// 96 (right response) = 352 bytes.
	PiSize = leftCommitSize + rightCommitSize + orResponseSize + orResponseSize

	// SignatureSize is the encoded size of the external signature σ:
	// π ‖ J ‖ R ‖ E_J ‖ E_R = 352 + 128 = 480 bytes.
	SignatureSize = PiSize + 4*curve.PointSize
)

func encodeRole(r Role) []byte {
	return []byte{byte(r)}
}

func decodeRole(b []byte) (Role, error) {
	if len(b) != roleSize {
		return 0, malformedEncoding("role: wrong length")
	}
	r := Role(b[0])
	if !r.valid() {
		return 0, malformedEncoding("role: out of range")
	}
	return r, nil
}

// EncodePublicKey returns the 33-byte encoding role ‖ point.
func EncodePublicKey(pk PublicKey) []byte {
	buf := make([]byte, 0, publicKeySize)
	buf = append(buf, encodeRole(pk.Role)...)
	buf = append(buf, pk.P.Bytes()...)
	return buf
}

// DecodePublicKey parses a 33-byte public key encoding.
func DecodePublicKey(b []byte) (PublicKey, error) {
	if len(b) != publicKeySize {
		return PublicKey{}, malformedEncoding("public key: wrong length")
	}
	role, err := decodeRole(b[:roleSize])
	if err != nil {
		return PublicKey{}, err
	}
	p, err := curve.DecodePoint(b[roleSize:])
	if err != nil {
		return PublicKey{}, malformedEncoding("public key: " + err.Error())
	}
	return PublicKey{Role: role, P: p}, nil
}

// EncodeSecretKey returns the 33-byte encoding role ‖ scalar.
func EncodeSecretKey(sk SecretKey) []byte {
	buf := make([]byte, 0, secretKeySize)
	buf = append(buf, encodeRole(sk.Role)...)
	buf = append(buf, curve.EncodeScalar(sk.Sk)...)
	return buf
}

// DecodeSecretKey parses a 33-byte secret key encoding.
func DecodeSecretKey(b []byte) (SecretKey, error) {
	if len(b) != secretKeySize {
		return SecretKey{}, malformedEncoding("secret key: wrong length")
	}
	role, err := decodeRole(b[:roleSize])
	if err != nil {
		return SecretKey{}, err
	}
	sk, err := curve.DecodeScalar(b[roleSize:])
	if err != nil {
		return SecretKey{}, malformedEncoding("secret key: " + err.Error())
	}
	return SecretKey{Role: role, Sk: sk}, nil
}

func encodeLeftOrCommitment(t leftOrCommitment) []byte {
	buf := make([]byte, 0, leftCommitSize)
	buf = append(buf, t.T0.Bytes()...)
	buf = append(buf, t.T1.Bytes()...)
	return buf
}

func decodeLeftOrCommitment(b []byte) (leftOrCommitment, error) {
	if len(b) != leftCommitSize {
		return leftOrCommitment{}, malformedEncoding("left-OR commitment: wrong length")
	}
	t0, err := curve.DecodePoint(b[:curve.PointSize])
	if err != nil {
		return leftOrCommitment{}, malformedEncoding("left-OR commitment: " + err.Error())
	}
	t1, err := curve.DecodePoint(b[curve.PointSize:])
	if err != nil {
		return leftOrCommitment{}, malformedEncoding("left-OR commitment: " + err.Error())
	}
	return leftOrCommitment{T0: t0, T1: t1}, nil
}

func encodeRightOrCommitment(t rightOrCommitment) []byte {
	buf := make([]byte, 0, rightCommitSize)
	buf = append(buf, t.T0.Vt.Bytes()...)
	buf = append(buf, t.T0.Wt.Bytes()...)
	buf = append(buf, t.T1.Bytes()...)
	return buf
}

func decodeRightOrCommitment(b []byte) (rightOrCommitment, error) {
	if len(b) != rightCommitSize {
		return rightOrCommitment{}, malformedEncoding("right-OR commitment: wrong length")
	}
	vt, err := curve.DecodePoint(b[0*curve.PointSize : 1*curve.PointSize])
	if err != nil {
		return rightOrCommitment{}, malformedEncoding("right-OR commitment: " + err.Error())
	}
	wt, err := curve.DecodePoint(b[1*curve.PointSize : 2*curve.PointSize])
	if err != nil {
		return rightOrCommitment{}, malformedEncoding("right-OR commitment: " + err.Error())
	}
	t1, err := curve.DecodePoint(b[2*curve.PointSize : 3*curve.PointSize])
	if err != nil {
		return rightOrCommitment{}, malformedEncoding("right-OR commitment: " + err.Error())
	}
	return rightOrCommitment{
		T0: sigma.ChaumPedersenCommitment{Vt: vt, Wt: wt},
		T1: t1,
	}, nil
}

func decodeLeftOrResponse(b []byte) (leftOrResponse, error) {
	if len(b) != orResponseSize {
		return leftOrResponse{}, malformedEncoding("left-OR response: wrong length")
	}
	c0, err := curve.DecodeScalar(b[0*curve.ScalarSize : 1*curve.ScalarSize])
	if err != nil {
		return leftOrResponse{}, malformedEncoding("left-OR response: " + err.Error())
	}
	z0, err := curve.DecodeScalar(b[1*curve.ScalarSize : 2*curve.ScalarSize])
	if err != nil {
		return leftOrResponse{}, malformedEncoding("left-OR response: " + err.Error())
	}
	z1, err := curve.DecodeScalar(b[2*curve.ScalarSize : 3*curve.ScalarSize])
	if err != nil {
		return leftOrResponse{}, malformedEncoding("left-OR response: " + err.Error())
	}
	return leftOrResponse{C0: c0, Z0: z0, Z1: z1}, nil
}

func decodeRightOrResponse(b []byte) (rightOrResponse, error) {
	if len(b) != orResponseSize {
		return rightOrResponse{}, malformedEncoding("right-OR response: wrong length")
	}
	c0, err := curve.DecodeScalar(b[0*curve.ScalarSize : 1*curve.ScalarSize])
	if err != nil {
		return rightOrResponse{}, malformedEncoding("right-OR response: " + err.Error())
	}
	z0, err := curve.DecodeScalar(b[1*curve.ScalarSize : 2*curve.ScalarSize])
	if err != nil {
		return rightOrResponse{}, malformedEncoding("right-OR response: " + err.Error())
	}
	z1, err := curve.DecodeScalar(b[2*curve.ScalarSize : 3*curve.ScalarSize])
	if err != nil {
		return rightOrResponse{}, malformedEncoding("right-OR response: " + err.Error())
	}
	return rightOrResponse{C0: c0, Z0: z0, Z1: z1}, nil
}

// EncodePi returns the 352-byte encoding of an internal SPoK signature.
func EncodePi(pi Pi) []byte {
	buf := make([]byte, 0, PiSize)
	buf = append(buf, encodeLeftOrCommitment(pi.Commitment.T0)...)
	buf = append(buf, encodeRightOrCommitment(pi.Commitment.T1)...)
	buf = append(buf, encodeLeftOrResponseRaw(pi.Response.Z0)...)
	buf = append(buf, encodeRightOrResponseRaw(pi.Response.Z1)...)
	return buf
}

func encodeLeftOrResponseRaw(z leftOrResponse) []byte {
	buf := make([]byte, 0, orResponseSize)
	buf = append(buf, curve.EncodeScalar(z.C0)...)
	buf = append(buf, curve.EncodeScalar(z.Z0)...)
	buf = append(buf, curve.EncodeScalar(z.Z1)...)
	return buf
}

func encodeRightOrResponseRaw(z rightOrResponse) []byte {
	buf := make([]byte, 0, orResponseSize)
	buf = append(buf, curve.EncodeScalar(z.C0)...)
	buf = append(buf, curve.EncodeScalar(z.Z0)...)
	buf = append(buf, curve.EncodeScalar(z.Z1)...)
	return buf
}

// DecodePi parses a 352-byte internal SPoK signature encoding.
func DecodePi(b []byte) (Pi, error) {
	if len(b) != PiSize {
		return Pi{}, malformedEncoding("pi: wrong length")
	}
	off := 0
	t0, err := decodeLeftOrCommitment(b[off : off+leftCommitSize])
	if err != nil {
		return Pi{}, err
	}
	off += leftCommitSize
	t1, err := decodeRightOrCommitment(b[off : off+rightCommitSize])
	if err != nil {
		return Pi{}, err
	}
	off += rightCommitSize
	z0, err := decodeLeftOrResponse(b[off : off+orResponseSize])
	if err != nil {
		return Pi{}, err
	}
	off += orResponseSize
	z1, err := decodeRightOrResponse(b[off : off+orResponseSize])
	if err != nil {
		return Pi{}, err
	}

	return Pi{
		Commitment: spokCommitment{T0: t0, T1: t1},
		Response:   spokResponse{Z0: z0, Z1: z1},
	}, nil
}

// EncodeSignature returns the 480-byte encoding π ‖ J ‖ R ‖ E_J ‖ E_R.
func EncodeSignature(sig Signature) []byte {
	buf := make([]byte, 0, SignatureSize)
	buf = append(buf, EncodePi(sig.Pi)...)
	buf = append(buf, sig.J.Bytes()...)
	buf = append(buf, sig.R.Bytes()...)
	buf = append(buf, sig.EJ.Bytes()...)
	buf = append(buf, sig.ER.Bytes()...)
	return buf
}

// DecodeSignature parses a 480-byte external signature encoding.
func DecodeSignature(b []byte) (Signature, error) {
	if len(b) != SignatureSize {
		return Signature{}, malformedEncoding("signature: wrong length")
	}
	off := 0
	pi, err := DecodePi(b[off : off+PiSize])
	if err != nil {
		return Signature{}, err
	}
	off += PiSize

	j, err := curve.DecodePoint(b[off : off+curve.PointSize])
	if err != nil {
		return Signature{}, malformedEncoding("signature: J: " + err.Error())
	}
	off += curve.PointSize

	r, err := curve.DecodePoint(b[off : off+curve.PointSize])
	if err != nil {
		return Signature{}, malformedEncoding("signature: R: " + err.Error())
	}
	off += curve.PointSize

	ej, err := curve.DecodePoint(b[off : off+curve.PointSize])
	if err != nil {
		return Signature{}, malformedEncoding("signature: E_J: " + err.Error())
	}
	off += curve.PointSize

	er, err := curve.DecodePoint(b[off : off+curve.PointSize])
	if err != nil {
		return Signature{}, malformedEncoding("signature: E_R: " + err.Error())
	}

	return Signature{Pi: pi, J: j, R: r, EJ: ej, ER: er}, nil
}
