package amf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-amf/amf/amf"
)

// Codec round-trip and fixed-size laws (spec §8 items 12-13), exercised
// against live keygen/frank output rather than synthetic byte arrays
// (mirrors the original's codec tests round-tripping real signing output).

func TestPublicKeyCodecRoundTrip(t *testing.T) {
	pk, _, err := amf.Keygen(amf.RoleSender)
	require.NoError(t, err)

	wire := amf.EncodePublicKey(pk)
	assert.Len(t, wire, 33)

	decoded, err := amf.DecodePublicKey(wire)
	require.NoError(t, err)
	assert.Equal(t, pk.Role, decoded.Role)
	assert.Equal(t, wire, amf.EncodePublicKey(decoded))
}

func TestSecretKeyCodecRoundTrip(t *testing.T) {
	_, sk, err := amf.Keygen(amf.RoleJudge)
	require.NoError(t, err)

	wire := amf.EncodeSecretKey(sk)
	assert.Len(t, wire, 33)

	decoded, err := amf.DecodeSecretKey(wire)
	require.NoError(t, err)
	assert.Equal(t, sk.Role, decoded.Role)
	assert.Equal(t, 0, sk.Sk.Cmp(decoded.Sk))
}

func TestSignatureCodecRoundTrip(t *testing.T) {
	pkS, skS, err := amf.Keygen(amf.RoleSender)
	require.NoError(t, err)
	pkR, _, err := amf.Keygen(amf.RoleRecipient)
	require.NoError(t, err)
	pkJ, _, err := amf.Keygen(amf.RoleJudge)
	require.NoError(t, err)

	sig, err := amf.Frank(skS, pkS, pkR, pkJ, []byte("round-trip me"))
	require.NoError(t, err)

	wire := amf.EncodeSignature(sig)
	assert.Len(t, wire, amf.SignatureSize)
	assert.Equal(t, 480, amf.SignatureSize)
	assert.Equal(t, 352, amf.PiSize)

	decoded, err := amf.DecodeSignature(wire)
	require.NoError(t, err)
	assert.Equal(t, wire, amf.EncodeSignature(decoded))
}

func TestDecodePublicKeyRejectsWrongLength(t *testing.T) {
	_, err := amf.DecodePublicKey(make([]byte, 32))
	assert.ErrorIs(t, err, amf.ErrMalformedEncoding)
}

func TestDecodePublicKeyRejectsInvalidRoleByte(t *testing.T) {
	pk, _, err := amf.Keygen(amf.RoleSender)
	require.NoError(t, err)
	wire := amf.EncodePublicKey(pk)
	wire[0] = 0xFF

	_, err = amf.DecodePublicKey(wire)
	assert.ErrorIs(t, err, amf.ErrMalformedEncoding)
}

func TestDecodeSecretKeyRejectsOutOfRangeScalar(t *testing.T) {
	_, sk, err := amf.Keygen(amf.RoleRecipient)
	require.NoError(t, err)
	wire := amf.EncodeSecretKey(sk)
	for i := 1; i < len(wire); i++ {
		wire[i] = 0xFF
	}

	_, err = amf.DecodeSecretKey(wire)
	assert.ErrorIs(t, err, amf.ErrMalformedEncoding)
}

func TestDecodeSignatureRejectsWrongLength(t *testing.T) {
	_, err := amf.DecodeSignature(make([]byte, amf.SignatureSize-1))
	assert.ErrorIs(t, err, amf.ErrMalformedEncoding)
}
