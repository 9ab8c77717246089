package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseScaleMatchesScaleOfGenerator(t *testing.T) {
	s, err := RandomScalar()
	require.NoError(t, err)

	got := BaseScale(s)
	want := Scale(Generator(), s)
	assert.True(t, got.Equal(want))
}

func TestScaleByZeroIsIdentity(t *testing.T) {
	p := BaseScale(big.NewInt(7))
	assert.True(t, Scale(p, big.NewInt(0)).IsIdentity())
}

func TestAddNegateSubtract(t *testing.T) {
	a := BaseScale(big.NewInt(3))
	b := BaseScale(big.NewInt(5))
	sum := Add(a, b)
	assert.True(t, sum.Equal(BaseScale(big.NewInt(8))))
	assert.True(t, Subtract(sum, b).Equal(a))
	assert.True(t, Add(a, Negate(a)).IsIdentity())
}

func TestPointRoundTrip(t *testing.T) {
	p := BaseScale(big.NewInt(42))
	enc := p.Bytes()
	require.Len(t, enc, PointSize)

	dec, err := DecodePoint(enc)
	require.NoError(t, err)
	assert.True(t, p.Equal(dec))
}

func TestDecodePointRejectsMalformed(t *testing.T) {
	_, err := DecodePoint(make([]byte, PointSize-1))
	assert.ErrorIs(t, err, ErrMalformedPoint)

	garbage := make([]byte, PointSize)
	for i := range garbage {
		garbage[i] = 0xFF
	}
	_, err = DecodePoint(garbage)
	assert.ErrorIs(t, err, ErrMalformedPoint)
}

func TestScalarRoundTrip(t *testing.T) {
	s, err := RandomScalar()
	require.NoError(t, err)

	enc := EncodeScalar(s)
	require.Len(t, enc, ScalarSize)

	dec, err := DecodeScalar(enc)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Cmp(dec))
}

func TestDecodeScalarRejectsOutOfRange(t *testing.T) {
	enc := EncodeScalar(new(big.Int).Sub(Order, big.NewInt(1)))
	_, err := DecodeScalar(enc)
	assert.NoError(t, err)

	// EncodeScalar always reduces first, so build the raw little-endian
	// encoding of Order itself (an out-of-range value) by hand.
	ob := Order.Bytes()
	raw := make([]byte, ScalarSize)
	for i := 0; i < len(ob); i++ {
		raw[len(ob)-1-i] = ob[i]
	}
	_, err = DecodeScalar(raw)
	assert.ErrorIs(t, err, ErrMalformedScalar)
}

func TestRandomNonZeroScalarIsNonZero(t *testing.T) {
	for i := 0; i < 32; i++ {
		s, err := RandomNonZeroScalar()
		require.NoError(t, err)
		assert.NotEqual(t, 0, s.Sign())
		assert.Equal(t, -1, s.Cmp(Order))
	}
}

func TestHashToScalarDeterministic(t *testing.T) {
	a := HashToScalar([]byte("hello world!"))
	b := HashToScalar([]byte("hello world!"))
	assert.Equal(t, 0, a.Cmp(b))

	c := HashToScalar([]byte("hello world?"))
	assert.NotEqual(t, 0, a.Cmp(c))
	assert.Equal(t, -1, a.Cmp(Order))
}

func TestScalarFieldArithmeticWrapsModOrder(t *testing.T) {
	nearTop := new(big.Int).Sub(Order, big.NewInt(1))
	sum := AddMod(nearTop, big.NewInt(2))
	assert.Equal(t, 0, sum.Cmp(big.NewInt(1)))

	diff := SubMod(big.NewInt(0), big.NewInt(1))
	assert.Equal(t, 0, diff.Cmp(nearTop))

	prod := MulMod(Order, big.NewInt(123))
	assert.Equal(t, 0, prod.Sign())
}
