package parse

import (
	"errors"
	"net/netip"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type Celsius int16

func TestInt(t *testing.T) {
	assert := assert.New(t)

	i, err := Int[int]("-42")
	assert.NoError(err)
	assert.Equal(-42, i)

	i8, err := Int[int8]("127")
	assert.NoError(err)
	assert.Equal(int8(127), i8)

	_, err = Int[int8]("128")
	assert.ErrorIs(err, strconv.ErrRange)

	c, err := Int[Celsius]("-40")
	assert.NoError(err)
	assert.Equal(Celsius(-40), c)

	_, err = Int[int64]("")
	assert.ErrorIs(err, strconv.ErrSyntax)

	_, err = Int[int32]("0x10")
	assert.ErrorIs(err, strconv.ErrSyntax)
}

func TestUint(t *testing.T) {
	assert := assert.New(t)

	u8, err := Uint[uint8]("255")
	assert.NoError(err)
	assert.Equal(uint8(255), u8)

	_, err = Uint[uint8]("300")
	assert.ErrorIs(err, strconv.ErrRange)
	assert.Equal(`strconv.ParseUint: parsing "300": value out of range`, err.Error())

	_, err = Uint[uint]("-1")
	assert.ErrorIs(err, strconv.ErrSyntax)

	u64, err := Uint[uint64]("18446744073709551615")
	assert.NoError(err)
	assert.Equal(uint64(18446744073709551615), u64)
}

func TestFloat(t *testing.T) {
	assert := assert.New(t)

	f64, err := Float[float64]("12.5")
	assert.NoError(err)
	assert.Equal(12.5, f64)

	f32, err := Float[float32]("0.1")
	assert.NoError(err)
	assert.Equal(float32(0.1), f32)

	_, err = Float[float32]("1e39")
	assert.ErrorIs(err, strconv.ErrRange)

	_, err = Float[float64]("twelve")
	assert.ErrorIs(err, strconv.ErrSyntax)
}

func TestBoolStringDuration(t *testing.T) {
	assert := assert.New(t)

	b, err := Bool("true")
	assert.NoError(err)
	assert.True(b)

	_, err = Bool("yes")
	assert.Error(err)

	s, err := String("as is")
	assert.NoError(err)
	assert.Equal("as is", s)

	d, err := Duration("1m30s")
	assert.NoError(err)
	assert.Equal(90*time.Second, d)

	_, err = Duration("soon")
	assert.Error(err)
}

func TestText(t *testing.T) {
	assert := assert.New(t)

	addr, err := Text[netip.Addr]("192.0.2.1")
	assert.NoError(err)
	assert.Equal(netip.MustParseAddr("192.0.2.1"), addr)

	_, err = Text[netip.Addr]("192.0.2")
	assert.Error(err)
}

func TestFields(t *testing.T) {
	assert := assert.New(t)

	ints := Fields(Int[int])

	values, err := ints("1 2\t3")
	assert.NoError(err)
	assert.Equal([]int{1, 2, 3}, values)

	values, err = ints("")
	assert.NoError(err)
	assert.Empty(values)

	values, err = ints("1 two 3")
	assert.Nil(values)
	assert.ErrorIs(err, strconv.ErrSyntax)
	assert.Equal(`field 2 'two' strconv.ParseInt: parsing "two": invalid syntax`, err.Error())

	var fe *ErrField
	assert.True(errors.As(err, &fe))
	assert.Equal(1, fe.Index)
	assert.Equal("two", fe.Field)
}
