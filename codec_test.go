package tinystr

import (
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type labelRecord struct {
	Name String[[9]byte] `json:"name" toml:"name" yaml:"name"`
}

func TestJSONRoundTrip(t *testing.T) {
	rec := labelRecord{}
	rec.Name.Append("1234 abcd")

	data, err := json.Marshal(&rec)
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"1234 abcd"}`, string(data))

	var out labelRecord
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.Name.Equal(&rec.Name))
	require.True(t, out.Name.IsFull())
}

func TestJSONEmpty(t *testing.T) {
	var s String[[0]byte]
	data, err := json.Marshal(&s)
	require.NoError(t, err)
	require.Equal(t, `""`, string(data))

	var out String[[0]byte]
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out.IsEmpty())
}

func TestJSONDecodeTooLong(t *testing.T) {
	var out struct {
		Name String[[2]byte] `json:"name"`
	}
	err := json.Unmarshal([]byte(`{"name":"afd"}`), &out)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, 3, lenErr.Len)
	require.Equal(t, 2, lenErr.Cap)
	require.ErrorContains(t, err, "invalid length 3, expected a string no more than 2 bytes long")
	// failed decode leaves the target untouched
	require.True(t, out.Name.IsEmpty())
}

func TestYAMLRoundTrip(t *testing.T) {
	s, err := From[[16]byte]("hello world")
	require.NoError(t, err)

	data, err := yaml.Marshal(&s)
	require.NoError(t, err)

	var out String[[16]byte]
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.True(t, out.Equal(&s))
}

func TestYAMLDecodeTooLong(t *testing.T) {
	var out labelRecord
	err := yaml.Unmarshal([]byte("name: far too long for nine bytes\n"), &out)
	var lenErr *LengthError
	require.ErrorAs(t, err, &lenErr)
	require.Equal(t, 9, lenErr.Cap)
}

func TestCBORRoundTrip(t *testing.T) {
	s, err := From[[9]byte]("1234 abcd")
	require.NoError(t, err)

	data, err := cbor.Marshal(&s)
	require.NoError(t, err)

	var out String[[9]byte]
	require.NoError(t, cbor.Unmarshal(data, &out))
	require.True(t, out.Equal(&s))
}

func TestCBORDecodeByteString(t *testing.T) {
	data, err := cbor.Marshal([]byte("hi"))
	require.NoError(t, err)

	var out String[[4]byte]
	require.NoError(t, cbor.Unmarshal(data, &out))
	require.Equal(t, "hi", out.View())
}

func TestCBORDecodeInvalidBytes(t *testing.T) {
	data, err := cbor.Marshal([]byte{0xff, 0xfe})
	require.NoError(t, err)

	var out String[[4]byte]
	err = cbor.Unmarshal(data, &out)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestCBORDecodeWrongType(t *testing.T) {
	data, err := cbor.Marshal(42)
	require.NoError(t, err)

	var out String[[4]byte]
	err = cbor.Unmarshal(data, &out)
	require.ErrorContains(t, err, "cannot decode")
}

func TestTOMLDecode(t *testing.T) {
	var out labelRecord
	require.NoError(t, toml.Unmarshal([]byte(`name = "prod"`), &out))
	require.Equal(t, "prod", out.Name.View())
}

func TestTOMLDecodeTooLong(t *testing.T) {
	var out labelRecord
	err := toml.Unmarshal([]byte(`name = "overcapacity"`), &out)
	require.Error(t, err)
	require.ErrorContains(t, err, "invalid length 12")
}
