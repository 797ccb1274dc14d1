package tinystr

import (
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// The wire form of a String is simply its text: no envelope, no length
// prefix. MarshalText/UnmarshalText carry that form for encoding/json,
// BurntSushi/toml and anything else that honors encoding.TextMarshaler;
// the YAML and CBOR methods express the same rule for codecs with their
// own interfaces.

// MarshalText implements encoding.TextMarshaler.
func (s *String[A]) MarshalText() ([]byte, error) {
	return []byte(s.View()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Text longer than
// the capacity fails with a *LengthError; the receiver is untouched on
// failure.
func (s *String[A]) UnmarshalText(text []byte) error {
	if !utf8.Valid(text) {
		return ErrInvalidUTF8
	}
	v, err := From[A](string(text))
	if err != nil {
		return &LengthError{Len: len(text), Cap: Cap[A]()}
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting a plain scalar.
func (s *String[A]) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *String[A]) UnmarshalYAML(node *yaml.Node) error {
	var t string
	if err := node.Decode(&t); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(t))
}

// MarshalCBOR implements cbor.Marshaler, emitting a CBOR text string.
func (s *String[A]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.View())
}

// UnmarshalCBOR implements cbor.Unmarshaler. Both text strings and byte
// strings are accepted; byte strings are additionally UTF-8 checked.
func (s *String[A]) UnmarshalCBOR(data []byte) error {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		return s.UnmarshalText([]byte(t))
	case []byte:
		return s.UnmarshalText(t)
	default:
		return fmt.Errorf("tinystr: cannot decode %T into a string", v)
	}
}
