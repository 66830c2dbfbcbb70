package fixedstr

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingTerminator reports a binary frame whose final byte is not the
// terminator.
var ErrMissingTerminator = errors.New("fixedstr: frame is not NUL-terminated")

// MarshalText returns the content bytes. Together with UnmarshalText it lets
// String fields ride through text-based codecs (YAML, JSON) unchanged.
func (s String) MarshalText() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalText replaces s with a String deduced from text, the same path a
// literal construction takes. It never fails.
func (s *String) UnmarshalText(text []byte) error {
	*s = New(string(text))
	return nil
}

// MarshalYAML emits the content as a YAML scalar.
func (s String) MarshalYAML() (any, error) {
	return s.String(), nil
}

// UnmarshalYAML decodes a YAML scalar through the literal construction path.
// yaml.v3 does not consult TextUnmarshaler on decode, hence the explicit
// interface.
func (s *String) UnmarshalYAML(value *yaml.Node) error {
	var str string
	if err := value.Decode(&str); err != nil {
		return err
	}
	*s = New(str)
	return nil
}

// MarshalBinary returns the terminator-ended buffer.
func (s String) MarshalBinary() ([]byte, error) {
	return []byte(s.CStr()), nil
}

// UnmarshalBinary decodes a frame produced by MarshalBinary. A frame that is
// empty or does not end in the terminator is malformed external input, not a
// caller precondition, so it reports ErrMissingTerminator instead of going
// through the diagnostic facility.
func (s *String) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || data[len(data)-1] != Terminator {
		return ErrMissingTerminator
	}
	if len(data) == 1 {
		*s = String{}
		return nil
	}
	*s = String{raw: string(data)}
	return nil
}
