// Package jsonfield extracts typed values from fields of parsed JSON
// objects. Binary values are expected as hex strings, with or without a
// 0x prefix. Missing or malformed fields are reported as errors; no
// decoder substitutes default values.
package jsonfield

import (
	"encoding/json"
	"fmt"

	"github.com/Fantom-foundation/Carmen-logs/go/common"
)

const (
	ErrNotAnObject    = common.ConstError("JSON value is not an object")
	ErrMissingField   = common.ConstError("missing JSON field")
	ErrMalformedField = common.ConstError("malformed JSON field")
)

// Object is a parsed JSON object whose field values are not yet decoded.
type Object map[string]json.RawMessage

// ParseObject parses the given JSON value, which must be an object.
func ParseObject(value json.RawMessage) (Object, error) {
	var res Object
	if err := json.Unmarshal(value, &res); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnObject, err)
	}
	// A JSON null unmarshals into a nil map without error.
	if res == nil {
		return nil, ErrNotAnObject
	}
	return res, nil
}

// Address decodes a 20 byte address from the named field.
func Address(obj Object, field string) (common.Address, error) {
	var res common.Address
	if err := fixedBytes(obj, field, res[:]); err != nil {
		return common.Address{}, err
	}
	return res, nil
}

// Hash decodes a 32 byte hash from the named field.
func Hash(obj Object, field string) (common.Hash, error) {
	var res common.Hash
	if err := fixedBytes(obj, field, res[:]); err != nil {
		return common.Hash{}, err
	}
	return res, nil
}

// Hashes decodes an array of 32 byte hashes from the named field. An
// empty array yields an empty, non-nil slice.
func Hashes(obj Object, field string) ([]common.Hash, error) {
	raw, err := lookup(obj, field)
	if err != nil {
		return nil, err
	}
	var strs []string
	if err := json.Unmarshal(raw, &strs); err != nil || strs == nil {
		return nil, fmt.Errorf("%w %q: expected array of hex strings", ErrMalformedField, field)
	}
	res := make([]common.Hash, len(strs))
	for i, str := range strs {
		if err := common.DecodeFixedHex(str, res[i][:]); err != nil {
			return nil, fmt.Errorf("%w %q[%d]: %v", ErrMalformedField, field, i, err)
		}
	}
	return res, nil
}

// Bytes decodes a byte string of arbitrary length from the named field.
func Bytes(obj Object, field string) ([]byte, error) {
	str, err := hexString(obj, field)
	if err != nil {
		return nil, err
	}
	res, err := common.DecodeHex(str)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrMalformedField, field, err)
	}
	return res, nil
}

func lookup(obj Object, field string) (json.RawMessage, error) {
	raw, found := obj[field]
	if !found {
		return nil, fmt.Errorf("%w %q", ErrMissingField, field)
	}
	return raw, nil
}

func hexString(obj Object, field string) (string, error) {
	raw, err := lookup(obj, field)
	if err != nil {
		return "", err
	}
	var str *string
	if err := json.Unmarshal(raw, &str); err != nil || str == nil {
		return "", fmt.Errorf("%w %q: expected hex string", ErrMalformedField, field)
	}
	return *str, nil
}

func fixedBytes(obj Object, field string, dst []byte) error {
	str, err := hexString(obj, field)
	if err != nil {
		return err
	}
	if err := common.DecodeFixedHex(str, dst); err != nil {
		return fmt.Errorf("%w %q: %v", ErrMalformedField, field, err)
	}
	return nil
}
