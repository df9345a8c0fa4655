package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/x448/float16"

	"github.com/calvinalkan/h5fixture/pkg/h5type"
)

// member is one key of an orderedObject.
type member struct {
	key   string
	value any
}

// orderedObject marshals as a JSON object with keys in slice order.
type orderedObject []member

func (o orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(m.value)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", m.key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// encodeValue converts a generated value into its JSON form as the storage
// engine would name it: records become objects keyed by external field
// names, enums become their external variant name, text becomes a string
// and complex numbers become [re, im].
func encodeValue(d h5type.Descriptor, v any) (any, error) {
	switch d.Class {
	case h5type.ClassFloat:
		if f, ok := v.(float16.Float16); ok {
			return f.Float32(), nil
		}
	case h5type.ClassComplex:
		switch c := v.(type) {
		case h5type.Complex[float32]:
			return [2]float32{c.Re, c.Im}, nil
		case h5type.Complex[float64]:
			return [2]float64{c.Re, c.Im}, nil
		}
	case h5type.ClassEnum:
		e, ok := v.(h5type.EnumValue)
		if !ok {
			break
		}

		for _, variant := range d.Variants {
			if variant.Name == e.Name {
				return variant.ExternalName(), nil
			}
		}

		return nil, fmt.Errorf("%w: undeclared variant %s", h5type.ErrMismatch, e.Name)
	case h5type.ClassFixedASCII, h5type.ClassFixedASCIITerm, h5type.ClassFixedUnicode,
		h5type.ClassVarLenASCII, h5type.ClassVarLenUnicode:
		if s, ok := v.(fmt.Stringer); ok {
			return s.String(), nil
		}
	case h5type.ClassArray:
		if elems, ok := v.([]any); ok {
			return encodeElems(*d.Elem, elems)
		}
	case h5type.ClassVarLenArray:
		if elems, ok := v.(h5type.VarLenArray[any]); ok {
			return encodeElems(*d.Elem, elems)
		}
	case h5type.ClassTuple:
		t, ok := v.(h5type.Tuple)
		if !ok || len(t) != len(d.Fields) {
			break
		}

		out := make([]any, len(t))

		for i, f := range d.Fields {
			enc, err := encodeValue(f.Type, t[i])
			if err != nil {
				return nil, err
			}

			out[i] = enc
		}

		return out, nil
	case h5type.ClassRecord:
		r, ok := v.(h5type.Record)
		if !ok || len(r) != len(d.Fields) {
			break
		}

		obj := make(orderedObject, len(r))

		for i, f := range d.Fields {
			enc, err := encodeValue(f.Type, r[i].Value)
			if err != nil {
				return nil, err
			}

			obj[i] = member{key: f.ExternalName(), value: enc}
		}

		return obj, nil
	default:
		return v, nil
	}

	err := h5type.Check(d, v)
	if err != nil {
		return nil, err
	}

	return v, nil
}

func encodeElems(elem h5type.Descriptor, elems []any) ([]any, error) {
	out := make([]any, len(elems))

	for i, e := range elems {
		enc, err := encodeValue(elem, e)
		if err != nil {
			return nil, err
		}

		out[i] = enc
	}

	return out, nil
}

// marshalValue renders one generated value as a single JSON line.
func marshalValue(d h5type.Descriptor, v any) (string, error) {
	enc, err := encodeValue(d, v)
	if err != nil {
		return "", err
	}

	b, err := json.Marshal(enc)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
