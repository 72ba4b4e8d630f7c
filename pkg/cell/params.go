package cell

import (
	"encoding/json"
	"fmt"
	"math"
)

// Params holds the configuration decoded from an element's params attribute.
// Values carry the dynamic types the codec produced; for the default JSON
// codec these are string, float64, bool, []any, map[string]any and nil.
type Params map[string]any

// String returns the string value for key. The second result is false when
// the key is absent or holds a non-string value.
func (p Params) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Int returns the integer value for key. JSON numbers arrive as float64, so
// integral floats convert; fractional values report false.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case float64:
		if math.Trunc(v) == v {
			return int(v), true
		}
	}
	return 0, false
}

// Float returns the numeric value for key.
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Bool returns the boolean value for key.
func (p Params) Bool(key string) (bool, bool) {
	b, ok := p[key].(bool)
	return b, ok
}

// ParamsCodec decodes the raw params attribute into Params. The codec runs
// once per instance, at construction; reloads never re-decode.
type ParamsCodec interface {
	Decode(raw []byte) (Params, error)
}

// JSONCodec is the default params codec. The attribute must hold a JSON
// object; an empty attribute or JSON null decodes to empty Params.
type JSONCodec struct{}

// Decode parses raw as a JSON object.
func (JSONCodec) Decode(raw []byte) (Params, error) {
	if len(raw) == 0 {
		return Params{}, nil
	}
	var p Params
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p == nil {
		return Params{}, nil
	}
	return p, nil
}

// DefaultCodec is the codec reconcilers use unless Options.Codec overrides it.
var DefaultCodec ParamsCodec = JSONCodec{}

// decodeParams guards against codecs that return nil maps without an error.
func decodeParams(codec ParamsCodec, raw []byte) (Params, error) {
	p, err := codec.Decode(raw)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("codec returned nil params")
	}
	return p, nil
}
