package promotion

import (
	"bytes"
	"encoding/json"
	"strings"

	"pricing-panel/internal/pkg/errs"
)

var (
	ErrMalformedResponse = errs.New("model response is not valid scheme JSON")
	ErrNoSchemes         = errs.New("model response contains no schemes")
)

// ParseSchemes decodes the model output. A JSON array is returned as is, a
// single object becomes a one-element list. A surrounding markdown code fence
// is tolerated; any other text around the JSON is not. Field values are
// accepted whatever their JSON type, only array elements must be objects.
func ParseSchemes(raw string) ([]Scheme, error) {
	body := []byte(stripFence(raw))
	if len(body) == 0 {
		return nil, ErrMalformedResponse
	}

	var schemes []Scheme
	switch body[0] {
	case '[':
		if err := decodeStrict(body, &schemes); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode scheme array"), ErrMalformedResponse)
		}
	case '{':
		var one Scheme
		if err := decodeStrict(body, &one); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode scheme object"), ErrMalformedResponse)
		}
		schemes = []Scheme{one}
	default:
		return nil, ErrMalformedResponse
	}

	if len(schemes) == 0 {
		return nil, ErrNoSchemes
	}
	return schemes, nil
}

func decodeStrict(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errs.New("trailing data after JSON value")
	}
	return nil
}

func stripFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "[{") {
		s = s[nl+1:]
	}
	return strings.TrimSpace(s)
}
