package promotion

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Number holds a model-supplied numeric field as JSON text. Quoted numbers
// are unquoted; any other value is kept exactly as it arrived.
type Number string

func NumberOf(v float64) Number {
	return Number(strconv.FormatFloat(v, 'f', -1, 64))
}

// Float64 reports the value when the field holds a JSON number.
func (n Number) Float64() (float64, bool) {
	if !isNumberLiteral(string(n)) {
		return 0, false
	}
	v, err := strconv.ParseFloat(string(n), 64)
	return v, err == nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	return []byte(n), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s = strings.TrimSpace(s); isNumberLiteral(s) {
			*n = Number(s)
			return nil
		}
	}
	*n = Number(data)
	return nil
}

func isNumberLiteral(s string) bool {
	if s == "" || (s[0] != '-' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	return json.Valid([]byte(s))
}

// Text holds a model-supplied text field. Non-string scalars keep their JSON
// spelling, so 7 becomes "7".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(data)
	return nil
}

func (t Text) String() string {
	return string(t)
}
