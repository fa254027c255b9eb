package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON number or a numeric string ("49.99" and 49.99
// both yield 49.99). Clients send fees and prices in either form.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) Float64() float64 { return float64(f) }
