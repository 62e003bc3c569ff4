package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Price is a listing or booking amount. Browser clients send it either as a
// JSON number or as the raw text of a form input, so both are accepted.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0

		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return errors.Wrap(err, "price")
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*p = 0

			return nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errors.Errorf("price: %q is not a number", raw)
		}
		if !isFinite(v) {
			return errors.Errorf("price: %q is not a finite number", raw)
		}
		*p = Price(v)

		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "price")
	}
	if !isFinite(v) {
		return errors.New("price: not a finite number")
	}
	*p = Price(v)

	return nil
}

// NaN and the infinities have no JSON encoding.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
