package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Measure is a numeric value derived from a text field.
// A value that could not be parsed is NaN, so every comparison against it is false.
type Measure float64

// Missing returns the not-a-number sentinel
func Missing() Measure {
	return Measure(math.NaN())
}

// Valid reports whether the measure holds a parsed number
func (m Measure) Valid() bool {
	return !math.IsNaN(float64(m))
}

// Float64 returns the raw value (NaN when missing)
func (m Measure) Float64() float64 {
	return float64(m)
}

// Below reports m < limit; false when m is missing
func (m Measure) Below(limit float64) bool {
	return float64(m) < limit
}

// Above reports m > limit; false when m is missing
func (m Measure) Above(limit float64) bool {
	return float64(m) > limit
}

// String formats the measure for tabular output; missing values render empty
func (m Measure) String() string {
	if !m.Valid() {
		return ""
	}
	return strconv.FormatFloat(float64(m), 'f', -1, 64)
}

// MarshalJSON encodes missing values as null
func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid() || math.IsInf(float64(m), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

// UnmarshalJSON decodes null as the missing sentinel
func (m *Measure) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Missing()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*m = Measure(f)
	return nil
}
