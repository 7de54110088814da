package metrics

import "encoding/json"

// Value is a metric that may be undefined for a given input (for example a
// coefficient of variation with zero expected loss, or a 1-in-200-year loss
// with fewer than 200 simulated years). An unavailable Value is a distinct
// state carrying the reason, never a NaN or a zero masquerading as a
// result.
type Value struct {
	Value     float64
	Available bool
	Reason    string
}

// Defined returns an available metric value.
func Defined(v float64) Value {
	return Value{Value: v, Available: true}
}

// Undefined returns an unavailable metric value with the reason it could
// not be computed.
func Undefined(reason string) Value {
	return Value{Reason: reason}
}

// MarshalJSON renders an available value as {"available":true,"value":v}
// and an unavailable one as {"available":false,"reason":"..."}, so clients
// can never confuse "computed zero" with "not computable".
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Available {
		return json.Marshal(struct {
			Available bool    `json:"available"`
			Value     float64 `json:"value"`
		}{true, v.Value})
	}
	return json.Marshal(struct {
		Available bool   `json:"available"`
		Reason    string `json:"reason"`
	}{false, v.Reason})
}

// UnmarshalJSON restores a Value written by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw struct {
		Available bool    `json:"available"`
		Value     float64 `json:"value"`
		Reason    string  `json:"reason"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = Value{Value: raw.Value, Available: raw.Available, Reason: raw.Reason}
	return nil
}
