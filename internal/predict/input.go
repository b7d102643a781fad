package predict

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// ParseFeatures reads the three inputs from a decoded JSON body. Numbers and
// numeric strings are accepted; bhk and bath are truncated to integers.
// Booleans, NaN and infinities are rejected, and counts must lie in
// [0, math.MaxInt32].
func ParseFeatures(body map[string]any) (Features, error) {
	var f Features

	raw, err := field(body, "total_sqft")
	if err != nil {
		return f, err
	}
	if f.TotalSqft, err = toFloat(raw); err != nil {
		return f, fmt.Errorf("total_sqft must be numeric: %v", raw)
	}

	if raw, err = field(body, "bhk"); err != nil {
		return f, err
	}
	if f.BHK, err = toCount(raw); err != nil {
		return f, fmt.Errorf("bhk %w: %v", err, raw)
	}

	if raw, err = field(body, "bath"); err != nil {
		return f, err
	}
	if f.Bath, err = toCount(raw); err != nil {
		return f, fmt.Errorf("bath %w: %v", err, raw)
	}

	return f, nil
}

var (
	errNotNumeric = errors.New("must be numeric")
	errOutOfRange = fmt.Errorf("must be between 0 and %d", math.MaxInt32)
)

func field(body map[string]any, name string) (any, error) {
	v, ok := body[name]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing field: %s", name)
	}
	return v, nil
}

func toFloat(v any) (float64, error) {
	if _, ok := v.(bool); ok {
		return 0, errNotNumeric
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumeric
	}
	return f, nil
}

func toCount(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > math.MaxInt32 {
		return 0, errOutOfRange
	}
	return int(f), nil
}
