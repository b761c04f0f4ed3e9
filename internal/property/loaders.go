package property

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Loader decodes a stored cty value into a semantic Go type. Loaders are
// pure functions: they either produce a value or explain why the stored
// representation does not have the expected shape. They never substitute
// defaults and never mutate anything.
type Loader[T any] func(cty.Value) (T, error)

// Float64 returns a loader for scalar float64 values.
func Float64() Loader[float64] {
	return func(v cty.Value) (float64, error) {
		conv, err := toType(v, cty.Number)
		if err != nil {
			return 0, err
		}
		f, _ := conv.AsBigFloat().Float64()
		return f, nil
	}
}

// Int64 returns a loader for integral values. Fractional numbers are
// rejected rather than rounded.
func Int64() Loader[int64] {
	return func(v cty.Value) (int64, error) {
		conv, err := toType(v, cty.Number)
		if err != nil {
			return 0, err
		}
		var n int64
		if err := gocty.FromCtyValue(conv, &n); err != nil {
			return 0, fmt.Errorf("expected an integer: %w", err)
		}
		return n, nil
	}
}

// Bool returns a loader for boolean values.
func Bool() Loader[bool] {
	return func(v cty.Value) (bool, error) {
		conv, err := toType(v, cty.Bool)
		if err != nil {
			return false, err
		}
		return conv.True(), nil
	}
}

// String returns a loader for string values.
func String() Loader[string] {
	return func(v cty.Value) (string, error) {
		conv, err := toType(v, cty.String)
		if err != nil {
			return "", err
		}
		return conv.AsString(), nil
	}
}

// Float64x3 returns a loader for 3-component float64 vectors. The stored
// value must be an iterable of exactly three number-convertible elements;
// shorter or longer sequences fail, they are never truncated or padded.
func Float64x3() Loader[[3]float64] {
	scalar := Float64()
	return func(v cty.Value) ([3]float64, error) {
		var out [3]float64
		if v.IsNull() || !v.CanIterateElements() {
			return out, fmt.Errorf("cannot read %s as a 3-component vector", v.Type().FriendlyName())
		}
		if n := v.LengthInt(); n != 3 {
			return out, fmt.Errorf("expected exactly 3 vector components, got %d", n)
		}
		i := 0
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			f, err := scalar(ev)
			if err != nil {
				return out, fmt.Errorf("vector component %d: %w", i, err)
			}
			out[i] = f
			i++
		}
		return out, nil
	}
}

// toType converts a stored value to the wanted primitive type, normalizing
// null and conversion failures into a single error shape.
func toType(v cty.Value, want cty.Type) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, fmt.Errorf("value is null, expected %s", want.FriendlyName())
	}
	conv, err := convert.Convert(v, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("cannot convert %s to %s: %w", v.Type().FriendlyName(), want.FriendlyName(), err)
	}
	return conv, nil
}
