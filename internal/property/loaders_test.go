package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestFloat64Loader(t *testing.T) {
	t.Parallel()

	load := Float64()

	v, err := load(cty.NumberFloatVal(1.25))
	require.NoError(t, err)
	assert.Equal(t, 1.25, v)

	// cty converts numeric strings; that is a representation detail, not a
	// semantic mismatch, so it succeeds.
	v, err = load(cty.StringVal("2.5"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)

	_, err = load(cty.StringVal("not a number"))
	require.Error(t, err)

	_, err = load(cty.NullVal(cty.Number))
	require.Error(t, err)
}

func TestInt64Loader(t *testing.T) {
	t.Parallel()

	load := Int64()

	v, err := load(cty.NumberIntVal(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	// Fractional values are rejected rather than rounded.
	_, err = load(cty.NumberFloatVal(1.5))
	require.Error(t, err)
}

func TestBoolLoader(t *testing.T) {
	t.Parallel()

	load := Bool()

	v, err := load(cty.True)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = load(cty.NumberIntVal(1))
	require.Error(t, err, "numbers do not convert to bool")
}

func TestStringLoader(t *testing.T) {
	t.Parallel()

	load := String()

	v, err := load(cty.StringVal("uv0"))
	require.NoError(t, err)
	assert.Equal(t, "uv0", v)

	_, err = load(cty.ListVal([]cty.Value{cty.StringVal("x")}))
	require.Error(t, err)
}

func TestFloat64x3Loader(t *testing.T) {
	t.Parallel()

	load := Float64x3()

	testCases := []struct {
		name     string
		value    cty.Value
		expected [3]float64
		wantErr  bool
	}{
		{
			name:     "tuple of three numbers",
			value:    cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3)}),
			expected: [3]float64{1, 2, 3},
		},
		{
			name:     "list of three numbers",
			value:    cty.ListVal([]cty.Value{cty.NumberFloatVal(0.5), cty.NumberFloatVal(0.5), cty.NumberFloatVal(0.5)}),
			expected: [3]float64{0.5, 0.5, 0.5},
		},
		{
			name:    "two components is not silently padded",
			value:   cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberIntVal(2)}),
			wantErr: true,
		},
		{
			name: "four components is not silently truncated",
			value: cty.TupleVal([]cty.Value{
				cty.NumberIntVal(1), cty.NumberIntVal(2), cty.NumberIntVal(3), cty.NumberIntVal(4),
			}),
			wantErr: true,
		},
		{
			name:    "scalar is not a vector",
			value:   cty.NumberFloatVal(1.0),
			wantErr: true,
		},
		{
			name:    "non-numeric component",
			value:   cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.StringVal("x"), cty.NumberIntVal(3)}),
			wantErr: true,
		},
		{
			name:    "null value",
			value:   cty.NullVal(cty.List(cty.Number)),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := load(tc.value)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}
