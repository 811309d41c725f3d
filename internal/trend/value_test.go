package trend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValueKinds(t *testing.T) {
	cases := []struct {
		raw    string
		kind   ValueKind
		amount float64
		symbol string
	}{
		{"42", PlainNumber, 42, ""},
		{" 7.5 ", PlainNumber, 7.5, ""},
		{"12,543", FormattedInteger, 12543, ""},
		{"1,234,567", FormattedInteger, 1234567, ""},
		{"$1,234,567", Currency, 1234567, "$"},
		{"₹8.2L", Currency, 820000, "₹"},
		{"₹1.5Cr", Currency, 15000000, "₹"},
		{"94%", Percentage, 94, "%"},
		{"2.3k", PlainNumber, 2300, ""},
		{"-12", PlainNumber, -12, ""},
		{"12 members", PlainNumber, 12, ""},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			value, err := ParseValue(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, value.Kind)
			assert.InDelta(t, tc.amount, value.Number(), 1e-6)
			assert.Equal(t, tc.symbol, value.Symbol)
			assert.Equal(t, tc.raw, value.Raw)
		})
	}
}

func TestParseValueRejectsText(t *testing.T) {
	for _, raw := range []string{"", "n/a", "₹", "%"} {
		_, err := ParseValue(raw)
		assert.ErrorIs(t, err, ErrUnparseableValue, raw)
	}
}

func TestParseGrowthRate(t *testing.T) {
	rate, err := ParseGrowthRate("+8 this month")
	require.NoError(t, err)
	assert.InDelta(t, 0.08, rate, 1e-12)

	rate, err = ParseGrowthRate("+32% MTD")
	require.NoError(t, err)
	assert.InDelta(t, 0.32, rate, 1e-12)

	rate, err = ParseGrowthRate("-15 today")
	require.NoError(t, err)
	assert.InDelta(t, -0.15, rate, 1e-12)

	rate, err = ParseGrowthRate("")
	require.NoError(t, err)
	assert.Zero(t, rate)

	_, err = ParseGrowthRate("no change")
	assert.ErrorIs(t, err, ErrMalformedGrowth)
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "currency", Currency.String())
	assert.Equal(t, "percentage", Percentage.String())
	assert.Equal(t, "formatted_integer", FormattedInteger.String())
	assert.Equal(t, "plain_number", PlainNumber.String())
}
