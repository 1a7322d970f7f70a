//go:build unit

package pricing_test

import (
	"testing"

	"pricewatch/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	parser := pricing.NewParser(nil)

	testCases := []struct {
		name   string
		input  string
		kind   pricing.Kind
		amount string
	}{
		{name: "plain comma decimal", input: "59,99", kind: pricing.KindAmount, amount: "59.99"},
		{name: "thousands grouping", input: "1.299,50", kind: pricing.KindAmount, amount: "1299.50"},
		{name: "integer price", input: "250", kind: pricing.KindAmount, amount: "250"},
		{name: "surrounding whitespace", input: "  39,99 ", kind: pricing.KindAmount, amount: "39.99"},
		{name: "numeric zero is an amount", input: "0,00", kind: pricing.KindAmount, amount: "0"},
		{name: "free token", input: "Ücretsiz", kind: pricing.KindZeroCost},
		{name: "included token inside sentence", input: "Oyuna dahil", kind: pricing.KindZeroCost},
		{name: "not available token", input: "N/A", kind: pricing.KindZeroCost},
		{name: "empty string", input: "", kind: pricing.KindUnparsable},
		{name: "blank string", input: "   ", kind: pricing.KindUnparsable},
		{name: "non numeric residue", input: "tba", kind: pricing.KindUnparsable},
		{name: "currency symbol breaks parse", input: "₺59,99", kind: pricing.KindUnparsable},
		{name: "multiple decimal commas", input: "12,34,56", kind: pricing.KindUnparsable},
		{name: "negative amount", input: "-5,00", kind: pricing.KindUnparsable},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := parser.Parse(tc.input)

			assert.Equal(t, tc.kind, p.Kind())
			switch tc.kind {
			case pricing.KindAmount:
				require.True(t, p.Comparable())
				expected, err := decimal.NewFromString(tc.amount)
				require.NoError(t, err)
				assert.True(t, expected.Equal(p.Amount()), "expected %s, got %s", expected, p.Amount())
			case pricing.KindZeroCost:
				require.True(t, p.Comparable())
				assert.True(t, p.Amount().IsZero())
				assert.True(t, p.IsZeroCost())
			case pricing.KindUnparsable:
				assert.False(t, p.Comparable())
			}
		})
	}
}

func TestParser_CustomZeroTokens(t *testing.T) {
	parser := pricing.NewParser([]string{"free", "included"})

	assert.Equal(t, pricing.KindZeroCost, parser.Parse("Free to play").Kind())
	// the default Turkish token is no longer configured
	assert.Equal(t, pricing.KindUnparsable, parser.Parse("Ücretsiz").Kind())
}

func TestParser_CanonicalRoundTrip(t *testing.T) {
	parser := pricing.NewParser(nil)

	for _, input := range []string{"59,99", "1.299,50", "0,00", "250", "10,5"} {
		first := parser.Parse(input)
		require.True(t, first.Comparable(), "input %q", input)

		second := parser.Parse(first.Canonical())
		require.True(t, second.Comparable(), "canonical of %q", input)
		assert.True(t, first.Amount().Equal(second.Amount()),
			"canonical round trip of %q: %s != %s", input, first.Amount(), second.Amount())
	}
}
