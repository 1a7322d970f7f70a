package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind classifies a parsed price token.
type Kind int

const (
	// KindUnparsable marks text that produced no usable amount.
	// Unparsable prices are excluded from every comparison.
	KindUnparsable Kind = iota
	// KindAmount is a regular non-negative amount.
	KindAmount
	// KindZeroCost marks free/bundled/unavailable-for-purchase tokens.
	// Distinct from a numeric zero obtained by parsing "0,00".
	KindZeroCost
)

// Price is the result of normalizing one raw price token.
type Price struct {
	kind   Kind
	amount decimal.Decimal
}

func (p Price) Kind() Kind { return p.kind }

// Comparable reports whether the price may participate in comparisons.
func (p Price) Comparable() bool { return p.kind != KindUnparsable }

func (p Price) IsZeroCost() bool { return p.kind == KindZeroCost }

func (p Price) Amount() decimal.Decimal { return p.amount }

// Canonical renders the amount back in the source locale convention
// (comma decimal separator, no grouping). Parsing the canonical form
// yields the same value.
func (p Price) Canonical() string {
	return strings.ReplaceAll(p.amount.String(), ".", ",")
}

func Unparsable() Price { return Price{kind: KindUnparsable} }

func ZeroCost() Price { return Price{kind: KindZeroCost} }

func Amount(d decimal.Decimal) Price { return Price{kind: KindAmount, amount: d} }

// DefaultZeroCostTokens matches the upstream store's free/included/demo
// labels. The exact membership is a product decision; inject a different
// set through NewParser where needed.
var DefaultZeroCostTokens = []string{"ücretsiz", "dahil", "oyna", "indir", "n/a"}

// Parser normalizes locale-formatted price text: "." is thousands
// grouping, "," is the decimal separator ("1.299,50" -> 1299.50).
type Parser struct {
	zeroTokens []string
}

func NewParser(zeroTokens []string) *Parser {
	if len(zeroTokens) == 0 {
		zeroTokens = DefaultZeroCostTokens
	}
	lowered := make([]string, len(zeroTokens))
	for i, tok := range zeroTokens {
		lowered[i] = strings.ToLower(strings.TrimSpace(tok))
	}
	return &Parser{zeroTokens: lowered}
}

// Parse never fails: malformed input comes back as an unparsable Price.
func (p *Parser) Parse(raw string) Price {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return Unparsable()
	}

	for _, tok := range p.zeroTokens {
		if tok != "" && strings.Contains(text, tok) {
			return ZeroCost()
		}
	}

	cleaned := strings.ReplaceAll(text, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return Unparsable()
	}
	return Amount(d)
}
