package usecase

import (
	"fmt"
	"strings"

	"github.com/precoscan/backend/internal/domain"
	"github.com/shopspring/decimal"
)

const currencyPrefix = "R$"

// ParsePrice converts a Brazilian locale-formatted price string such as
// "R$ 1.709,05" into an exact decimal value.
//
// When the string contains a comma, every "." is treated as a thousands
// separator and removed, and the comma becomes the decimal point. Without
// a comma, "." characters are left untouched, so "1.709" parses as 1.709
// rather than 1709. That second branch reproduces the behavior observed
// in production data and is pinned by tests; callers feeding this dot-only
// thousands notation get the small value.
//
// A failed parse is reported through domain.ErrUnparsablePrice and never
// conflated with a zero price.
func ParsePrice(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty input", domain.ErrUnparsablePrice)
	}

	cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, currencyPrefix))

	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", domain.ErrUnparsablePrice, raw)
	}

	if value.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative value in %q", domain.ErrUnparsablePrice, raw)
	}

	return value, nil
}

// FormatBRL renders a non-negative decimal in Brazilian currency notation:
// "R$ 1.709,05". Always two fraction digits, "." grouping thousands.
func FormatBRL(value decimal.Decimal) string {
	fixed := value.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return currencyPrefix + " " + strings.Join(groups, ".") + "," + fracPart
}
