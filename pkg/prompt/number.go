package prompt

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNumber = errors.New("not a whole number")
	ErrInvalidAmount = errors.New("not a valid amount")
)

func ParseID(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return n, nil
}

// ParseAmount parses a money amount exactly. A comma decimal separator is accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
