// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

// Package money handles kiosk prices as integer centavos.
//
// The API speaks decimal reais (20.5 means R$ 20,50). Parsing converts
// to centavos immediately so arithmetic on subtotals and report totals
// never touches floating point beyond the wire boundary.
package money

import (
	"fmt"
	"math"
	"strings"
)

// Centavos is a monetary amount in hundredths of a real.
type Centavos int64

// FromReais converts a decimal amount from the wire into centavos,
// rounding half away from zero.
func FromReais(reais float64) Centavos {
	return Centavos(math.Round(reais * 100))
}

// Reais returns the amount as decimal reais for request payloads.
func (c Centavos) Reais() float64 {
	return float64(c) / 100
}

// Mul returns the amount multiplied by an item quantity.
func (c Centavos) Mul(quantity int) Centavos {
	return c * Centavos(quantity)
}

// String formats the amount in Brazilian convention: "R$ 1.234,56".
// Negative amounts render as "-R$ 1,00".
func (c Centavos) String() string {
	value := int64(c)
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	whole := value / 100
	cents := value % 100

	return fmt.Sprintf("%sR$ %s,%02d", sign, groupThousands(whole), cents)
}

// groupThousands renders a non-negative integer with "." separators
// every three digits, pt-BR style.
func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Parse reads an amount typed by the user. Accepts both pt-BR decimal
// commas ("20,50") and plain decimal points ("20.50"), with an optional
// "R$" prefix. Returns an error for anything else.
func Parse(input string) (Centavos, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	// "1.234,56" — strip grouping dots, comma is the decimal mark.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	var whole, frac int64
	var fracDigits int
	dot := strings.IndexByte(s, '.')
	wholePart := s
	fracPart := ""
	if dot >= 0 {
		wholePart = s[:dot]
		fracPart = s[dot+1:]
	}
	if wholePart == "" && fracPart == "" {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	for _, r := range wholePart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", input)
		}
		whole = whole*10 + int64(r-'0')
	}
	for _, r := range fracPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid amount %q", input)
		}
		if fracDigits < 2 {
			frac = frac*10 + int64(r-'0')
			fracDigits++
		}
	}
	if fracDigits == 1 {
		frac *= 10
	}

	cents := whole*100 + frac
	if negative {
		cents = -cents
	}
	return Centavos(cents), nil
}
