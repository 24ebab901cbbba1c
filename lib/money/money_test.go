// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package money

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		cents Centavos
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"whole reais", 2000, "R$ 20,00"},
		{"with cents", 2050, "R$ 20,50"},
		{"single centavo", 1, "R$ 0,01"},
		{"thousands grouping", 123456, "R$ 1.234,56"},
		{"millions grouping", 123456789, "R$ 1.234.567,89"},
		{"negative", -100, "-R$ 1,00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cents.String(); got != tt.want {
				t.Errorf("Centavos(%d).String() = %q, want %q", tt.cents, got, tt.want)
			}
		})
	}
}

func TestFromReais(t *testing.T) {
	tests := []struct {
		reais float64
		want  Centavos
	}{
		{20, 2000},
		{20.5, 2050},
		{0.1, 10},
		{19.99, 1999},
		{-1.5, -150},
	}
	for _, tt := range tests {
		if got := FromReais(tt.reais); got != tt.want {
			t.Errorf("FromReais(%v) = %d, want %d", tt.reais, got, tt.want)
		}
	}
}

func TestMul(t *testing.T) {
	if got := Centavos(2050).Mul(3); got != 6150 {
		t.Errorf("Mul(3) = %d, want 6150", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Centavos
		wantErr bool
	}{
		{"20,50", 2050, false},
		{"20.50", 2050, false},
		{"R$ 20,50", 2050, false},
		{"1.234,56", 123456, false},
		{"20", 2000, false},
		{"20,5", 2050, false},
		{"-1,00", -100, false},
		{"", 0, true},
		{"abc", 0, true},
		{"R$", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %d", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, cents := range []Centavos{0, 1, 99, 100, 2050, 123456} {
		parsed, err := Parse(cents.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", cents.String(), err)
		}
		if parsed != cents {
			t.Errorf("round trip %d -> %q -> %d", cents, cents.String(), parsed)
		}
	}
}
