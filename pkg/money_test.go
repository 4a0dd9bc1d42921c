package pkg

import (
	"errors"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		centavos int64
		want     string
	}{
		{0, "R$ 0,00"},
		{1, "R$ 0,01"},
		{100, "R$ 1,00"},
		{123456, "R$ 1.234,56"},
		{100000000, "R$ 1.000.000,00"},
		{-123456, "-R$ 1.234,56"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.centavos); got != c.want {
			t.Fatalf("FormatCurrency(%d) = %q, want %q", c.centavos, got, c.want)
		}
	}
}

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"R$ 1.234,56", 123456},
		{"1234,56", 123456},
		{"R$ 10", 1000},
		{"-R$ 0,01", -1},
		{" R$  2,50 ", 250},
	}
	for _, c := range cases {
		got, err := ParseCurrency(c.in)
		if err != nil {
			t.Fatalf("ParseCurrency(%q): unexpected error %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseCurrency(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseCurrencyInvalid(t *testing.T) {
	for _, in := range []string{"", "R$", "R$ 1,5", "R$ 1,234", "abc"} {
		if _, err := ParseCurrency(in); !errors.Is(err, ErrValorMonetarioInvalido) {
			t.Fatalf("ParseCurrency(%q): expected ErrValorMonetarioInvalido, got %v", in, err)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, centavos := range []int64{0, 1, 99, 100, 12345, 123456, 99999999, -1, -123456} {
		got, err := ParseCurrency(FormatCurrency(centavos))
		if err != nil {
			t.Fatalf("round trip %d: unexpected error %v", centavos, err)
		}
		if got != centavos {
			t.Fatalf("round trip %d: got %d", centavos, got)
		}
	}
}

func TestFormatPercentual(t *testing.T) {
	cases := []struct {
		bp   int64
		want string
	}{
		{0, "0.00%"},
		{600, "6.00%"},
		{1550, "15.50%"},
		{10000, "100.00%"},
	}
	for _, c := range cases {
		if got := FormatPercentual(c.bp); got != c.want {
			t.Fatalf("FormatPercentual(%d) = %q, want %q", c.bp, got, c.want)
		}
	}
}
