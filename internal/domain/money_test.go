package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSafeParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid integer", "100", "100"},
		{"valid decimal", "3.14", "3.14"},
		{"zero", "0", "0"},
		{"negative", "-5.5", "-5.5"},
		{"empty string", "", "0"},
		{"invalid string", "abc", "0"},
		{"whitespace", "  ", "0"},
		{"large amount", "999999999999.99", "999999999999.99"},
		{"sub-cent fraction", "0.001", "0.001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeParse(tt.input)
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("SafeParse(%q) = %s, want %s", tt.input, got, want)
			}
		})
	}
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"normal", "10", "5", "2"},
		{"division by zero", "10", "0", "0"},
		{"zero numerator", "0", "5", "0"},
		{"negative", "-10", "4", "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafeDiv(SafeParse(tt.a), SafeParse(tt.b))
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("SafeDiv(%s, %s) = %s, want %s", tt.a, tt.b, got, want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		ratePct string
		want    string
	}{
		{"broker commission", "200000", "3.57", "7140"},
		{"zero rate", "200000", "0", "0"},
		{"invalid rate", "200000", "abc", "0"},
		{"fractional base", "1234.56", "10", "123.456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percent(SafeParse(tt.base), tt.ratePct)
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Percent(%s, %q) = %s, want %s", tt.base, tt.ratePct, got, want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name    string
		gain    string
		capital string
		want    string
	}{
		{"ten percent", "10800", "100000", "10.8"},
		{"zero capital", "10800", "0", "0"},
		{"negative capital", "10800", "-5", "0"},
		{"negative gain", "-1200", "100000", "-1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(SafeParse(tt.gain), SafeParse(tt.capital))
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("Ratio(%s, %s) = %s, want %s", tt.gain, tt.capital, got, want)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "900", "900.00"},
		{"truncates to cents", "10.005", "10.01"},
		{"half away from zero negative", "-10.005", "-10.01"},
		{"already two places", "123.45", "123.45"},
		{"rounds down", "1.004", "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney(SafeParse(tt.input)); got != tt.want {
				t.Errorf("FormatMoney(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundUnit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"round up", "99.5", "100"},
		{"round down", "99.4", "99"},
		{"negative half away", "-99.5", "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundUnit(SafeParse(tt.input))
			want, _ := decimal.NewFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("RoundUnit(%s) = %s, want %s", tt.input, got, want)
			}
		})
	}
}
