package views

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatting(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"money grouped", Money(decimal.NewFromInt(93_660_000)), "$93,660,000"},
		{"money rounds", Money(decimal.RequireFromString("1234.6")), "$1,235"},
		{"millions", Millions(537.4), "$537.4M"},
		{"count", Count(15420), "15,420"},
		{"percent", Percent(decimal.RequireFromString("0.0001")), "0.0100%"},
		{"probability", ProbabilityPercent(0.00089), "0.0890%"},
		{"tca", TCA(time.Date(2025, 11, 22, 18, 45, 0, 0, time.UTC)), "2025-11-22 18:45 UTC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}
