package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertMinutesToDuration(t *testing.T) {
	convert := func(minutes int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			if diff := cmp.Diff(want, ConvertMinutesToDuration(minutes)); diff != "" {
				t.Fatalf("ConvertMinutesToDuration(%d) mismatch (-want +got):\n%s", minutes, diff)
			}
		}
	}

	t.Run("hours_and_minutes", convert(125, "2h 5m"))
	t.Run("whole_hours", convert(120, "2h"))
	t.Run("minutes_only", convert(45, "45m"))
	t.Run("zero", convert(0, "0h"))
}

func TestConvertHourToDuration(t *testing.T) {
	convert := func(hours float64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			if diff := cmp.Diff(want, ConvertHourToDuration(hours)); diff != "" {
				t.Fatalf("ConvertHourToDuration(%v) mismatch (-want +got):\n%s", hours, diff)
			}
		}
	}

	t.Run("fractional", convert(2.5, "2h 30m"))
	t.Run("whole", convert(3, "3h"))
	t.Run("rounds_up", convert(1.999, "2h"))
}

func TestConvertDurationToMinutes(t *testing.T) {
	convert := func(duration string, want int64) func(t *testing.T) {
		return func(t *testing.T) {
			got := ConvertDurationToMinutes(duration)
			if got != want {
				t.Fatalf("ConvertDurationToMinutes(%q) = %d, want %d", duration, got, want)
			}
		}
	}

	t.Run("hours_and_minutes", convert("2h 30m", 150))
	t.Run("hours_only", convert("2h", 120))
}

func TestFormatCurrency(t *testing.T) {
	format := func(amount int64, currency, want string) func(t *testing.T) {
		return func(t *testing.T) {
			if diff := cmp.Diff(want, FormatCurrency(amount, currency)); diff != "" {
				t.Fatalf("FormatCurrency(%d, %q) mismatch (-want +got):\n%s", amount, currency, diff)
			}
		}
	}

	t.Run("idr_grouped", format(1250000, "IDR", "Rp1.250.000"))
	t.Run("idr_small", format(500, "IDR", "Rp500"))
	t.Run("usd", format(1500, "USD", "$1.500"))
	t.Run("unknown_currency", format(1000, "EUR", "EUR 1.000"))
	t.Run("negative", format(-2500, "IDR", "Rp-2.500"))
}
