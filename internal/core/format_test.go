package core

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.4, "0"},
		{0.5, "1"},
		{59.6, "60"},
		{999, "999"},
		{999.4, "999"},
		{1000, "1k"},
		{1049, "1k"},
		{1050, "1.1k"},
		{1500, "1.5k"},
		{12345, "12.3k"},
		{-0.2, "0"},
		{-2.5, "-2"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
