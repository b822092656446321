package bundle

import "testing"

func TestEncodeVLQ(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "A"},
		{1, "C"},
		{-1, "D"},
		{2, "E"},
		{-2, "F"},
		{15, "e"},
		{16, "gB"},
		{-16, "hB"},
		{123, "2H"},
		{1000, "w+B"},
	}

	for _, tt := range tests {
		if got := encodeVLQ(tt.in); got != tt.want {
			t.Errorf("encodeVLQ(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeVLQ_RoundTripSigns(t *testing.T) {
	for _, v := range []int{0, 1, -1, 31, -31, 32, -32, 4096, -4096} {
		enc := encodeVLQ(v)
		if enc == "" {
			t.Fatalf("encodeVLQ(%d) produced empty encoding", v)
		}
		// Sign pairs must differ everywhere except zero.
		if v != 0 && enc == encodeVLQ(-v) {
			t.Errorf("encodeVLQ(%d) == encodeVLQ(%d)", v, -v)
		}
	}
}
