package timescale

import "testing"

func TestPixelTimeRoundTrip(t *testing.T) {
	s := Scale(DefaultPixelsPerSecond)
	if got := s.TimeToPixels(2.5); got != 250 {
		t.Fatalf("TimeToPixels(2.5): got %v, want 250", got)
	}
	if got := s.PixelsToTime(250); got != 2.5 {
		t.Fatalf("PixelsToTime(250): got %v, want 2.5", got)
	}
}

func TestClampTime(t *testing.T) {
	cases := []struct {
		t, lo, hi, want float64
	}{
		{-1, 0, 60, 0},
		{150, 0, 60, 60},
		{30, 0, 60, 30},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		if got := ClampTime(c.t, c.lo, c.hi); got != c.want {
			t.Fatalf("ClampTime(%v, %v, %v): got %v, want %v", c.t, c.lo, c.hi, got, c.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		sec  float64
		want string
	}{
		{0, "0:00"},
		{9.7, "0:09"},
		{59.9, "0:59"},
		{65, "1:05"},
		{-3, "0:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.sec); got != c.want {
			t.Fatalf("FormatClock(%v): got %q, want %q", c.sec, got, c.want)
		}
	}
}
