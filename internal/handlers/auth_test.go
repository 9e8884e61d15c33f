package handlers

import "testing"

func TestSafeNext(t *testing.T) {
	cases := []struct {
		next string
		want string
	}{
		{"", "/"},
		{"/bookings", "/bookings"},
		{"/bookings?page=2", "/bookings?page=2"},
		{"//evil.example/path", "/"},
		{"/\\evil.example", "/"},
		{"https://evil.example", "/"},
		{"bookings", "/"},
	}

	for _, tc := range cases {
		if got := safeNext(tc.next); got != tc.want {
			t.Errorf("safeNext(%q) = %q, want %q", tc.next, got, tc.want)
		}
	}
}
