package utils

import "testing"

func TestIsValidQuery(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"cat", true},
		{"ice cream", true},
		{"café", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"ca\x00t", false},
		{"\x1b[31mred", false},
	}

	for _, tc := range testCases {
		if got := IsValidQuery(tc.input); got != tc.expected {
			t.Errorf("IsValidQuery(%q) = %v; want %v", tc.input, got, tc.expected)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-9876543: "-9,876,543",
	}

	for n, expected := range testCases {
		if got := FormatWithCommas(n); got != expected {
			t.Errorf("FormatWithCommas(%d) = %q; want %q", n, got, expected)
		}
	}
}
