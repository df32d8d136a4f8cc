package receiptmatcher

import "testing"

func TestTokenSetRatio(t *testing.T) {
	testCases := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{"identical", "YOGURT NATURALE", "YOGURT NATURALE", 100},
		{"word order ignored", "POLLO RISO", "RISO POLLO", 100},
		{"repetition ignored", "PASTA PASTA", "PASTA", 100},
		{"token subset scores full", "MELANZANE", "PASTA CON LE MELANZANE", 100},
		{"ocr damaged token still shared", "YOGURT NAURALE BIANCO", "YOGURT NATURALE", 100},
		{"empty side", "", "PASTA", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenSetRatio(tc.a, tc.b)
			if got != tc.expected {
				t.Errorf("tokenSetRatio(%q, %q) = %d, expected %d", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestTokenSetRatioUnrelatedStringsScoreLow(t *testing.T) {
	got := tokenSetRatio("DETERSIVO PIATTI", "YOGURT NATURALE")
	if got >= 50 {
		t.Errorf("Expected unrelated strings to score below 50, got %d", got)
	}
}

func TestCloseTokens(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected bool
	}{
		{"NAURALE", "NATURALE", true},
		{"BISCOTTI", "BISCOTTO", true},
		{"PERA", "PERE", false},
		{"BANANA", "PATATA", false},
	}

	for _, tc := range testCases {
		got := closeTokens(tc.a, tc.b)
		if got != tc.expected {
			t.Errorf("closeTokens(%q, %q) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestSeqRatio(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"PASTA", "PASTA", 100},
		{"PERE", "PERA", 75},
		{"", "PASTA", 0},
		{"ABC", "XYZ", 0},
	}

	for _, tc := range testCases {
		got := seqRatio(tc.a, tc.b)
		if got != tc.expected {
			t.Errorf("seqRatio(%q, %q) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}
