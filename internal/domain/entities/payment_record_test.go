package entities

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		want     bool
	}{
		{PaymentStatusPending, PaymentStatusCompleted, true},
		{PaymentStatusPending, PaymentStatusFailed, true},
		{PaymentStatusPending, PaymentStatusPending, false},
		{PaymentStatusCompleted, PaymentStatusFailed, false},
		{PaymentStatusFailed, PaymentStatusCompleted, false},
		{PaymentStatusCompleted, PaymentStatusCompleted, false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParsePaymentCategory(t *testing.T) {
	if got := ParsePaymentCategory(" Tithe "); got != PaymentCategoryTithe {
		t.Fatalf("expected tithe, got %q", got)
	}
	if got := ParsePaymentCategory("CAMPAIGN"); got != PaymentCategoryCampaign {
		t.Fatalf("expected campaign, got %q", got)
	}
	if got := ParsePaymentCategory("thanksgiving"); got != "thanksgiving" {
		t.Fatalf("expected unknown category kept, got %q", got)
	}
}

func TestPhoneDigits(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0712345678", "0712345678", true},
		{"+254 712 345 678", "254712345678", true},
		{"254-712-345-678", "254712345678", true},
		{"712345678", "712345678", true},
		{"(0712) 345678", "0712345678", true},
		{"12345", "", false},
		{"07123456789012", "", false},
		{"07abc45678", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := PhoneDigits(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("PhoneDigits(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNormalizeMSISDN(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"0712345678", "254712345678", true},
		{"+254 712 345 678", "254712345678", true},
		{"712345678", "254712345678", true},
		{"0110 123 456", "254110123456", true},
		{"+1 555 123 4567", "", false},
		{"15551234567", "", false},
		{"+44 7911 123456", "", false},
		{"2547123456", "", false},
		{"12345", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeMSISDN(tc.in, DefaultCountryCode)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("NormalizeMSISDN(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
