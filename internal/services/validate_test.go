package services

import (
	"errors"
	"strings"
	"testing"
)

func TestValidMSISDN_LengthBoundaries(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"9627901234", false},        // 10 digits, too short
		{"96279012345", true},        // 11 digits, lower bound
		{"962790123456789", true},    // 15 digits, upper bound
		{"9627901234567890", false},  // 16 digits, too long
		{"96279O12345", false},       // letter O, not a digit
		{"+96279012345", false},      // plus sign not allowed
		{"962 79012345", false},      // embedded space
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidMSISDN(tc.in); got != tc.want {
			t.Fatalf("ValidMSISDN(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateCallRecord_OK(t *testing.T) {
	if err := ValidateCallRecord("96279111111", "96279222222", "local", 60); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Case-insensitive call type and zero duration are both acceptable.
	if err := ValidateCallRecord("96279111111", "96279222222", "LOCAL", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateCallRecord_SameParty(t *testing.T) {
	err := ValidateCallRecord("96279111111", "96279111111", "local", 60)
	if !errors.Is(err, ErrSameParty) {
		t.Fatalf("err = %v, want ErrSameParty", err)
	}
}

func TestValidateCallRecord_SamePartyCheckedBeforeFormat(t *testing.T) {
	// Two identical invalid MSISDNs still report the same-party violation.
	err := ValidateCallRecord("123", "123", "local", 60)
	if !errors.Is(err, ErrSameParty) {
		t.Fatalf("err = %v, want ErrSameParty", err)
	}
}

func TestValidateCallRecord_InvalidMSISDN(t *testing.T) {
	if err := ValidateCallRecord("123", "96279222222", "local", 60); !errors.Is(err, ErrInvalidMSISDN) {
		t.Fatalf("caller err = %v, want ErrInvalidMSISDN", err)
	}
	if err := ValidateCallRecord("96279111111", "abc", "local", 60); !errors.Is(err, ErrInvalidMSISDN) {
		t.Fatalf("receiver err = %v, want ErrInvalidMSISDN", err)
	}
}

func TestValidateCallRecord_InvalidCallType(t *testing.T) {
	err := ValidateCallRecord("96279111111", "96279222222", "satellite", 60)
	if !errors.Is(err, ErrInvalidCallType) {
		t.Fatalf("err = %v, want ErrInvalidCallType", err)
	}
}

func TestValidateCallRecord_NegativeDuration(t *testing.T) {
	err := ValidateCallRecord("96279111111", "96279222222", "local", -1)
	if !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("err = %v, want ErrNegativeDuration", err)
	}
}

func TestValidateUser(t *testing.T) {
	if err := ValidateUser("Lina", "96279111111"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateUser("Lina", "123"); !errors.Is(err, ErrInvalidMSISDN) {
		t.Fatalf("err = %v, want ErrInvalidMSISDN", err)
	}
	if err := ValidateUser("", "96279111111"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("err = %v, want ErrEmptyName", err)
	}
	if err := ValidateUser(strings.Repeat(" ", 4), "96279111111"); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("whitespace name err = %v, want ErrEmptyName", err)
	}
}
