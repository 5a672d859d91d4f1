package apierr

import (
	"errors"
	"testing"
)

func TestStorage_NilPassthrough(t *testing.T) {
	if err := Storage("create patient", nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStorage_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("list rooms", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive errors.Is")
	}
}

func TestDate(t *testing.T) {
	if err := Date("dob", "1990-04-12"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if err := Date("dob", ""); err == nil {
		t.Fatal("empty date accepted")
	}
	for _, bad := range []string{"12-04-1990", "1990/04/12", "yesterday", "1990-13-01"} {
		if err := Date("dob", bad); err == nil {
			t.Errorf("malformed date accepted: %q", bad)
		}
	}
}

func TestOptionalDate(t *testing.T) {
	if err := OptionalDate("dob", ""); err != nil {
		t.Fatalf("empty optional date rejected: %v", err)
	}
	if err := OptionalDate("dob", "not-a-date"); err == nil {
		t.Fatal("malformed optional date accepted")
	}
}

func TestClock(t *testing.T) {
	if err := Clock("appointmentTime", "09:30"); err != nil {
		t.Fatalf("valid time rejected: %v", err)
	}
	for _, bad := range []string{"", "9:30am", "25:00", "09-30"} {
		if err := Clock("appointmentTime", bad); err == nil {
			t.Errorf("malformed time accepted: %q", bad)
		}
	}
}
