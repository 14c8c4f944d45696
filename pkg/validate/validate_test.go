package validate

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestEmail(t *testing.T) {
	cases := map[string]bool{
		"donor@example.com":   true,
		"a.b+c@sub.domain.uk": true,
		"no-at-sign.com":      false,
		"two@@example.com":    false,
		"missing@tld":         false,
		"spa ce@example.com":  false,
		"":                    false,
	}
	for in, want := range cases {
		if got := Email(in); got != want {
			t.Errorf("Email(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestStrongPassword(t *testing.T) {
	cases := map[string]bool{
		"password1": true,
		"abc12345":  true,
		"short1":    false,
		"password":  false,
		"12345678":  false,
		"":          false,
	}
	for in, want := range cases {
		if got := StrongPassword(in); got != want {
			t.Errorf("StrongPassword(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Jane.Doe@Example.COM "); got != "jane.doe@example.com" {
		t.Errorf("unexpected %q", got)
	}
}

func TestRegisterTags(t *testing.T) {
	v := validator.New()
	if err := RegisterTags(v); err != nil {
		t.Fatalf("RegisterTags failed: %v", err)
	}

	type form struct {
		Email    string `validate:"required,swemail"`
		Password string `validate:"required,strongpwd"`
	}

	if err := v.Struct(form{Email: "jane@example.com", Password: "secret123"}); err != nil {
		t.Errorf("expected valid form, got %v", err)
	}
	if err := v.Struct(form{Email: "jane", Password: "secret123"}); err == nil {
		t.Error("expected email rule to fail")
	}
	if err := v.Struct(form{Email: "jane@example.com", Password: "secret"}); err == nil {
		t.Error("expected password rule to fail")
	}
}
