package secure

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		userInfo []string
		wantErr  bool
	}{
		{"valid", "Str0ng&Secure!", nil, false},
		{"too short", "Ab1!short", nil, true},
		{"too long", "Ab1!" + strings.Repeat("x", 130), nil, true},
		{"no uppercase", "weak&pass123", nil, true},
		{"no lowercase", "WEAK&PASS123", nil, true},
		{"no digit", "Weak&Password", nil, true},
		{"no special", "WeakPassword1", nil, true},
		{"repeated run", "Aaaa1!bbbbCd", nil, true},
		{"three identical allowed", "Good&Pass111x", nil, false},
		{"run of four rejected", "Good&Pass1111", nil, true},
		{"common pattern", "Qwerty123!xx", nil, true},
		{"contains username", "X1!jdupont9$", []string{"jdupont"}, true},
		{"contains email local part", "X1!jdupont9$", []string{"jdupont@example.com"}, true},
		{"short user info ignored", "X1!abYz9$kw", []string{"ab"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password, tc.userInfo...)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidatePassword(%q) error = %v, wantErr %v", tc.password, err, tc.wantErr)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"<script>alert(1)</script>bonjour", "bonjour"},
		{"<iframe src=x></iframe>ok", "ok"},
		{"click javascript:alert(1)", "click alert(1)"},
		{`<img onerror=alert(1)>`, "<img alert(1)>"},
		{"  spaced\t\tout \n text ", "spaced out text"},
	}

	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
