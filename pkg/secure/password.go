package secure

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	passwordMinLength = 10
	passwordMaxLength = 128
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)

	commonPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^password$`),
		regexp.MustCompile(`(?i)^123456`),
		regexp.MustCompile(`(?i)^qwerty`),
		regexp.MustCompile(`(?i)^abc123`),
		regexp.MustCompile(`(?i)^letmein`),
		regexp.MustCompile(`(?i)^welcome`),
		regexp.MustCompile(`(?i)^admin`),
		regexp.MustCompile(`(?i)^login`),
		regexp.MustCompile(`(?i)^test`),
	}
)

// hasRepeatRun reports whether s contains a run of more than max identical
// consecutive runes. Spelled out as a scan since RE2 has no backreferences.
func hasRepeatRun(s string, max int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run > max {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// ValidatePassword enforces the account password policy: length bounds,
// character classes, no long repeated runs, nothing guessable, and nothing
// derived from the user's own identifiers.
func ValidatePassword(password string, userInfo ...string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("password must contain at least %d characters", passwordMinLength)
	}
	if len(password) > passwordMaxLength {
		return fmt.Errorf("password cannot exceed %d characters", passwordMaxLength)
	}
	if !upperRe.MatchString(password) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return errors.New("password must contain at least one digit")
	}
	if !specialRe.MatchString(password) {
		return errors.New(`password must contain at least one special character (!@#$%^&*(),.?":{}|<>)`)
	}
	if hasRepeatRun(password, 3) {
		return errors.New("password cannot contain more than 3 identical consecutive characters")
	}
	for _, re := range commonPatterns {
		if re.MatchString(password) {
			return errors.New("password is too common or predictable")
		}
	}

	lower := strings.ToLower(password)
	for _, info := range userInfo {
		if info == "" {
			continue
		}
		// Email local parts count as identifiers too.
		if at := strings.IndexByte(info, '@'); at > 0 {
			info = info[:at]
		}
		if len(info) >= 3 && strings.Contains(lower, strings.ToLower(info)) {
			return errors.New("password cannot be based on your personal information")
		}
	}
	return nil
}
