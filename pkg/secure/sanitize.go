package secure

import (
	"regexp"
	"strings"
)

var xssPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`),
	regexp.MustCompile(`(?is)<object[^>]*>.*?</object>`),
	regexp.MustCompile(`(?i)<embed[^>]*>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
}

// Sanitize strips the usual XSS vectors from free-text input and collapses
// runs of whitespace.
func Sanitize(value string) string {
	for _, re := range xssPatterns {
		value = re.ReplaceAllString(value, "")
	}
	return strings.Join(strings.Fields(value), " ")
}
