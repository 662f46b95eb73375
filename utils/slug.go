package utils

import (
	"regexp"
	"strings"
)

var (
	accentReplacer = strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a", "ä", "a",
		"é", "e", "ê", "e", "è", "e", "ë", "e",
		"í", "i", "î", "i", "ì", "i", "ï", "i",
		"ó", "o", "ô", "o", "õ", "o", "ò", "o", "ö", "o",
		"ú", "u", "û", "u", "ù", "u", "ü", "u",
		"ç", "c", "ñ", "n",
	)
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns a title into a URL-safe slug, flattening the accented
// characters common in Portuguese titles.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = accentReplacer.Replace(s)
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
