package seo

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxSlugLength bounds the slug part of an SEO URL.
const MaxSlugLength = 60

// emptySlug replaces a title that normalises to nothing.
const emptySlug = "listing"

// cyrillic maps lowercase Ukrainian and Russian letters to Latin.
// Soft and hard signs are dropped.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d",
	'е': "e", 'є': "ye", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "y",
	'і': "i", 'ї': "yi", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh",
	'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya",
}

var (
	disallowedChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
	hyphenRuns      = regexp.MustCompile(`-+`)
)

// Transliterate rewrites Cyrillic letters in s as Latin, leaving every other rune untouched.
// Uppercase letters keep their case on the first Latin letter: "Київ" -> "Kyyiv", "Щука" -> "Shchuka".
func Transliterate(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		lower := unicode.ToLower(r)

		latin, ok := cyrillic[lower]
		if !ok {
			b.WriteRune(r)

			continue
		}

		if lower != r && latin != "" {
			first, size := utf8.DecodeRuneInString(latin)
			b.WriteRune(unicode.ToUpper(first))
			b.WriteString(latin[size:])

			continue
		}

		b.WriteString(latin)
	}

	return b.String()
}

// Slugify turns a listing title into a lowercase, hyphen-separated ASCII slug
// of at most MaxSlugLength characters with no leading or trailing hyphen.
func Slugify(title string) string {
	slug := strings.ToLower(Transliterate(title))
	slug = disallowedChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = strings.TrimRight(slug[:MaxSlugLength], "-")
	}

	if slug == "" {
		return emptySlug
	}

	return slug
}
