package slug

import (
	"regexp"
	"strings"
)

// transliteration maps Cyrillic letters to Latin. Hard and soft signs have
// no entry and are stripped after lowercasing.
var transliteration = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ы': "y", 'э': "e", 'ю': "yu", 'я': "ya",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "H", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Sch",
	'Ы': "Y", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
}

var (
	disallowedRe = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRunRe  = regexp.MustCompile(`-{2,}`)
)

// Transliterate replaces Cyrillic letters with their Latin spelling and
// leaves every other character untouched.
func Transliterate(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		if latin, ok := transliteration[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Slug turns a display name into a lowercase [a-z0-9-] identifier.
// The result is empty when nothing in text survives normalization.
func Slug(text string) string {
	s := Transliterate(text)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = disallowedRe.ReplaceAllString(s, "")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
