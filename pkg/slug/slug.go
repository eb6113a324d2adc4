package slug

import "strings"

// translit maps Cyrillic letters to their Latin rendering. The table is fixed:
// letters absent from it (ъ, ь) are dropped rather than guessed.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "j", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "h", 'ц': "c", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ы': "y", 'э': "e", 'ю': "yu",
	'я': "ya", ' ': "-", '_': "-",
}

// Make converts a display name into a URL-safe lowercase slug.
// It is pure and total: any input yields a deterministic result, and an
// empty result is possible (the caller decides how to handle it).
func Make(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if mapped, ok := translit[r]; ok {
			b.WriteString(mapped)
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}
