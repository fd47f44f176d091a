package sanitizer

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToUpper converts the string to uppercase using Unicode case mapping.
func ToUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// ToLower converts the string to lowercase using Unicode case mapping.
func ToLower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// UpperFirst uppercases only the first character: "naMe" -> "NaMe".
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

// LowerFirst lowercases only the first character: "Name" -> "name".
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(fn(r)) + s[size:]
}

// ToCamelCase joins words into camelCase: "user name" -> "userName".
// The first word character is lowercased, the first character of every
// later word is uppercased, whitespace is dropped and everything else is
// kept as written.
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevWord := false
	for i, r := range s {
		word := isWordChar(r)
		switch {
		case word && i == 0:
			b.WriteRune(unicode.ToLower(r))
		case word && !prevWord:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsSpace(r):
		default:
			b.WriteRune(r)
		}
		prevWord = word
	}

	return b.String()
}

func isWordChar(r rune) bool {
	return r == '_' || (r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)))
}

// ReplaceSpaces replaces every whitespace character with sep.
func ReplaceSpaces(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteString(sep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RemoveSpaces removes all whitespace, including inner spaces.
func RemoveSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ReplacePattern replaces every match of pattern with repl. An invalid
// pattern leaves the string untouched.
func ReplacePattern(s, pattern, repl string) string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return s
	}
	return re.ReplaceAllString(s, repl)
}

// Crop keeps the first n UTF-16 code units, the unit used for lengths.
func Crop(s string, n int) string {
	if n <= 0 {
		return ""
	}
	units := utf16.Encode([]rune(s))
	if len(units) <= n {
		return s
	}
	return string(utf16.Decode(units[:n]))
}

// EscapeHTML converts HTML special characters into entities.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// UnescapeHTML converts entities back into characters.
func UnescapeHTML(s string) string {
	return html.UnescapeString(s)
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	moneyPrinter = message.NewPrinter(language.English)
)

// Money formats a number as a money figure with two decimals and
// thousands grouping: "1000" -> "1,000.00", "2.5" -> "2.50".
// Existing commas are dropped first. Values without a leading number are
// returned unchanged.
func Money(s string) string {
	clean := strings.TrimLeftFunc(strings.ReplaceAll(s, ",", ""), unicode.IsSpace)
	num := leadingFloat.FindString(clean)
	if num == "" {
		return s
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(f, 0) {
		return s
	}
	return moneyPrinter.Sprintf("%.2f", f)
}

var plainNumber = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,2})?$`)

// RoundMode selects the rounding direction for Round.
type RoundMode string

const (
	RoundNearest RoundMode = ""
	RoundUp      RoundMode = "up"
	RoundDown    RoundMode = "down"
)

// Round rounds a plain numeric string. Anything that is not a plain
// number is returned unchanged.
func Round(s string, mode RoundMode) string {
	if !plainNumber.MatchString(s) {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	switch mode {
	case RoundUp:
		f = math.Ceil(f)
	case RoundDown:
		f = math.Floor(f)
	default:
		f = math.Floor(f + 0.5)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
