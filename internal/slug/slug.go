// Package slug converts between course (title, id) pairs and the URL path segment used for course
// detail pages.
//
// A slug is the normalized title followed by the course id:
//
//	Encode("Intro to Java", "1700000000000-ab12cd34e") == "intro-to-java-1700000000000-ab12cd34e"
//
// Decode recovers the id by taking the last two hyphen-separated parts, which only works for ids with
// exactly one internal hyphen (see models.NewCourseID). Any other id shape decodes to the wrong value
// without an error; callers see that as an ordinary missing course.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const separator = "-"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Letters that carry no combining mark under NFD, spelled out the way a reader would.
var letterFolds = strings.NewReplacer(
	"&", " and ",
	"ß", "ss",
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH",
)

// Normalize lowercases title, folds accented letters to ASCII and spells "&" as "and". Every run of
// other characters becomes a single hyphen, and hyphens are trimmed from both ends.
func Normalize(title string) string {
	title = letterFolds.Replace(title)
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		folded = title
	}

	s := strings.ToLower(folded)
	s = nonAlphanumeric.ReplaceAllString(s, separator)
	return strings.Trim(s, separator)
}

// Encode returns the slug for a course.
func Encode(title, id string) string {
	return Normalize(title) + separator + id
}

// Decode returns the course id embedded in slug. Slugs with fewer than three parts are returned
// unchanged.
func Decode(slug string) string {
	parts := strings.Split(slug, separator)
	if len(parts) < 3 {
		return slug
	}
	return strings.Join(parts[len(parts)-2:], separator)
}
