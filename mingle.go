package gofurigana

import (
	"strings"
)

// DefaultReadingSep separates combined readings produced by MingleReadings.
const DefaultReadingSep = ", "

// MingleReadings merges several furigana notations of the same sentence
// into one, with alternative readings of each token joined by sep (the
// empty string selects DefaultReadingSep).
//
//	MingleReadings([]string{"辛[から]い", "辛[つら]い"}, "") == " 辛[から, つら]い"
//
// The notations must split into the same number of tokens. When they do
// not, merging positionwise is unsafe and the first notation is returned
// unchanged with ok set to false.
func MingleReadings(notations []string, sep string) (merged string, ok bool) {
	if sep == "" {
		sep = DefaultReadingSep
	}
	if len(notations) == 0 {
		return "", false
	}
	if len(notations) == 1 {
		return notations[0], true
	}

	split := make([][]string, len(notations))
	for i, notation := range notations {
		split[i] = WhitespaceSplit(notation)
	}
	for _, tokens := range split[1:] {
		if len(tokens) != len(split[0]) {
			return notations[0], false
		}
	}

	var b strings.Builder
	for i, token := range split[0] {
		first := DecomposeWord(token)

		var readings []string
		seen := make(map[string]bool, len(split))
		for _, tokens := range split {
			part := DecomposeWord(tokens[i])
			if !seen[part.Reading] {
				seen[part.Reading] = true
				readings = append(readings, part.Reading)
			}
		}

		combined := strings.Join(readings, sep)
		if combined == first.Head {
			b.WriteString(first.Head)
		} else {
			b.WriteString(" ")
			b.WriteString(first.Head)
			b.WriteString("[")
			b.WriteString(combined)
			b.WriteString("]")
			b.WriteString(first.Suffix)
		}
	}
	return b.String(), true
}
