package gofurigana

import (
	"strings"
)

// MultipleReadingSep separates alternative readings inside one bracket
// group, e.g. 前[まい・まえ・めえ].
const MultipleReadingSep = "・"

// SplitFurigana is one token of furigana notation split into its parts.
// Head + "[" + Reading + "]" + Suffix reconstructs the annotated token.
type SplitFurigana struct {
	Head    string
	Reading string
	Suffix  string

	furigana bool
}

func NewSplitFurigana(head, reading, suffix string) SplitFurigana {
	return SplitFurigana{Head: head, Reading: reading, Suffix: suffix, furigana: true}
}

// NoFurigana wraps text that carries no furigana annotation. Reading and
// Suffix are empty; the whole text is the head.
func NoFurigana(text string) SplitFurigana {
	return SplitFurigana{Head: text}
}

func (p SplitFurigana) HasFurigana() bool {
	return p.furigana
}

// WordReading is a word paired with its reading. An empty Reading means
// the word reads as written and there is no furigana to render.
type WordReading struct {
	Word    string
	Reading string
}

// FindHeadReadingSuffix locates the first bracket group in text and
// returns the three parts around it. Malformed brackets, including a
// bracket group at the very start, yield the NoFurigana variant.
func FindHeadReadingSuffix(text string) SplitFurigana {
	start, end := -1, -1
	for i, c := range text {
		if c == '[' {
			start = i
		}
		if c == ']' {
			end = i
			break
		}
	}
	if 0 < start && start < end {
		return NewSplitFurigana(text[:start], text[start+1:end], text[end+1:])
	}
	return NoFurigana(text)
}

// DecomposeWord walks sequential bracket groups in one token,
// concatenating heads and readings.
// "辛[から]い" == {Head: "辛", Reading: "から", Suffix: "い"}
// "南[みなみ]千[ち]秋[あき]" == {Head: "南千秋", Reading: "みなみちあき"}
// A trailing remainder without brackets becomes the suffix; a plain word
// contributes itself to both head and reading.
func DecomposeWord(text string) SplitFurigana {
	var head, reading, suffix strings.Builder
	for num := 0; text != ""; num++ {
		part := FindHeadReadingSuffix(text)
		if !part.HasFurigana() {
			if num > 0 {
				suffix.WriteString(part.Head)
			} else {
				head.WriteString(part.Head)
				reading.WriteString(part.Head)
			}
			break
		}
		head.WriteString(part.Head)
		reading.WriteString(part.Reading)
		text = part.Suffix
	}
	return NewSplitFurigana(head.String(), reading.String(), suffix.String())
}

// StripNonJpFurigana removes bracket groups that contain no kana rune.
// Such groups are annotations like footnote numbers, not furigana.
func StripNonJpFurigana(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i := 0; i < len(runes); {
		if runes[i] == '[' {
			if j := closingBracket(runes, i); j > i+1 && !ContainsKana(string(runes[i+1:j])) {
				i = j + 1
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// closingBracket returns the index of the ']' matching the non-nested
// group opened at runes[open], or -1.
func closingBracket(runes []rune, open int) int {
	for j := open + 1; j < len(runes); j++ {
		switch runes[j] {
		case '[':
			return -1
		case ']':
			return j
		}
	}
	return -1
}

func tieInsideFurigana(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i := 0; i < len(runes); {
		if runes[i] == '[' {
			if j := closingBracket(runes, i); j > i+1 {
				for _, c := range runes[i : j+1] {
					if c == ' ' {
						b.WriteString(MultipleReadingSep)
					} else {
						b.WriteRune(c)
					}
				}
				i = j + 1
				continue
			}
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

// WhitespaceSplit tokenizes furigana notation on whitespace. Spaces
// inside a bracket group separate alternative readings and are replaced
// with MultipleReadingSep instead of splitting the token.
func WhitespaceSplit(furiganaNotation string) []string {
	return strings.Fields(tieInsideFurigana(furiganaNotation))
}

// GetWordReading splits whole furigana notation into the plain word and
// its reading. When the computed reading equals the word verbatim there
// is nothing to annotate and the reading is left empty.
func GetWordReading(text string) WordReading {
	var word, reading strings.Builder
	for _, token := range WhitespaceSplit(text) {
		split := DecomposeWord(token)
		word.WriteString(split.Head)
		word.WriteString(split.Suffix)
		reading.WriteString(split.Reading)
		reading.WriteString(split.Suffix)
	}
	w, r := word.String(), reading.String()
	if r == "" || w == r {
		return WordReading{Word: text}
	}
	return WordReading{Word: w, Reading: r}
}
