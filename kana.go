package gofurigana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// KanaConverter folds text into one canonical kana script. The fold is
// used for comparison only, never for output.
type KanaConverter interface {
	ToKatakana(text string) string
}

// KanaConverterFunc adapts a plain function to the KanaConverter interface.
type KanaConverterFunc func(text string) string

func (f KanaConverterFunc) ToKatakana(text string) string {
	return f(text)
}

func isHiragana(r rune) bool {
	return r >= 'ぁ' && r <= 'ゖ'
}

func isKatakana(r rune) bool {
	return r >= 'ァ' && r <= 'ヺ'
}

func isHalfwidthKatakana(r rune) bool {
	return r >= 'ｧ' && r <= 'ﾝ'
}

// IsKana reports whether r belongs to the Hiragana, Katakana or
// half-width Katakana blocks.
func IsKana(r rune) bool {
	return isHiragana(r) || isKatakana(r) || isHalfwidthKatakana(r)
}

// ContainsKana reports whether s contains at least one kana rune.
func ContainsKana(s string) bool {
	for _, r := range s {
		if IsKana(r) {
			return true
		}
	}
	return false
}

// FoldToKatakana converts hiragana and half-width katakana in text to
// full-width katakana. Runes of other scripts pass through unchanged.
func FoldToKatakana(text string) string {
	var b strings.Builder
	for _, r := range norm.NFKC.String(text) {
		if isHiragana(r) {
			r += 'ァ' - 'ぁ'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldToHiragana converts katakana in text to hiragana. The long vowel
// mark and ヷ through ヺ have no hiragana counterpart and pass through.
func FoldToHiragana(text string) string {
	var b strings.Builder
	for _, r := range norm.NFKC.String(text) {
		if r >= 'ァ' && r <= 'ヶ' {
			r -= 'ァ' - 'ぁ'
		}
		b.WriteRune(r)
	}
	return b.String()
}
