package gofurigana

import (
	"errors"
)

// ErrNoSharedSuffix reports that a headword and its reading share no
// common trailing kana run, so no stem boundary can be located.
var ErrNoSharedSuffix = errors.New("headword and reading share no common suffix")

// ReadingAligner derives the reading of an inflected surface form from a
// dictionary headword and the headword's reading.
type ReadingAligner struct {
	kana KanaConverter
}

// NewReadingAligner returns an aligner that compares characters through
// the given converter. Pass nil for the default katakana fold, which
// only equates the two kana scripts; recognizing a kanji-bearing
// headword as its own reading needs a converter that resolves kanji,
// such as KagomeKanaConverter.
func NewReadingAligner(kana KanaConverter) *ReadingAligner {
	if kana == nil {
		kana = KanaConverterFunc(FoldToKatakana)
	}
	return &ReadingAligner{kana: kana}
}

// AdjustReading computes the reading of raw, a possibly conjugated form
// of headword. The shared stem of headword and headwordReading is found
// by walking both from their ends; the result keeps the reading's stem
// and appends raw's own trailing inflection, so surface irregularities
// in raw survive. Folded comparison never leaks into the output.
func (a *ReadingAligner) AdjustReading(raw, headword, headwordReading string) (string, error) {
	if a.kana.ToKatakana(headword) == a.kana.ToKatakana(headwordReading) {
		// The headword is already its own reading.
		return raw, nil
	}
	if a.kana.ToKatakana(headword) == a.kana.ToKatakana(raw) {
		// Unconjugated headword.
		return headwordReading, nil
	}

	hw := []rune(headword)
	hr := []rune(headwordReading)
	i, j := len(hw), len(hr)
	for i > 0 && j > 0 && a.kana.ToKatakana(string(hw[i-1])) == a.kana.ToKatakana(string(hr[j-1])) {
		i--
		j--
	}
	if i == len(hw) {
		return "", ErrNoSharedSuffix
	}

	rawRunes := []rune(raw)
	var tail string
	if i < len(rawRunes) {
		tail = string(rawRunes[i:])
	}
	return string(hr[:j]) + tail, nil
}
