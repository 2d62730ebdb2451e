package gofurigana

import (
	"github.com/msnoigrs/gofurigana/accent"
)

// LookupPronunciations returns the accent-marked pronunciation variants
// of expr. The expression is tried as written first; when that misses
// and a converter is given, its derived katakana reading is tried, which
// lets conjugated or mixed-script input reach the katakana-form keys.
func LookupPronunciations(dict *accent.Dictionary, kana KanaConverter, expr string) []accent.Pitch {
	if pitches := dict.Lookup(expr); len(pitches) > 0 {
		return pitches
	}
	if kana == nil {
		return nil
	}
	katakana := kana.ToKatakana(expr)
	if katakana == expr {
		return nil
	}
	return dict.Lookup(katakana)
}
