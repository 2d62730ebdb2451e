package gofurigana

import (
	"errors"
	"testing"
)

func TestAdjustReading(t *testing.T) {
	aligner := NewReadingAligner(nil)
	cases := []struct {
		raw, headword, reading string
		want                   string
	}{
		{"跪いた", "跪く", "ひざまずく", "ひざまずいた"},
		{"安くなかった", "安い", "やすい", "やすくなかった"},
		{"繋りたい", "繋る", "つながる", "つながりたい"},
		{"やり遂げさせられない", "やり遂げる", "やりとげる", "やりとげさせられない"},
		{"死ん", "死ぬ", "しぬ", "しん"},
		{"たべた", "たべる", "たべる", "たべた"},
		{"カタカナ", "カタカナ", "かたかな", "カタカナ"},
	}
	for _, c := range cases {
		got, err := aligner.AdjustReading(c.raw, c.headword, c.reading)
		if err != nil {
			t.Errorf("(%s, %s, %s): %s", c.raw, c.headword, c.reading, err)
			continue
		}
		if got != c.want {
			t.Errorf("(%s, %s, %s): invalid result. want = %s, got = %s",
				c.raw, c.headword, c.reading, c.want, got)
		}
	}
}

func TestAdjustReading_KanjiHeadword(t *testing.T) {
	// 言い方 is its own reading, but the katakana fold cannot see that: it
	// leaves the kanji alone and 言イ方 never matches イイカタ. Resolving
	// the identity takes a converter that reads kanji.
	conv, err := NewKagomeKanaConverter()
	if err != nil {
		t.Fatal(err)
	}
	aligner := NewReadingAligner(conv)
	got, err := aligner.AdjustReading("言い方", "言い方", "いいかた")
	if err != nil {
		t.Fatal(err)
	}
	if got != "言い方" {
		t.Errorf("invalid result. want = 言い方, got = %s", got)
	}
}

func TestAdjustReading_NoSharedSuffix(t *testing.T) {
	aligner := NewReadingAligner(nil)
	_, err := aligner.AdjustReading("書いた", "書く", "よむ")
	if !errors.Is(err, ErrNoSharedSuffix) {
		t.Errorf("invalid error. want = %v, got = %v", ErrNoSharedSuffix, err)
	}
}

func TestAdjustReading_CustomConverter(t *testing.T) {
	// An identity converter no longer equates カタカナ with かたかな, so
	// the word is taken for an unconjugated headword instead of its own
	// reading.
	aligner := NewReadingAligner(KanaConverterFunc(func(s string) string { return s }))
	got, err := aligner.AdjustReading("カタカナ", "カタカナ", "かたかな")
	if err != nil {
		t.Fatal(err)
	}
	if got != "かたかな" {
		t.Errorf("invalid result. want = かたかな, got = %s", got)
	}
}
