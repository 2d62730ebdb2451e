package gofurigana

import (
	"reflect"
	"testing"
)

func TestFindHeadReadingSuffix_Reconstruct(t *testing.T) {
	cases := []struct {
		head, reading, suffix string
	}{
		{"辛", "から", "い"},
		{"故郷", "こきょう", ""},
		{"有", "あ", "り"},
		{"前", "まい・まえ・めえ", ""},
	}
	for _, c := range cases {
		text := c.head + "[" + c.reading + "]" + c.suffix
		got := FindHeadReadingSuffix(text)
		if !got.HasFurigana() {
			t.Errorf("%s: expected furigana", text)
		}
		if got.Head != c.head || got.Reading != c.reading || got.Suffix != c.suffix {
			t.Errorf("%s: invalid result. want = (%s, %s, %s), got = (%s, %s, %s)",
				text, c.head, c.reading, c.suffix, got.Head, got.Reading, got.Suffix)
		}
	}
}

func TestFindHeadReadingSuffix_Malformed(t *testing.T) {
	for _, text := range []string{
		"辛から]い",
		"辛[からい",
		"辛]から[い",
		"[からい]",
		"ひらがな",
		"",
	} {
		got := FindHeadReadingSuffix(text)
		if got.HasFurigana() {
			t.Errorf("%s: expected no furigana, got = (%s, %s, %s)", text, got.Head, got.Reading, got.Suffix)
		}
		if got.Head != text || got.Reading != "" || got.Suffix != "" {
			t.Errorf("%s: invalid result. got = (%s, %s, %s)", text, got.Head, got.Reading, got.Suffix)
		}
	}
}

func TestDecomposeWord(t *testing.T) {
	cases := []struct {
		text                  string
		head, reading, suffix string
	}{
		{"故郷[こきょう]", "故郷", "こきょう", ""},
		{"有[あ]り", "有", "あ", "り"},
		{"ひらがな", "ひらがな", "ひらがな", ""},
		{"南[みなみ]千[ち]秋[あき]", "南千秋", "みなみちあき", ""},
	}
	for _, c := range cases {
		got := DecomposeWord(c.text)
		if got.Head != c.head || got.Reading != c.reading || got.Suffix != c.suffix {
			t.Errorf("%s: invalid result. want = (%s, %s, %s), got = (%s, %s, %s)",
				c.text, c.head, c.reading, c.suffix, got.Head, got.Reading, got.Suffix)
		}
	}
}

func TestStripNonJpFurigana(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"悪[わる][1223]い[2]", "悪[わる]い"},
		{"悪[わる]い", "悪[わる]い"},
		{"悪[ﾜﾙ]い", "悪[ﾜﾙ]い"},
		{"物語[ものがたり]", "物語[ものがたり]"},
	}
	for _, c := range cases {
		got := StripNonJpFurigana(c.text)
		if got != c.want {
			t.Errorf("%s: invalid result. want = %s, got = %s", c.text, c.want, got)
		}
	}
}

func TestWhitespaceSplit(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{" 有[あ]り 得[う]る", []string{"有[あ]り", "得[う]る"}},
		{"お 前[まい まえ めえ]", []string{"お", "前[まい・まえ・めえ]"}},
		{"ひらがな", []string{"ひらがな"}},
	}
	for _, c := range cases {
		got := WhitespaceSplit(c.text)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%s: invalid result. want = %v, got = %v", c.text, c.want, got)
		}
	}
}

func TestGetWordReading(t *testing.T) {
	cases := []struct {
		text          string
		word, reading string
	}{
		{"有[あ]り 得[う]る", "有り得る", "ありうる"},
		{"有る", "有る", ""},
		{"お 前[まい・まえ・めえ]", "お前", "おまい・まえ・めえ"},
		{"もうお 金[かね]が 無[な]くなりました。", "もうお金が無くなりました。", "もうおかねがなくなりました。"},
		{
			"妹[いもうと]は 自分[じぶん]の 我[わ]が 儘[まま]が 通[とお]らないと、すぐ 拗[す]ねる。",
			"妹は自分の我が儘が通らないと、すぐ拗ねる。",
			"いもうとはじぶんのわがままがとおらないと、すぐすねる。",
		},
	}
	for _, c := range cases {
		got := GetWordReading(c.text)
		if got.Word != c.word || got.Reading != c.reading {
			t.Errorf("%s: invalid result. want = (%s, %s), got = (%s, %s)",
				c.text, c.word, c.reading, got.Word, got.Reading)
		}
	}
}
