package gofurigana

import (
	"testing"
)

func TestFoldToKatakana(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"ひらがな", "ヒラガナ"},
		{"カタカナ", "カタカナ"},
		{"ｶﾞｷ", "ガキ"},
		{"漢字かな", "漢字カナ"},
		{"パーティー", "パーティー"},
		{"", ""},
	}
	for _, c := range cases {
		got := FoldToKatakana(c.text)
		if got != c.want {
			t.Errorf("%s: invalid result. want = %s, got = %s", c.text, c.want, got)
		}
	}
}

func TestFoldToHiragana(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"カタカナ", "かたかな"},
		{"ひらがな", "ひらがな"},
		{"ラーメン", "らーめん"},
	}
	for _, c := range cases {
		got := FoldToHiragana(c.text)
		if got != c.want {
			t.Errorf("%s: invalid result. want = %s, got = %s", c.text, c.want, got)
		}
	}
}

func TestContainsKana(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"わる", true},
		{"ワル", true},
		{"ﾜﾙ", true},
		{"1223", false},
		{"漢字", false},
		{"", false},
	}
	for _, c := range cases {
		got := ContainsKana(c.text)
		if got != c.want {
			t.Errorf("%s: invalid result. want = %v, got = %v", c.text, c.want, got)
		}
	}
}
