package accent

import (
	"errors"
	"strings"
	"testing"
)

func testLine(fields ...string) string {
	return strings.Join(fields, ",")
}

func TestParseEntry(t *testing.T) {
	line := testLine(
		"1", "1", "アイ.wav", "*", "*",
		"アイ", "愛", "愛", "愛", "2",
		"", "", "愛を語る", "1", "*",
		"アイ", "1", "1", "20",
	)
	entry, err := ParseEntry(line)
	if err != nil {
		t.Fatalf("fail to parse entry: %s", err)
	}
	if entry.NID != "1" {
		t.Errorf("invalid result. want = 1, got = %s", entry.NID)
	}
	if entry.KatakanaReading != "アイ" {
		t.Errorf("invalid result. want = アイ, got = %s", entry.KatakanaReading)
	}
	if entry.NHK != "愛" || entry.KanjiExpr != "愛" {
		t.Errorf("invalid result. got = (%s, %s)", entry.NHK, entry.KanjiExpr)
	}
	if entry.Accent != "20" {
		t.Errorf("invalid result. want = 20, got = %s", entry.Accent)
	}
}

func TestParseEntry_EscapedGroups(t *testing.T) {
	cases := []struct {
		field string
		want  string
	}{
		{"ドname(近世,「どdon」とも)", "ドname(近世;「どdon」とも)"},
		{"{あ,い}う", "{あ;い}う"},
		{"(a,b)", "(a;b)"},
	}
	for _, c := range cases {
		line := testLine(
			"1", "1", "x.wav", "*", "*",
			"アイ", "愛", "愛", "愛", "2",
			"", "", c.field, "1", "*",
			"アイ", "1", "1", "20",
		)
		entry, err := ParseEntry(line)
		if err != nil {
			t.Fatalf("%s: fail to parse entry: %s", c.field, err)
		}
		if entry.Majiri != c.want {
			t.Errorf("%s: invalid result. want = %s, got = %s", c.field, c.want, entry.Majiri)
		}
	}
}

func TestParseEntry_WrongFieldCount(t *testing.T) {
	for _, line := range []string{
		testLine("1", "2", "3"),
		testLine(make([]string, 20)...),
		"",
	} {
		_, err := ParseEntry(line)
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%q: invalid error. want = %v, got = %v", line, ErrMalformedRecord, err)
		}
	}
}
