package accent

import (
	"strconv"
	"strings"
)

const (
	overlineOpen  = `<span class="overline">`
	overlineClose = `</span>`
	downstepMark  = `&#42780;`
	nasalMark     = `<span class="nasal">&#176;</span>`
	nopronOpen    = `<span class="nopron">`
)

// parsePositions decodes one-based mora positions from a digit run
// delimited by "0". A literal "10" suffix denotes position 10 and is
// stripped first, otherwise it would read as position 1 plus delimiter.
func parsePositions(code string) []int {
	var positions []int
	if strings.HasSuffix(code, "10") {
		code = code[:len(code)-2]
		positions = append(positions, 10)
	}
	for _, run := range strings.Split(code, "0") {
		if run == "" {
			continue
		}
		pos, err := strconv.Atoi(run)
		if err != nil {
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

func atPosition(positions []int, pos int) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

// FormatEntry renders e into pitch-accent HTML.
func FormatEntry(e *Entry) string {
	return Render(e.KatakanaReadingAlt, e.Accent, e.NasalSoundPos, e.DevoicedPos)
}

// Render marks up a katakana reading with pitch accent HTML. accent is a
// per-mora digit string, right-aligned against the reading: missing
// leading digits count as 0. A digit above zero puts the mora on the
// high-pitch overline; 2 additionally ends the high run with a downstep
// mark. nasal and devoiced are position codes as read by parsePositions.
// The output depends on nothing but the four inputs.
func Render(kana, accent, nasal, devoiced string) string {
	morae := []rune(kana)
	pattern := accent
	if pad := len(morae) - len(accent); pad > 0 {
		pattern = strings.Repeat("0", pad) + accent
	}
	patternDigits := []rune(pattern)
	nasalAt := parsePositions(nasal)
	devoicedAt := parsePositions(devoiced)

	var b strings.Builder
	overline := false
	for i, mora := range morae {
		acc := int(patternDigits[i] - '0')

		if !overline && acc > 0 {
			b.WriteString(overlineOpen)
			overline = true
		}
		if overline && acc == 0 {
			b.WriteString(overlineClose)
			overline = false
		}

		if atPosition(devoicedAt, i+1) {
			b.WriteString(nopronOpen)
			b.WriteRune(mora)
			b.WriteString(overlineClose)
		} else {
			b.WriteRune(mora)
		}

		if atPosition(nasalAt, i+1) {
			b.WriteString(nasalMark)
		}

		if acc == 2 {
			b.WriteString(overlineClose)
			b.WriteString(downstepMark)
			overline = false
		}
	}
	if overline {
		b.WriteString(overlineClose)
	}
	return b.String()
}
