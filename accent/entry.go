package accent

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// NumberOfFields is the fixed column count of one corpus record.
const NumberOfFields = 19

// ErrMalformedRecord reports a corpus line that does not split into
// exactly NumberOfFields fields after escaping.
var ErrMalformedRecord = errors.New("malformed record")

// Entry is one record of the pitch accent corpus.
type Entry struct {
	NID                string
	ID                 string
	WAVName            string
	KFld               string
	Act                string
	KatakanaReading    string
	NHK                string
	KanjiExpr          string
	NHKExpr            string
	NumberChars        string
	DevoicedPos        string
	NasalSoundPos      string
	Majiri             string
	Kaisi              string
	KWAV               string
	KatakanaReadingAlt string
	AccentCount        string
	Bunshou            string
	Accent             string
}

// Brace and parenthesis groups may carry an internal comma that is not a
// field separator, e.g. ドmoney(近世,「どdon」とも).
var commaGroups = []*regexp.Regexp{
	regexp.MustCompile(`\{.*?,.*?\}`),
	regexp.MustCompile(`\(.*?,.*?\)`),
}

func escapeCommas(line string) string {
	for _, group := range commaGroups {
		line = group.ReplaceAllStringFunc(line, func(m string) string {
			return strings.ReplaceAll(m, ",", ";")
		})
	}
	return line
}

// ParseEntry parses one raw corpus line into an Entry. Commas embedded
// in brace or parenthesis groups are escaped to semicolons first.
func ParseEntry(line string) (*Entry, error) {
	fields := strings.Split(escapeCommas(strings.TrimSpace(line)), ",")
	if len(fields) != NumberOfFields {
		return nil, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(fields), NumberOfFields)
	}
	return &Entry{
		NID:                fields[0],
		ID:                 fields[1],
		WAVName:            fields[2],
		KFld:               fields[3],
		Act:                fields[4],
		KatakanaReading:    fields[5],
		NHK:                fields[6],
		KanjiExpr:          fields[7],
		NHKExpr:            fields[8],
		NumberChars:        fields[9],
		DevoicedPos:        fields[10],
		NasalSoundPos:      fields[11],
		Majiri:             fields[12],
		Kaisi:              fields[13],
		KWAV:               fields[14],
		KatakanaReadingAlt: fields[15],
		AccentCount:        fields[16],
		Bunshou:            fields[17],
		Accent:             fields[18],
	}, nil
}

// lineReader reads lines of arbitrary length, strips line terminators
// and counts lines for error reporting.
type lineReader struct {
	r         *bufio.Reader
	rawBuffer []byte
	numLine   int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

func (r *lineReader) readLine() ([]byte, error) {
	line, err := r.r.ReadSlice('\n')
	if err == bufio.ErrBufferFull {
		r.rawBuffer = append(r.rawBuffer[:0], line...)
		for err == bufio.ErrBufferFull {
			line, err = r.r.ReadSlice('\n')
			r.rawBuffer = append(r.rawBuffer, line...)
		}
		line = r.rawBuffer
	}
	if len(line) > 0 && err == io.EOF {
		err = nil
	} else if err == nil {
		n := len(line)
		if n >= 2 && line[n-2] == '\r' && line[n-1] == '\n' {
			line = line[:n-2]
		} else {
			line = line[:n-1]
		}
	}
	if err == nil {
		r.numLine++
	}
	return line, err
}
