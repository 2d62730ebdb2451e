package accent

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Pitch is one pronunciation variant: the katakana spelling and its
// accent-marked HTML rendering.
type Pitch struct {
	Katakana string
	HTML     string
}

// DatabaseBuilder collects corpus entries into the derived accent
// database: an insertion-ordered mapping from expression to its distinct
// pronunciation variants.
type DatabaseBuilder struct {
	entries *linkedhashmap.Map
	// EntrySize counts the corpus records read.
	EntrySize int
}

func NewDatabaseBuilder() *DatabaseBuilder {
	return &DatabaseBuilder{
		entries: linkedhashmap.New(),
	}
}

// ReadCorpus parses every line of the corpus and registers it. Empty
// lines are skipped; a line with the wrong field count aborts the build.
func (builder *DatabaseBuilder) ReadCorpus(input io.Reader) error {
	r := newLineReader(input)
	for {
		line, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(line) == 0 {
			continue
		}
		entry, err := ParseEntry(string(line))
		if err != nil {
			return fmt.Errorf("%w: at line %d", err, r.numLine)
		}
		builder.Add(entry)
		builder.EntrySize++
	}
	return nil
}

// Add renders entry and registers its pronunciation under both the NHK
// expression and the kanji expression keys. Exact duplicate variants of
// a key are suppressed; first-seen order is kept.
func (builder *DatabaseBuilder) Add(entry *Entry) {
	pitch := Pitch{Katakana: entry.KatakanaReading, HTML: FormatEntry(entry)}
	for _, key := range []string{entry.NHK, entry.KanjiExpr} {
		var pitches []Pitch
		if v, ok := builder.entries.Get(key); ok {
			pitches = v.([]Pitch)
			if containsPitch(pitches, pitch) {
				continue
			}
		}
		builder.entries.Put(key, append(pitches, pitch))
	}
}

// KeySize returns the number of distinct expression keys collected.
func (builder *DatabaseBuilder) KeySize() int {
	return builder.entries.Size()
}

// WriteTo persists the collected database as tab-separated rows, one
// (key, katakana, html) triple per line, in insertion order. Building
// twice from the same corpus writes identical bytes.
func (builder *DatabaseBuilder) WriteTo(writer io.Writer) error {
	bwriter := bufio.NewWriter(writer)
	it := builder.entries.Iterator()
	for it.Next() {
		key := it.Key().(string)
		for _, pitch := range it.Value().([]Pitch) {
			_, err := fmt.Fprintf(bwriter, "%s\t%s\t%s\n", key, pitch.Katakana, pitch.HTML)
			if err != nil {
				return err
			}
		}
	}
	return bwriter.Flush()
}

func containsPitch(pitches []Pitch, pitch Pitch) bool {
	for _, p := range pitches {
		if p == pitch {
			return true
		}
	}
	return false
}

// BuildDerivative builds the derived database file from the corpus file.
func BuildDerivative(corpusPath, destPath string) error {
	corpus, err := os.OpenFile(corpusPath, os.O_RDONLY, 0644)
	if err != nil {
		return err
	}
	defer corpus.Close()

	builder := NewDatabaseBuilder()
	if err := builder.ReadCorpus(corpus); err != nil {
		return fmt.Errorf("%s: %s", corpusPath, err)
	}

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := builder.WriteTo(dest); err != nil {
		_ = dest.Close()
		return err
	}
	return dest.Close()
}
