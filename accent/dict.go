package accent

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/zeebo/blake3"
)

// Dictionary is the loaded accent database: an insertion-ordered mapping
// from an expression or katakana-form key to its pronunciation variants.
type Dictionary struct {
	lookup *linkedhashmap.Map
}

func newDictionary() *Dictionary {
	return &Dictionary{
		lookup: linkedhashmap.New(),
	}
}

// Lookup returns the pronunciation variants registered under key, in
// first-seen order, or nil.
func (dict *Dictionary) Lookup(key string) []Pitch {
	v, ok := dict.lookup.Get(key)
	if !ok {
		return nil
	}
	return v.([]Pitch)
}

// KeySize returns the number of distinct lookup keys.
func (dict *Dictionary) KeySize() int {
	return dict.lookup.Size()
}

func (dict *Dictionary) add(key string, pitch Pitch) {
	var pitches []Pitch
	if v, ok := dict.lookup.Get(key); ok {
		pitches = v.([]Pitch)
		if containsPitch(pitches, pitch) {
			return
		}
	}
	dict.lookup.Put(key, append(pitches, pitch))
}

// ReadDerivative loads the tab-separated derived database. Each row is
// indexed under both its expression key and its katakana spelling, so a
// word is found by either form.
func ReadDerivative(input io.Reader) (*Dictionary, error) {
	dict := newDictionary()
	r := newLineReader(input)
	for {
		line, err := r.readLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		fields := strings.Split(string(line), "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid format at line %d", r.numLine)
		}
		pitch := Pitch{Katakana: fields[1], HTML: fields[2]}
		dict.add(fields[0], pitch)
		dict.add(fields[1], pitch)
	}
	return dict, nil
}

func readDerivativeFile(path string) (*Dictionary, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dict, err := ReadDerivative(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return dict, nil
}

// HashFile returns the content hash of the file at path, as recorded in
// fast-cache headers.
func HashFile(path string) ([HashSize]byte, error) {
	var hash [HashSize]byte
	f, err := os.OpenFile(path, os.O_RDONLY, 0644)
	if err != nil {
		return hash, err
	}
	defer f.Close()
	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return hash, err
	}
	copy(hash[:], h.Sum(nil))
	return hash, nil
}

// LoadDictionary loads the accent dictionary, building what is missing.
// The derived database is built from the corpus when absent; the fast
// cache is used when its recorded hash still matches the derived file
// and rebuilt otherwise. A missing corpus is only an error when the
// derived database is missing too.
func LoadDictionary(corpusPath, derivativePath, cachePath string) (*Dictionary, error) {
	if _, err := os.Stat(derivativePath); os.IsNotExist(err) {
		if _, err := os.Stat(corpusPath); err != nil {
			return nil, fmt.Errorf("no derived database and no corpus: %s", err)
		}
		if err := BuildDerivative(corpusPath, derivativePath); err != nil {
			return nil, err
		}
	}

	hash, err := HashFile(derivativePath)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if header, dict, err := ReadCache(cachePath); err == nil && header.Hash == hash {
			return dict, nil
		}
	}

	dict, err := readDerivativeFile(derivativePath)
	if err != nil {
		return nil, err
	}
	if cachePath != "" {
		// Opportunistic: the next load is faster, this one is not worse.
		_ = WriteCacheFile(cachePath, dict, hash)
	}
	return dict, nil
}
