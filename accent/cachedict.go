package accent

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/msnoigrs/gofurigana/internal/mmap"
)

var errTooLongString = errors.New("string is too long")

// WriteCache serializes dict to writer in the fast-cache binary form.
// load(store(x)) reproduces x: keys and variants keep their order.
func WriteCache(writer io.Writer, dict *Dictionary, hash [HashSize]byte, createTime int64, description string) error {
	header := NewCacheHeader(createTime, hash, description)
	hb, err := header.ToBytes()
	if err != nil {
		return err
	}

	bwriter := bufio.NewWriter(writer)
	if _, err := bwriter.Write(hb); err != nil {
		return err
	}

	buffer := bytes.NewBuffer([]byte{})
	writeUint32(buffer, uint32(dict.lookup.Size()))
	it := dict.lookup.Iterator()
	for it.Next() {
		if err := writeString(buffer, it.Key().(string)); err != nil {
			return err
		}
		pitches := it.Value().([]Pitch)
		writeUint32(buffer, uint32(len(pitches)))
		for _, pitch := range pitches {
			if err := writeString(buffer, pitch.Katakana); err != nil {
				return err
			}
			if err := writeString(buffer, pitch.HTML); err != nil {
				return err
			}
		}
	}
	if _, err := buffer.WriteTo(bwriter); err != nil {
		return err
	}
	return bwriter.Flush()
}

// WriteCacheFile writes the fast cache for dict to filename. The cache
// goes to a temporary file first and lands with a rename, so an
// interrupted write never leaves a half-written cache at filename.
func WriteCacheFile(filename string, dict *Dictionary, hash [HashSize]byte) error {
	tmpname := filename + ".tmp"
	f, err := os.OpenFile(tmpname, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := WriteCache(f, dict, hash, time.Now().Unix(), ""); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpname)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpname)
		return err
	}
	return os.Rename(tmpname, filename)
}

// ReadCache maps the fast-cache file and reconstructs the dictionary.
// The caller decides what to do with a stale hash; an unknown version or
// a truncated body is an error.
func ReadCache(filename string) (*CacheHeader, *Dictionary, error) {
	fd, err := os.OpenFile(filename, os.O_RDONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	defer fd.Close()

	finfo, err := fd.Stat()
	if err != nil {
		return nil, nil, err
	}
	fmap, err := mmap.Mmap(fd, 0, finfo.Size())
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = mmap.Munmap(fmap)
	}()

	header := ParseCacheHeader(fmap, 0)
	if header == nil || header.Version != CacheVersion {
		return nil, nil, fmt.Errorf("invalid cache: %s", filename)
	}

	dict := newDictionary()
	offset := HeaderStorageSize
	offset, size, ok := checkedUint32(fmap, offset)
	if !ok {
		return nil, nil, fmt.Errorf("invalid cache: %s", filename)
	}
	for i := uint32(0); i < size; i++ {
		var key string
		offset, key, ok = checkedString(fmap, offset)
		if !ok {
			return nil, nil, fmt.Errorf("invalid cache: %s", filename)
		}
		var npitch uint32
		offset, npitch, ok = checkedUint32(fmap, offset)
		// Every variant takes at least four bytes, so a count beyond the
		// remaining bytes cannot be honest.
		if !ok || int64(npitch) > int64(len(fmap)-offset) {
			return nil, nil, fmt.Errorf("invalid cache: %s", filename)
		}
		pitches := make([]Pitch, npitch)
		for j := range pitches {
			offset, pitches[j].Katakana, ok = checkedString(fmap, offset)
			if !ok {
				return nil, nil, fmt.Errorf("invalid cache: %s", filename)
			}
			offset, pitches[j].HTML, ok = checkedString(fmap, offset)
			if !ok {
				return nil, nil, fmt.Errorf("invalid cache: %s", filename)
			}
		}
		dict.lookup.Put(key, pitches)
	}
	return header, dict, nil
}
