package accent

import (
	"bytes"
	"errors"
)

const (
	// CacheVersion identifies the fast-cache layout. Bump on any change
	// to the serialized form.
	CacheVersion = 0x9ac3a4d1f0e25b01

	HashSize          = 32
	DescriptionSize   = 256
	HeaderStorageSize = 8 + 8 + HashSize + DescriptionSize
)

// CacheHeader precedes the serialized dictionary in the fast-cache file.
// Hash is the content hash of the derived database the cache was built
// from; a mismatch means the cache is stale.
type CacheHeader struct {
	Version     uint64
	CreateTime  int64
	Hash        [HashSize]byte
	Description string
}

func NewCacheHeader(createTime int64, hash [HashSize]byte, description string) *CacheHeader {
	return &CacheHeader{
		Version:     CacheVersion,
		CreateTime:  createTime,
		Hash:        hash,
		Description: description,
	}
}

// ParseCacheHeader reads a header from input at offset, or returns nil
// when input is too short to hold one.
func ParseCacheHeader(input []byte, offset int) *CacheHeader {
	if len(input) < offset+HeaderStorageSize {
		return nil
	}
	offset, version := bufferToUint64(input, offset)
	offset, createTime := bufferToInt64(input, offset)

	var hash [HashSize]byte
	copy(hash[:], input[offset:offset+HashSize])
	offset += HashSize

	i := offset
	for ; i < offset+DescriptionSize; i++ {
		if input[i] == 0 {
			break
		}
	}
	description := string(input[offset:i])

	return &CacheHeader{
		Version:     version,
		CreateTime:  createTime,
		Hash:        hash,
		Description: description,
	}
}

func (header *CacheHeader) ToBytes() ([]byte, error) {
	desc := []byte(header.Description)
	if len(desc) > DescriptionSize {
		return nil, errors.New("description is too long")
	}

	buffer := bytes.NewBuffer(make([]byte, 0, HeaderStorageSize))
	writeUint64(buffer, header.Version)
	writeInt64(buffer, header.CreateTime)
	buffer.Write(header.Hash[:])
	buffer.Write(desc)
	buffer.Write(make([]byte, DescriptionSize-len(desc)))
	return buffer.Bytes(), nil
}
