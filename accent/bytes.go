package accent

import (
	"bytes"
	"encoding/binary"
)

func bufferToUint16(bytebuffer []byte, offset int) (int, uint16) {
	offsetend := offset + 2
	return offsetend, binary.LittleEndian.Uint16(bytebuffer[offset:offsetend])
}

func bufferToUint32(bytebuffer []byte, offset int) (int, uint32) {
	offsetend := offset + 4
	return offsetend, binary.LittleEndian.Uint32(bytebuffer[offset:offsetend])
}

func bufferToInt64(bytebuffer []byte, offset int) (int, int64) {
	offsetend := offset + 8
	return offsetend, int64(binary.LittleEndian.Uint64(bytebuffer[offset:offsetend]))
}

func bufferToUint64(bytebuffer []byte, offset int) (int, uint64) {
	offsetend := offset + 8
	return offsetend, binary.LittleEndian.Uint64(bytebuffer[offset:offsetend])
}

func bufferToString(bytebuffer []byte, offset int) (int, string) {
	var length uint16
	offset, length = bufferToUint16(bytebuffer, offset)
	offsetend := offset + int(length)
	return offsetend, string(bytebuffer[offset:offsetend])
}

// checkedUint32 and checkedString refuse to read past the end of the
// buffer, for parsing input that may be truncated.

func checkedUint32(bytebuffer []byte, offset int) (int, uint32, bool) {
	if offset+4 > len(bytebuffer) {
		return offset, 0, false
	}
	offsetend, v := bufferToUint32(bytebuffer, offset)
	return offsetend, v, true
}

func checkedString(bytebuffer []byte, offset int) (int, string, bool) {
	if offset+2 > len(bytebuffer) {
		return offset, "", false
	}
	offset, length := bufferToUint16(bytebuffer, offset)
	offsetend := offset + int(length)
	if offsetend > len(bytebuffer) {
		return offset, "", false
	}
	return offsetend, string(bytebuffer[offset:offsetend]), true
}

func writeUint16(buffer *bytes.Buffer, v uint16) {
	_ = binary.Write(buffer, binary.LittleEndian, v)
}

func writeUint32(buffer *bytes.Buffer, v uint32) {
	_ = binary.Write(buffer, binary.LittleEndian, v)
}

func writeInt64(buffer *bytes.Buffer, v int64) {
	_ = binary.Write(buffer, binary.LittleEndian, v)
}

func writeUint64(buffer *bytes.Buffer, v uint64) {
	_ = binary.Write(buffer, binary.LittleEndian, v)
}

func writeString(buffer *bytes.Buffer, s string) error {
	if len(s) > 0xffff {
		return errTooLongString
	}
	writeUint16(buffer, uint16(len(s)))
	buffer.WriteString(s)
	return nil
}
