package png

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

const (
	zlibMethodDeflate = 8
	zlibFlagFDict     = 1 << 5
	zlibTrailerSize   = 4
)

// ZlibDecompress decodes one complete ZLIB stream (RFC 1950): a two-byte
// header, an optional dictionary id, the DEFLATE payload, and a big-endian
// Adler-32 trailer over the uncompressed data. Decompressed fragments are
// passed to emit in order; the running checksum is updated before each
// fragment is forwarded and compared against the trailer once the payload is
// exhausted.
func ZlibDecompress(data []byte, emit func([]byte)) error {
	if len(data) < 2+zlibTrailerSize {
		return ErrZlibTruncated
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0f != zlibMethodDeflate {
		return ErrZlibMethod
	}
	if (uint32(cmf)*256+uint32(flg))%31 != 0 {
		return ErrZlibHeaderChecksum
	}

	payload := data[2 : len(data)-zlibTrailerSize]
	if flg&zlibFlagFDict != 0 {
		// Preset dictionaries are not supported; the dictionary id is
		// skipped and decompression fails downstream if one is required.
		if len(payload) < 4 {
			return ErrZlibTruncated
		}
		payload = payload[4:]
	}
	trailer := binary.BigEndian.Uint32(data[len(data)-zlibTrailerSize:])

	adler := NewAdler32()
	br := NewBitReader(payload)
	if err := Inflate(br, func(fragment []byte) {
		adler.Update(fragment)
		emit(fragment)
	}); err != nil {
		return errors.Wrap(err, "zlib: inflate")
	}
	if adler.Sum() != trailer {
		return ErrZlibChecksum
	}
	return nil
}
