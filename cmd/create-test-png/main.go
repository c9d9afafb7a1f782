package main

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/tjansen/gopng/internal/png"
)

// createTestPNG writes a small valid PNG. Image data is compressed as a
// single DEFLATE stored block, so no compressor is needed; the Adler-32
// trailer and chunk CRCs are real, making the output acceptable to strict
// decoders too. One row per filter type exercises every predictor.
func createTestPNG(filename string) error {
	const (
		width     = 4
		height    = 5
		colorType = 2 // RGB
		bitDepth  = 8
	)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	// Raw RGB rows: a horizontal gradient, one row per filter type.
	rows := make([][]byte, height)
	for y := range rows {
		row := make([]byte, width*3)
		for x := 0; x < width; x++ {
			row[x*3+0] = byte(x * 60)
			row[x*3+1] = byte(y * 50)
			row[x*3+2] = byte(200 - x*30)
		}
		rows[y] = row
	}

	var raw []byte
	for y, row := range rows {
		raw = append(raw, filterRow(byte(y%5), row, rows, y, 3)...)
	}

	idat := zlibStoredStream(raw)

	var out []byte
	out = append(out, 137, 80, 78, 71, 13, 10, 26, 10) // PNG signature

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], width)
	binary.BigEndian.PutUint32(ihdr[4:], height)
	ihdr[8] = bitDepth
	ihdr[9] = colorType
	ihdr[10] = 0 // compression method
	ihdr[11] = 0 // filter method
	ihdr[12] = 0 // interlace method
	out = appendChunk(out, "IHDR", ihdr)
	out = appendChunk(out, "IDAT", idat)
	out = appendChunk(out, "IEND", nil)

	_, err = file.Write(out)
	return err
}

// filterRow applies the forward filter so the decoder's inverse is exercised.
func filterRow(filterType byte, row []byte, rows [][]byte, y, bpp int) []byte {
	prior := func(x int) int {
		if y == 0 || x < 0 {
			return 0
		}
		return int(rows[y-1][x])
	}
	raw := func(x int) int {
		if x < 0 {
			return 0
		}
		return int(row[x])
	}

	out := make([]byte, 0, len(row)+1)
	out = append(out, filterType)
	for x := range row {
		var predicted int
		switch filterType {
		case 1: // Sub
			predicted = raw(x - bpp)
		case 2: // Up
			predicted = prior(x)
		case 3: // Average
			predicted = (raw(x-bpp) + prior(x)) / 2
		case 4: // Paeth
			predicted = paeth(raw(x-bpp), prior(x), prior(x-bpp))
		}
		out = append(out, byte(int(row[x])-predicted))
	}
	return out
}

func paeth(a, b, c int) int {
	p := a + b - c
	pa, pb, pc := abs(p-a), abs(p-b), abs(p-c)
	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// zlibStoredStream frames raw as a ZLIB stream holding one final stored block.
func zlibStoredStream(raw []byte) []byte {
	out := []byte{
		0x78, 0x01, // CMF/FLG: deflate, 32K window, check bits
		0x01, // BFINAL=1, BTYPE=00 (stored)
	}
	length := uint16(len(raw))
	out = append(out, byte(length), byte(length>>8))
	out = append(out, byte(^length), byte(^length>>8))
	out = append(out, raw...)

	adler := png.NewAdler32()
	adler.Update(raw)
	var trailer [4]byte
	binary.BigEndian.PutUint32(trailer[:], adler.Sum())
	return append(out, trailer[:]...)
}

func appendChunk(out []byte, typ string, payload []byte) []byte {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(payload)))
	out = append(out, length[:]...)
	out = append(out, typ...)
	out = append(out, payload...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(typ))
	crc.Write(payload)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	return append(out, sum[:]...)
}

func main() {
	filename := "test.png"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}
	if err := createTestPNG(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating test PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created test PNG file: %s\n", filename)
}
