package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tjansen/gopng/internal/bmp"
	"github.com/tjansen/gopng/pkg/png"
)

const envVarPrefix = "PNG2BMP"

// VERSION gets set during build
var VERSION = "0.0.0"

type CLI struct {
	Input  string `kong:"arg,help='Input PNG file',type='existingfile'"`
	Output string `kong:"help='Output BMP file (defaults to input filename with .bmp extension)',short='o'"`
	Debug  bool   `kong:"help='Enable debug output',short='d'"`

	Version kong.VersionFlag `help:"Show version and exit" short:"v" env:"-"`
}

func main() {
	// Attempt to load .env
	_ = godotenv.Load(".env")

	cli := &CLI{}
	kong.Parse(cli,
		kong.Name("png2bmp"),
		kong.Description("Converts a PNG image to a Windows bitmap"),
		kong.UsageOnError(),
		kong.DefaultEnvars(envVarPrefix),
		kong.Vars{"version": VERSION},
	)

	if cli.Debug {
		logrus.Info("debug mode enabled")
		logrus.SetLevel(logrus.DebugLevel)
	}

	data, err := os.ReadFile(cli.Input)
	if err != nil {
		logrus.Fatalf("unable to read input file: %s", err)
	}

	img, err := png.DecodeImage(data)
	if err != nil {
		logrus.Fatalf("unable to decode PNG: %s", err)
	}

	hdr := img.Header
	logrus.Debugf("image: %dx%d, bit depth %d, color type %d",
		hdr.Width, hdr.Height, hdr.BitDepth, hdr.ColorType)

	pixels, bitsPerPixel, err := toBitmapPixels(img)
	if err != nil {
		logrus.Fatalf("unable to convert pixels: %s", err)
	}

	output := cli.Output
	if output == "" {
		ext := filepath.Ext(cli.Input)
		output = cli.Input[:len(cli.Input)-len(ext)] + ".bmp"
	}

	file, err := os.Create(output)
	if err != nil {
		logrus.Fatalf("unable to create output file: %s", err)
	}
	defer file.Close()

	if err := bmp.Write(file, pixels, int(hdr.Width), int(hdr.Height), bitsPerPixel); err != nil {
		logrus.Fatalf("unable to write BMP: %s", err)
	}

	logrus.Infof("converted %s to %s (%dx%d pixels)", cli.Input, output, hdr.Width, hdr.Height)
}

// toBitmapPixels flattens the decoded rows into the top-down (A)RGB layout
// the BMP writer consumes. Grayscale expands to RGB; gray+alpha to RGBA.
func toBitmapPixels(img *png.Image) ([]byte, int, error) {
	hdr := img.Header
	if hdr.BitDepth != 8 {
		return nil, 0, errorUnsupported(hdr)
	}

	width, height := int(hdr.Width), int(hdr.Height)
	switch hdr.ColorType {
	case 0: // grayscale -> RGB
		pixels := make([]byte, 0, width*height*3)
		for _, row := range img.Rows {
			for x := 0; x < width; x++ {
				g := row[x]
				pixels = append(pixels, g, g, g)
			}
		}
		return pixels, 24, nil
	case 2: // RGB
		return flattenRows(img.Rows, width*3), 24, nil
	case 4: // gray+alpha -> RGBA
		pixels := make([]byte, 0, width*height*4)
		for _, row := range img.Rows {
			for x := 0; x < width; x++ {
				g, a := row[x*2], row[x*2+1]
				pixels = append(pixels, g, g, g, a)
			}
		}
		return pixels, 32, nil
	case 6: // RGBA
		return flattenRows(img.Rows, width*4), 32, nil
	default:
		return nil, 0, errorUnsupported(hdr)
	}
}

func flattenRows(rows [][]byte, rowLen int) []byte {
	pixels := make([]byte, 0, len(rows)*rowLen)
	for _, row := range rows {
		pixels = append(pixels, row[:rowLen]...)
	}
	return pixels
}

func errorUnsupported(hdr png.Header) error {
	return errors.Errorf("png2bmp: no BMP mapping for color type %d at bit depth %d",
		hdr.ColorType, hdr.BitDepth)
}
