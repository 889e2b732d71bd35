package asciify

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// supportedExtensions lists the source files picked up when converting a whole directory.
var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}

// createFile creates a new file for writing. It fails if the file already exists,
// leaving its content untouched.
func createFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(ErrOutput, "unable to create the destination file: %v", err)
	}
	return f, nil
}

// writeArt saves the rendered text into a newly created file.
func writeArt(path string, art AsciiArt) (err error) {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(ErrOutput, cerr.Error())
		}
	}()

	if _, err := art.WriteTo(f); err != nil {
		return errors.Wrapf(ErrOutput, "writing %s: %v", path, err)
	}
	return nil
}

// writeSnapshot encodes the rendered text as an image, the format being
// derived from the file extension.
func writeSnapshot(path string, art AsciiArt) (err error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return errors.Wrapf(ErrArgument, "preview %s: %v", filepath.Base(path), err)
	}
	img, err := art.Snapshot()
	if err != nil {
		return err
	}

	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(ErrOutput, cerr.Error())
		}
	}()

	if err := imaging.Encode(f, img, format); err != nil {
		return errors.Wrapf(ErrOutput, "encoding %s: %v", path, err)
	}
	return nil
}
