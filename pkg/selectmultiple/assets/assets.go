// Package assets resolves the images SelectMultiple draws for checkboxes.
package assets

import (
	"bytes"
	"crypto/sha1"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed checkbox.svg
var checkboxSVG []byte

//go:embed checkbox_checked.svg
var checkboxCheckedSVG []byte

// ErrEmptySource is returned when a Source names neither a file nor SVG data.
var ErrEmptySource = errors.New("assets: empty image source")

// Source is where an image comes from: a file on disk (any format SDL_image
// can load) or inline SVG markup.
type Source struct {
	Path string
	SVG  []byte
}

// File returns a Source backed by an image file.
func File(path string) Source {
	return Source{Path: path}
}

// SVG returns a Source backed by SVG markup.
func SVG(data []byte) Source {
	return Source{SVG: data}
}

// DefaultCheckbox is the unchecked box used when the caller supplies none.
func DefaultCheckbox() Source {
	return SVG(checkboxSVG)
}

// DefaultCheckedCheckbox is the checked box used when the caller supplies none.
func DefaultCheckedCheckbox() Source {
	return SVG(checkboxCheckedSVG)
}

// IsZero reports whether the source is empty.
func (s Source) IsZero() bool {
	return s.Path == "" && len(s.SVG) == 0
}

// IsSVG reports whether the source is inline SVG.
func (s Source) IsSVG() bool {
	return len(s.SVG) > 0
}

// Key identifies the source for texture caching.
func (s Source) Key() string {
	if s.IsSVG() {
		sum := sha1.Sum(s.SVG)
		return "svg:" + hex.EncodeToString(sum[:8])
	}
	return "file:" + s.Path
}

// Or returns s, or def when s is empty.
func (s Source) Or(def Source) Source {
	if s.IsZero() {
		return def
	}
	return s
}

// Rasterize draws SVG markup into a w x h RGBA image, scaling the viewBox to fit.
func Rasterize(svg []byte, w, h int) (*image.RGBA, error) {
	if len(svg) == 0 {
		return nil, ErrEmptySource
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("assets: invalid raster size %dx%d", w, h)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("assets: parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}
