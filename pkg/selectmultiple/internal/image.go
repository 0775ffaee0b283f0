package internal

import (
	"fmt"
	"image"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/assets"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// SurfaceFromRGBA copies an RGBA image into a new SDL surface.
func SurfaceFromRGBA(src *image.RGBA) (*sdl.Surface, error) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, err
	}

	if err := surface.Lock(); err != nil {
		surface.Free()
		return nil, err
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		copy(pixels[y*pitch:y*pitch+w*4], row)
	}
	surface.Unlock()

	return surface, nil
}

// LoadImageSurface loads source at the requested size. SVG sources are
// rasterized at exactly w x h; file sources keep their own size and are
// scaled when drawn.
func LoadImageSurface(source assets.Source, w, h int32) (*sdl.Surface, error) {
	if source.IsZero() {
		return nil, assets.ErrEmptySource
	}

	if source.IsSVG() {
		raster, err := assets.Rasterize(source.SVG, int(w), int(h))
		if err != nil {
			return nil, err
		}
		return SurfaceFromRGBA(raster)
	}

	surface, err := img.Load(source.Path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", source.Path, err)
	}
	return surface, nil
}

// LoadImageTexture loads source as a blendable texture.
func LoadImageTexture(renderer *sdl.Renderer, source assets.Source, w, h int32) (*sdl.Texture, error) {
	surface, err := LoadImageSurface(source, w, h)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
