package screens

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"dungeon-crawl/config"
)

// Fonts holds the faces every screen draws with. The map uses one glyph per
// tile; UI text is slightly smaller.
type Fonts struct {
	source *text.GoTextFaceSource
	Tile   *text.GoTextFace
	UI     *text.GoTextFace
	Title  *text.GoTextFace
}

// LoadFonts parses the embedded Go Mono font.
func LoadFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Fonts{
		source: src,
		Tile:   &text.GoTextFace{Source: src, Size: float64(config.TileSize)},
		UI:     &text.GoTextFace{Source: src, Size: float64(config.TileSize) * 0.8},
		Title:  &text.GoTextFace{Source: src, Size: float64(config.TileSize) * 2},
	}, nil
}

// drawGlyph centres one character in the tile at grid (tx, ty).
func (f *Fonts) drawGlyph(screen *ebiten.Image, glyph rune, tx, ty int, col color.Color) {
	s := string(glyph)
	w, h := text.Measure(s, f.Tile, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(tx*config.TileSize)+(float64(config.TileSize)-w)/2,
		float64(ty*config.TileSize)+(float64(config.TileSize)-h)/2,
	)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, s, f.Tile, op)
}

// drawText draws str with its top-left corner at pixel (x, y).
func (f *Fonts) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCentered draws str horizontally centred on the screen at pixel row y.
func (f *Fonts) drawCentered(screen *ebiten.Image, str string, y float64, col color.Color, face *text.GoTextFace) {
	w, _ := text.Measure(str, face, 0)
	sw := float64(screen.Bounds().Dx())
	f.drawText(screen, str, (sw-w)/2, y, col, face)
}
