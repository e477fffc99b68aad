// Package devtools prints generated levels to a terminal for inspecting the
// map generators without starting the game window.
package devtools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"dungeon-crawl/generation"
)

const (
	DefaultWidth = 80

	glyphWall  = '#'
	glyphFloor = '.'
	glyphStart = '@'
)

var (
	colorWall   = color.Style{color.FgGreen}
	colorFloor  = color.Style{color.FgGray}
	colorStart  = color.Style{color.FgYellow, color.OpBold}
	colorRegion = color.Style{color.FgRed}
)

// regionGlyphs labels spawn regions; they repeat after the last one.
const regionGlyphs = "abcdefghijklmnopqrstuvwxyz"

// DumpOptions controls how a level is printed.
type DumpOptions struct {
	Color       bool // wrap glyphs in ANSI colours
	MaxWidth    int  // clip rows to this many columns; 0 means no limit
	ShowRegions bool // letter each spawn region instead of plain floor
}

// TerminalOptions returns options suited to f: colour only when f is a
// terminal, rows clipped to its width.
func TerminalOptions(f *os.File) DumpOptions {
	opts := DumpOptions{ShowRegions: true}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return opts
	}
	opts.Color = true
	opts.MaxWidth = DefaultWidth
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		opts.MaxWidth = w
	}
	return opts
}

// Render returns the level as text, one line per map row, preceded by a
// one-line summary.
func Render(res *generation.Result, seed int64, opts DumpOptions) string {
	m := res.Map
	labels := make(map[int]byte, m.FloorCount())
	if opts.ShowRegions {
		for i, region := range res.Regions {
			for _, idx := range region {
				labels[idx] = regionGlyphs[i%len(regionGlyphs)]
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "kind=%s seed=%d size=%dx%d floor=%d rooms=%d regions=%d\n",
		res.Kind, seed, m.Width, m.Height, m.FloorCount(), len(res.Rooms), len(res.Regions))

	width := m.Width
	if opts.MaxWidth > 0 && opts.MaxWidth < width {
		width = opts.MaxWidth
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < width; x++ {
			idx := m.TileIndex(x, y)
			glyph, style := glyphWall, colorWall
			switch {
			case x == res.Start.X && y == res.Start.Y:
				glyph, style = glyphStart, colorStart
			case !m.IsWall(x, y):
				glyph, style = glyphFloor, colorFloor
				if l, ok := labels[idx]; ok {
					glyph, style = rune(l), colorRegion
				}
			}
			if opts.Color {
				b.WriteString(style.Sprint(string(glyph)))
			} else {
				b.WriteRune(glyph)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes Render's output to w.
func Dump(w io.Writer, res *generation.Result, seed int64, opts DumpOptions) error {
	_, err := io.WriteString(w, Render(res, seed, opts))
	return err
}
