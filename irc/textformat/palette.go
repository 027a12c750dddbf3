// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

// Standard mIRC color indices, numbered as in
// https://modern.ircdocs.horse/formatting.html#colors
const (
	White = iota
	Black
	Blue
	Green
	Red
	Brown
	Purple
	Orange
	Yellow
	LightGreen
	Cyan
	LightCyan
	LightBlue
	Pink
	Gray
	LightGray
)

// defaultColorNames are the stock names of the 16 standard colors. They are
// single tokens so they can double as CSS class names in SpanClass output.
var defaultColorNames = []string{
	"white",
	"black",
	"blue",
	"green",
	"red",
	"brown",
	"purple",
	"orange",
	"yellow",
	"lightgreen",
	"cyan",
	"lightcyan",
	"lightblue",
	"pink",
	"gray",
	"lightgray",
}

// Palette maps mIRC color indices to display color names. Any index is
// accepted; lookups of unmapped indices fall back to a caller-supplied
// default instead of failing. Values may be any string meaningful to the
// output consumer (CSS color names, #rrggbb, class names).
//
// A Palette is not goroutine-safe under mutation: guard SetColorName calls
// externally if the palette is shared. Concurrent reads are fine.
type Palette struct {
	colors map[int]string
}

// NewPalette returns a palette seeded with the 16 standard color names.
func NewPalette() *Palette {
	var p Palette
	p.Initialize()
	return &p
}

func (p *Palette) Initialize() {
	p.colors = make(map[int]string, len(defaultColorNames))
	for i, name := range defaultColorNames {
		p.colors[i] = name
	}
}

// ColorName returns the name mapped to index, or fallback if there is none.
// A nil *Palette resolves every index to the fallback.
func (p *Palette) ColorName(index int, fallback string) string {
	if p == nil {
		return fallback
	}
	if name, ok := p.colors[index]; ok {
		return name
	}
	return fallback
}

// SetColorName maps index to name, replacing any previous mapping.
func (p *Palette) SetColorName(index int, name string) {
	if p.colors == nil {
		p.colors = make(map[int]string)
	}
	p.colors[index] = name
}
