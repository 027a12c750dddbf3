// Copyright (c) 2023 Shivaram Lingamneni
// released under the MIT license

package textformat

import (
	"reflect"
	"testing"
)

func assertEqual(supplied, expected interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(supplied, expected) {
		t.Errorf("expected %v but got %v", expected, supplied)
	}
}

func TestPaletteDefaults(t *testing.T) {
	p := NewPalette()

	for _, pair := range []struct {
		index int
		name  string
	}{
		{White, "white"},
		{Black, "black"},
		{Blue, "blue"},
		{Green, "green"},
		{Red, "red"},
		{Brown, "brown"},
		{Purple, "purple"},
		{Orange, "orange"},
		{Yellow, "yellow"},
		{LightGreen, "lightgreen"},
		{Cyan, "cyan"},
		{LightCyan, "lightcyan"},
		{LightBlue, "lightblue"},
		{Pink, "pink"},
		{Gray, "gray"},
		{LightGray, "lightgray"},
	} {
		assertEqual(p.ColorName(pair.index, "fallback"), pair.name, t)
	}
}

func TestPaletteFallback(t *testing.T) {
	p := NewPalette()

	assertEqual(p.ColorName(16, "transparent"), "transparent", t)
	assertEqual(p.ColorName(99, "black"), "black", t)
	assertEqual(p.ColorName(-1, "black"), "black", t)
}

func TestPaletteSetColorName(t *testing.T) {
	p := NewPalette()

	p.SetColorName(Red, "#ff0000")
	assertEqual(p.ColorName(Red, "black"), "#ff0000", t)

	// mappings outside the standard range are allowed
	p.SetColorName(42, "teal")
	assertEqual(p.ColorName(42, "black"), "teal", t)
}

func TestPaletteZeroValue(t *testing.T) {
	var p Palette
	assertEqual(p.ColorName(Red, "black"), "black", t)

	p.SetColorName(Red, "crimson")
	assertEqual(p.ColorName(Red, "black"), "crimson", t)
}

func TestPaletteNil(t *testing.T) {
	var p *Palette
	assertEqual(p.ColorName(Red, "black"), "black", t)
}
