// Package dot derives the colors of the 19-dot identicon from a seed.
//
// The pipeline is a pure function: the seed is hashed into an id vector,
// one id byte fixes the saturation of a 64-color palette, two more pick one
// of seven coloring schemes and another rotates the scheme's outer ring.
// All package-level tables are read-only, so every function here is safe
// for concurrent use.
package dot

import "image/color"

// Dots is the number of circles in an icon.
const Dots = 19

// center is the index of the middle dot; it never rotates.
const center = Dots - 1

// Icon is the result of a derivation. Colors[i] belongs at layout
// position i; Foreground fills the circle behind them.
type Icon struct {
	Foreground color.NRGBA
	Colors     [Dots]color.NRGBA
}

// Derivation keeps every intermediate value of one run.
type Derivation struct {
	ID         ID
	Saturation float64
	Palette    Palette
	Selector   uint32
	Scheme     Scheme
	Rotation   int
	Icon       Icon
}

// Derive returns the icon colors for seed. It accepts any input,
// including an empty one.
func Derive(seed []byte) Icon {
	return Explain(seed).Icon
}

// Explain runs the derivation and returns all intermediates.
func Explain(seed []byte) Derivation {
	id := NewID(seed)
	sat := id.Saturation()
	palette := NewPalette(id, sat)
	scheme := SelectScheme(id)
	rot := id.Rotation()

	return Derivation{
		ID:         id,
		Saturation: sat,
		Palette:    palette,
		Selector:   id.Selector() % totalFreq,
		Scheme:     scheme,
		Rotation:   rot,
		Icon: Icon{
			Foreground: Foreground,
			Colors:     pick(rot, scheme, &palette),
		},
	}
}

func pick(rot int, s Scheme, p *Palette) [Dots]color.NRGBA {
	var out [Dots]color.NRGBA
	for i := range out {
		n := center
		if i < center {
			n = (i + rot) % center
		}
		out[i] = p[s.Colors[n]]
	}
	return out
}
