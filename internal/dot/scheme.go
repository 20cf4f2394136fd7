// scheme.go
package dot

import "fmt"

// Scheme maps the 19 dot positions to palette indices. Freq is the
// scheme's weight during selection.
type Scheme struct {
	Name   string
	Freq   uint16
	Colors [Dots]uint8
}

// schemes is ordered; selection walks it front to back. It is never
// written after init, so totalFreq stays in step with it.
var schemes = [...]Scheme{
	{Name: "target", Freq: 1, Colors: [Dots]uint8{0, 28, 0, 0, 28, 0, 0, 28, 0, 0, 28, 0, 0, 28, 0, 0, 28, 0, 1}},
	{Name: "cube", Freq: 20, Colors: [Dots]uint8{0, 1, 3, 2, 4, 3, 0, 1, 3, 2, 4, 3, 0, 1, 3, 2, 4, 3, 5}},
	{Name: "quazar", Freq: 16, Colors: [Dots]uint8{1, 2, 3, 1, 2, 4, 5, 5, 4, 1, 2, 3, 1, 2, 4, 5, 5, 4, 0}},
	{Name: "flower", Freq: 32, Colors: [Dots]uint8{0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2, 3}},
	{Name: "cyclic", Freq: 32, Colors: [Dots]uint8{0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5, 0, 1, 2, 3, 4, 5, 6}},
	{Name: "vmirror", Freq: 128, Colors: [Dots]uint8{0, 1, 2, 3, 4, 5, 3, 4, 2, 0, 1, 6, 7, 8, 9, 7, 8, 6, 10}},
	{Name: "hmirror", Freq: 128, Colors: [Dots]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 8, 6, 7, 5, 3, 4, 2, 11}},
}

var totalFreq = func() uint32 {
	var sum uint32
	for _, s := range schemes {
		sum += uint32(s.Freq)
	}
	return sum
}()

// Schemes returns a copy of the scheme table in selection order.
func Schemes() [len(schemes)]Scheme {
	return schemes
}

// TotalFreq is the sum of all scheme weights.
func TotalFreq() uint32 {
	return totalFreq
}

// SelectScheme picks the scheme for id.
func SelectScheme(id ID) Scheme {
	return schemeAt(id.Selector() % totalFreq)
}

// SchemeByName looks up a scheme in the table.
func SchemeByName(name string) (Scheme, bool) {
	for _, s := range schemes {
		if s.Name == name {
			return s, true
		}
	}
	return Scheme{}, false
}

// schemeAt requires d < totalFreq.
func schemeAt(d uint32) Scheme {
	var cum uint32
	for _, s := range schemes {
		cum += uint32(s.Freq)
		if d < cum {
			return s
		}
	}
	panic(fmt.Sprintf("dot: selector %d outside scheme table (total %d)", d, totalFreq))
}
