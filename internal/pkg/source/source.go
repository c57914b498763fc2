/*
source.go The capability shared by every power source in a panel network. Panels,
parallel strings and series strings all implement Source and may be nested freely.
*/

package source

// Ceiling is the voltage or current a source reports when nothing constrains it.
// It seeds the minimum fold of a composite, so an empty composite nested inside
// another composite never lowers the result. It is larger than any real panel rating.
const Ceiling = 1e6

// Source is anything that supplies current (amps) and voltage (volts).
type Source interface {
	Current() float64
	Voltage() float64
}

// Quantity selects one electrical reading from a Source.
type Quantity func(Source) float64

// Current reads the current of s.
func Current(s Source) float64 {
	return s.Current()
}

// Voltage reads the voltage of s.
func Voltage(s Source) float64 {
	return s.Voltage()
}

// Power returns the power delivered by s in watts.
func Power(s Source) float64 {
	return s.Current() * s.Voltage()
}

// Sum adds q over sources in order, starting from zero.
func Sum(sources []Source, q Quantity) float64 {
	sum := 0.0
	for _, s := range sources {
		sum += q(s)
	}
	return sum
}

// Min folds q over sources with the minimum, starting from seed.
// An empty slice returns seed.
func Min(sources []Source, q Quantity, seed float64) float64 {
	lowest := seed
	for _, s := range sources {
		if v := q(s); v < lowest {
			lowest = v
		}
	}
	return lowest
}
