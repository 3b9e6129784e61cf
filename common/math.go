package common

// Base virtual resolution the simulation runs at. The renderer scales to the
// actual window.
const (
	BaseWidth  = 960
	BaseHeight = 540
	GroundY    = 420
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
