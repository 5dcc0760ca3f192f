package scale

import "math"

// Ticks returns roughly n evenly spaced tick values inside the domain.
// Linear axes step by 1, 2 or 5 times a power of ten; log axes use powers of
// ten.
func (a *Axis) Ticks(n int) []float64 {
	if n < 1 {
		n = 1
	}
	if a.typ == Log {
		return logTicks(a.domainMin, a.domainMax)
	}
	if a.domainMin == a.domainMax {
		return []float64{a.domainMin}
	}

	step := niceStep((a.domainMax - a.domainMin) / float64(n))
	start := math.Ceil(a.domainMin/step) * step
	var ticks []float64
	for v := start; v <= a.domainMax+step*1e-9; v += step {
		// Snap to the step grid to avoid 0.30000000000000004 style drift.
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return ticks
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch r := raw / mag; {
	case r <= 1:
		return mag
	case r <= 2:
		return 2 * mag
	case r <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func logTicks(lo, hi float64) []float64 {
	var ticks []float64
	const eps = 1e-9
	for e := math.Ceil(math.Log10(lo) - eps); e <= math.Floor(math.Log10(hi)+eps); e++ {
		ticks = append(ticks, math.Pow(10, e))
	}
	return ticks
}
