package scoring

import "math"

// Percentage converte uma métrica bruta em 0..100 por interpolação linear por partes.
// Valores não finitos ou negativos valem 0%.
func Percentage(value float64, ladder Ladder) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0
	}

	if ladder.LowerIsBetter {
		return lowerIsBetter(value, ladder)
	}
	return higherIsBetter(value, ladder)
}

func higherIsBetter(value float64, l Ladder) float64 {
	switch {
	case value >= l.Excellent:
		return 100
	case value >= l.Good:
		return interpolate(value, l.Good, l.Excellent, 75, 100)
	case value >= l.Medium:
		return interpolate(value, l.Medium, l.Good, 50, 75)
	case value >= l.Poor:
		return interpolate(value, l.Poor, l.Medium, 25, 50)
	case l.Poor > 0:
		return value / l.Poor * 25
	default:
		return 0
	}
}

func lowerIsBetter(value float64, l Ladder) float64 {
	switch {
	case value <= l.Excellent:
		return 100
	case value <= l.Good:
		return interpolate(value, l.Excellent, l.Good, 100, 75)
	case value <= l.Medium:
		return interpolate(value, l.Good, l.Medium, 75, 50)
	case value <= l.Poor:
		return interpolate(value, l.Medium, l.Poor, 50, 25)
	case l.Poor > 0:
		return math.Max(0, 25-(value-l.Poor)/l.Poor*25)
	default:
		return 0
	}
}

// interpolate mapeia value de [from, to] para [fromPct, toPct]
func interpolate(value, from, to, fromPct, toPct float64) float64 {
	if to == from {
		return toPct
	}
	return fromPct + (value-from)/(to-from)*(toPct-fromPct)
}

// WeightedScore converte um percentual no subscore ponderado; NaN vira 0
func WeightedScore(percentage, weight float64) int {
	score := math.Round(percentage / 100 * weight)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0
	}
	return int(score)
}

func valueOrNaN[T int | float64](v *T) float64 {
	if v == nil {
		return math.NaN()
	}
	return float64(*v)
}
