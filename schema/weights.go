package schema

// WeightConfig holds the component weights used to score a game. It is
// built once during config validation and must not be mutated afterwards,
// since analysis workers read it concurrently.
type WeightConfig struct {
	PeriodWeights  map[int]float64 // Per regulation period (1-4)
	MaxPeriodTotal float64         // Cap on the summed period contribution
	ExtraPeriod    float64
	LeadChange     float64
	BuzzerBeater   float64
	FG3Pct         float64
	Star           float64
	Margin         float64
}

// DefaultWeightConfig returns the default weight configuration. The
// component weights plus MaxPeriodTotal sum to 1.0, so a perfect game
// scores 100.
func DefaultWeightConfig() WeightConfig {
	return WeightConfig{
		PeriodWeights:  GetDefaultPeriodWeights(),
		MaxPeriodTotal: 0.50,
		ExtraPeriod:    0.05,
		LeadChange:     0.05,
		BuzzerBeater:   0.00,
		FG3Pct:         0.05,
		Star:           0.10,
		Margin:         0.25,
	}
}

// Sum returns the maximum total weight reachable by a game: the period
// cap plus every other component weight.
func (w WeightConfig) Sum() float64 {
	return w.MaxPeriodTotal + w.ExtraPeriod + w.LeadChange + w.BuzzerBeater +
		w.FG3Pct + w.Star + w.Margin
}

// GradeStep maps an inclusive lower score bound to a grade.
type GradeStep struct {
	Min   float64
	Grade Grade
}

// DefaultGradeScale returns the grade thresholds, best grade first.
// A score below every threshold earns a D.
func DefaultGradeScale() []GradeStep {
	return []GradeStep{
		{Min: 93, Grade: GradeAPlus},
		{Min: 85, Grade: GradeA},
		{Min: 80, Grade: GradeBPlus},
		{Min: 75, Grade: GradeB},
		{Min: 70, Grade: GradeCPlus},
		{Min: 65, Grade: GradeC},
	}
}

// ComponentWeight returns the weight for a non-period breakdown key.
func (w WeightConfig) ComponentWeight(key BreakdownKey) float64 {
	switch key {
	case BreakdownExtra:
		return w.ExtraPeriod
	case BreakdownLeadChanges:
		return w.LeadChange
	case BreakdownBuzzer:
		return w.BuzzerBeater
	case BreakdownFG3:
		return w.FG3Pct
	case BreakdownStar:
		return w.Star
	case BreakdownMargin:
		return w.Margin
	default:
		return 0
	}
}
