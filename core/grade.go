package core

import "github.com/AnderssonElin/nba-dashboard/schema"

// GradeForScore maps a total score to a letter grade using the given scale.
// The scale must be sorted best grade first; a boundary value belongs to the
// higher grade. Scores below every threshold earn a D.
func GradeForScore(scale []schema.GradeStep, totalScore float64) schema.Grade {
	for _, step := range scale {
		if totalScore >= step.Min {
			return step.Grade
		}
	}
	return schema.GradeD
}
