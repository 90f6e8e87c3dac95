package engine

import (
	"fmt"
	"math"

	"govista/domain/dataset"
)

// residualEpsilon bounds the residual sum below which a zero-variance fit
// still counts as perfect.
const residualEpsilon = 1e-9

// FitRegression fits an ordinary least squares line through the rows where
// both columns hold valid numbers. Returns nil when fewer than two points
// remain or the fit degenerates; absence means "not applicable".
func FitRegression(table *dataset.Table, xCol, yCol string) *dataset.RegressionResult {
	xs, ys := pairedValues(table, xCol, yCol)
	n := float64(len(xs))
	if len(xs) < 2 {
		return nil
	}

	sumX, sumY, sumXY, sumX2, sumY2 := 0.0, 0.0, 0.0, 0.0, 0.0
	minX, maxX := xs[0], xs[0]
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
		sumY2 += ys[i] * ys[i]
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		// Constant x: no line to fit.
		return nil
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	ssRes := 0.0
	for i := range xs {
		residual := ys[i] - (slope*xs[i] + intercept)
		ssRes += residual * residual
	}
	ssTot := sumY2 - sumY*sumY/n

	var rSquared float64
	if ssTot == 0 {
		// Constant y. A perfect fit earns R²=1; anything else has no
		// defined goodness-of-fit, so the regression is unavailable.
		if ssRes > residualEpsilon {
			return nil
		}
		rSquared = 1
	} else {
		rSquared = 1 - ssRes/ssTot
	}
	if math.IsNaN(rSquared) || math.IsInf(rSquared, 0) {
		return nil
	}

	return &dataset.RegressionResult{
		XColumn:   xCol,
		YColumn:   yCol,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  rSquared,
		Equation:  formatEquation(slope, intercept),
		Trendline: [2]dataset.TrendPoint{
			{X: minX, Y: slope*minX + intercept},
			{X: maxX, Y: slope*maxX + intercept},
		},
	}
}

func formatEquation(slope, intercept float64) string {
	sign := "+"
	if intercept < 0 {
		sign = "-"
	}
	return fmt.Sprintf("y = %.2fx %s %.2f", slope, sign, math.Abs(intercept))
}
