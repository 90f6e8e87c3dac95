package profile

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"govista/domain/dataset"
)

// AnalyzeDistribution computes distribution-shape markers for a numeric
// column: skewness, kurtosis and a cheap normality approximation. Populated
// only on deep-scan requests; too small a sample returns nil.
func AnalyzeDistribution(values []float64) *dataset.DistributionMarkers {
	if len(values) < 4 {
		return nil
	}

	mean, err := stats.Mean(stats.Float64Data(values))
	if err != nil {
		return nil
	}
	stdDev, err := stats.StandardDeviation(stats.Float64Data(values))
	if err != nil || stdDev == 0 {
		return nil
	}

	skewness := sampleSkewness(values, mean, stdDev)
	kurtosis := sampleKurtosis(values, mean, stdDev)
	isNormal, pValue := approximateNormality(skewness, kurtosis)

	return &dataset.DistributionMarkers{
		Skewness:   skewness,
		Kurtosis:   kurtosis,
		IsNormal:   isNormal,
		NormalityP: pValue,
	}
}

// sampleSkewness computes the adjusted Fisher-Pearson coefficient
func sampleSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 {
		return 0
	}

	n := float64(len(data))
	sumCubed := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes bias-corrected total kurtosis (3 for a normal)
func sampleKurtosis(data []float64, mean, stdDev float64) float64 {
	n := float64(len(data))
	sumFourth := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	excess := sumFourth/n - 3
	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excess = excess*correction + 6/(n+1)
	}
	return excess + 3
}

// approximateNormality scores deviation from normal shape with a combined
// skewness/kurtosis statistic against a chi-squared distribution. A rough
// screen, not a substitute for a proper Shapiro-Wilk test.
func approximateNormality(skewness, kurtosis float64) (bool, float64) {
	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2
	chiDist := distuv.ChiSquared{K: 2}
	pValue := 1 - chiDist.CDF(testStat*testStat)
	return pValue > 0.05, pValue
}
