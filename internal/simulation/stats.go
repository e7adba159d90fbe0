package simulation

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Proportion is a point estimate with a two-sided confidence interval.
type Proportion struct {
	Hat float64 `json:"hat"`
	Lo  float64 `json:"lo"`
	Hi  float64 `json:"hi"`
}

// Moments are the sample mean and standard deviation of a per-pack quantity.
type Moments struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// ClopperPearson returns the exact binomial interval for k successes in n
// trials at the given confidence level.
func ClopperPearson(k, n int, confidence float64) Proportion {
	if n <= 0 {
		return Proportion{}
	}
	alpha := 1 - confidence
	p := Proportion{Hat: float64(k) / float64(n)}

	if k == 0 {
		p.Lo = 0
	} else {
		b := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
		p.Lo = b.Quantile(alpha / 2)
	}
	if k == n {
		p.Hi = 1
	} else {
		b := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
		p.Hi = b.Quantile(1 - alpha/2)
	}
	return p
}

func moments(xs []float64) Moments {
	switch len(xs) {
	case 0:
		return Moments{}
	case 1:
		return Moments{Mean: xs[0]}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Moments{Mean: mean, StdDev: std}
}
