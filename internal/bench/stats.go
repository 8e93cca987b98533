package bench

import "math"

type FloatStats struct {
	N    int
	Best float64 // минимум: стоимость и время минимизируются
	Mean float64
	Std  float64 // выборочное отклонение (n-1)
}

type IntStats struct {
	N    int
	Best int
	Mean float64
	Std  float64
}

func CalcFloatStats(values []float64) FloatStats {
	return calcStats(values)
}

func CalcIntStats(values []int) IntStats {
	fs := calcStats(values)
	s := IntStats{N: fs.N, Mean: fs.Mean, Std: fs.Std}
	if s.N > 0 {
		s.Best = int(fs.Best)
	}
	return s
}

func calcStats[T int | float64](values []T) FloatStats {
	s := FloatStats{N: len(values)}
	if s.N == 0 {
		return s
	}

	best := values[0]
	sum := 0.0
	for _, v := range values {
		if v < best {
			best = v
		}
		sum += float64(v)
	}
	mean := sum / float64(s.N)

	variance := 0.0
	if s.N >= 2 {
		for _, v := range values {
			d := float64(v) - mean
			variance += d * d
		}
		variance /= float64(s.N - 1)
	}

	s.Best = float64(best)
	s.Mean = mean
	s.Std = math.Sqrt(variance)
	return s
}
