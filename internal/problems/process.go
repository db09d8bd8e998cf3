package problems

func optimalOperationAlkylationUnit() Definition {
	return Definition{
		Name:  "OptimalOperationAlkylationUnitProblem",
		Lower: []float64{1000, 0, 2000, 0, 0, 0, 0},
		Upper: []float64{2000, 100, 4000, 100, 100, 20, 200},
		Objective: func(x []float64) float64 {
			return -(1.715*x[0] + 0.035*x[0]*x[5] + 4.0565*x[2] + 10*x[1] - 0.063*x[2]*x[4])
		},
		Inequality: func(x []float64) []float64 {
			return []float64{
				0.0059553571*sq(x[5])*x[0] + 0.88392857*x[2] - 0.1175625*x[5]*x[0] - x[0],
				1.1088*x[0] + 0.1303533*x[0]*x[5] - 0.0066033*x[0]*sq(x[5]) - x[2],
				6.66173269*sq(x[5]) + 172.39878*x[4] - 56.596669*x[3] - 191.20592*x[5] - 10000,
				1.08702*x[5] + 0.32175*x[3] - 0.03762*sq(x[5]) - x[4] + 56.85075,
				0.006198*x[6]*x[3]*x[2] + 2462.3121*x[1] - 25.125634*x[1]*x[3] - x[2]*x[3],
				161.18996*x[2]*x[3] + 5000*x[1]*x[3] - 489510*x[1] - x[2]*x[3]*x[6],
				0.33*x[6] - x[4] + 44.333333,
				0.022556*x[4] - 0.007595*x[6] - 1,
				0.00061*x[2] - 0.0005*x[0] - 1,
				0.819672*x[0] - x[2] + 0.819672,
				24500*x[1] - 250*x[1]*x[3] - x[2]*x[3],
				1020.4082*x[3]*x[1] + 1.2244898*x[2]*x[3] - 100000*x[1],
				6.25*x[0]*x[5] + 6.25*x[0] - 7.625*x[2] - 100000,
				1.22*x[2] - x[5]*x[0] - x[0] + 1,
			}
		},
	}
}

func reactorNetworkDesign() Definition {
	const (
		k1 = 0.09755988
		k2 = 0.99 * k1
		k3 = 0.0391908
		k4 = 0.9 * k3
	)
	return Definition{
		Name:  "ReactorNetworkDesignProblem",
		Lower: []float64{0, 0, 0, 0, 1e-5, 1e-5},
		Upper: []float64{1, 1, 1, 1, 16, 16},
		Objective: func(x []float64) float64 {
			return -x[3]
		},
		Inequality: func(x []float64) []float64 {
			return []float64{sqrt(x[4]) + sqrt(x[5]) - 4}
		},
		Equality: func(x []float64) []float64 {
			return []float64{
				x[0] + k1*x[1]*x[4] - 1,
				x[1] - x[0] + k2*x[1]*x[5],
				x[2] + x[0] + k3*x[2]*x[4] - 1,
				x[3] - x[2] + x[1] - x[0] + k4*x[3]*x[5],
			}
		},
	}
}

func processSynthesis01() Definition {
	return Definition{
		Name:  "ProcessSynthesis01Problem",
		Lower: []float64{0, 0},
		Upper: []float64{1.6, 1},
		Objective: func(x []float64) float64 {
			return 2*x[0] + round(x[1])
		},
		Inequality: func(x []float64) []float64 {
			y := round(x[1])
			return []float64{
				1.25 - sq(x[0]) - y,
				x[0] + y - 1.6,
			}
		},
	}
}

func processSynthesis02() Definition {
	return Definition{
		Name:  "ProcessSynthesis02Problem",
		Lower: filled(7, 0),
		Upper: []float64{100, 100, 100, 1, 1, 1, 1},
		Objective: func(x []float64) float64 {
			y1, y2, y3, y4 := round(x[3]), round(x[4]), round(x[5]), round(x[6])
			return sq(y1-1) + sq(y2-1) + sq(y3-1) - log(y4+1) +
				sq(x[0]-1) + sq(x[1]-2) + sq(x[2]-3)
		},
		Inequality: func(x []float64) []float64 {
			y1, y2, y3, y4 := round(x[3]), round(x[4]), round(x[5]), round(x[6])
			return []float64{
				x[0] + x[1] + x[2] + y1 + y2 + y3 - 5,
				sq(y3) + sq(x[0]) + sq(x[1]) + sq(x[2]) - 5.5,
				x[0] + y1 - 1.2,
				x[1] + y2 - 1.8,
				x[2] + y3 - 2.5,
				x[0] + y4 - 1.2,
				sq(y2) + sq(x[1]) - 1.64,
				sq(y3) + sq(x[2]) - 4.25,
				sq(y2) + sq(x[2]) - 4.64,
			}
		},
	}
}

func processDesign() Definition {
	coefficients := func(x []float64) (c1, c2, c3 float64) {
		y1, y2 := round(x[3]), round(x[4])
		c1 = 85.334407 + 0.0056858*y2*x[2] + 0.0006262*y1*x[1] - 0.0022053*x[0]*x[2]
		c2 = 80.51249 + 0.0071317*y2*x[2] + 0.0029955*y1*y2 + 0.0021813*sq(x[0])
		c3 = 9.300961 + 0.0047026*x[0]*x[2] + 0.0012547*y1*x[0] + 0.0019085*x[0]*x[1]
		return c1, c2, c3
	}
	return Definition{
		Name:  "ProcessDesignProblem",
		Lower: []float64{27, 27, 27, 78, 33},
		Upper: []float64{45, 45, 45, 102, 45},
		Objective: func(x []float64) float64 {
			y1 := round(x[3])
			return -5.357854*sq(x[0]) - 0.835689*y1*x[2] - 37.29329*y1 + 40792.141
		},
		Inequality: func(x []float64) []float64 {
			c1, c2, c3 := coefficients(x)
			return []float64{c1 - 92, -c1, c2 - 110, 90 - c2, c3 - 25, 20 - c3}
		},
	}
}

func processSynthesisAndDesign() Definition {
	return Definition{
		Name:  "ProcessSynthesisAndDesignProblem",
		Lower: []float64{0.5, 0.5, 0},
		Upper: []float64{1.4, 1.4, 1},
		Objective: func(x []float64) float64 {
			return -round(x[2]) + 2*x[0] + x[1]
		},
		Inequality: func(x []float64) []float64 {
			return []float64{-x[0] + x[1] + round(x[2])}
		},
		Equality: func(x []float64) []float64 {
			return []float64{x[0] - 2*exp(-x[1])}
		},
	}
}

func processFlowSheeting() Definition {
	return Definition{
		Name:  "ProcessFlowSheetingProblem",
		Lower: []float64{0.2, -2.22554, 0},
		Upper: []float64{1, -1, 1},
		Objective: func(x []float64) float64 {
			return -0.7*round(x[2]) + 5*sq(x[0]-0.5) + 0.8
		},
		Inequality: func(x []float64) []float64 {
			y := round(x[2])
			return []float64{
				-exp(x[0]-0.2) - x[1],
				x[1] + 1.1*y + 1,
				x[0] - y - 0.2,
			}
		},
	}
}

func twoReactor() Definition {
	unpack := func(x []float64) (x1, x2, v1, v2, y1, y2, xt, z1, z2 float64) {
		x1, x2, v1, v2 = x[0], x[1], x[2], x[3]
		y1, y2, xt = round(x[4]), round(x[5]), x[6]
		z1 = 0.9 * (1 - exp(-0.5*v1)) * x1
		z2 = 0.8 * (1 - exp(-0.4*v2)) * x2
		return
	}
	return Definition{
		Name:  "TwoReactorProblem",
		Lower: filled(7, 0),
		Upper: []float64{20, 20, 10, 10, 1, 1, 100},
		Objective: func(x []float64) float64 {
			_, _, v1, v2, y1, y2, xt, _, _ := unpack(x)
			return 7.5*y1 + 5.5*y2 + 7*v1 + 6*v2 + 5*xt
		},
		Inequality: func(x []float64) []float64 {
			x1, x2, v1, v2, y1, y2, _, _, _ := unpack(x)
			return []float64{v1 - 10*y1, v2 - 10*y2, x1 - 20*y1, x2 - 20*y2}
		},
		Equality: func(x []float64) []float64 {
			x1, x2, _, _, y1, y2, xt, z1, z2 := unpack(x)
			return []float64{
				y1 + y2 - 1,
				z1 + z2 - 10,
				x1 + x2 - xt,
				z1*y1 + z2*y2 - 10,
			}
		},
	}
}

func multiProductBatchPlant() Definition {
	const (
		horizon = 6000.0
		alpha   = 250.0
		beta    = 0.6
		q1      = 40000.0
		q2      = 20000.0
	)
	size := [2][3]float64{{2, 3, 4}, {4, 6, 3}}
	proc := [2][3]float64{{8, 20, 8}, {16, 4, 4}}

	return Definition{
		Name:  "MultiProductBatchPlantProblem",
		Lower: []float64{1, 1, 1, 250, 250, 250, 6, 4, 40, 10},
		Upper: []float64{3, 3, 3, 2500, 2500, 2500, 20, 16, 700, 450},
		Objective: func(x []float64) float64 {
			n1, n2, n3 := round(x[0]), round(x[1]), round(x[2])
			return alpha * (n1*pow(x[3], beta) + n2*pow(x[4], beta) + n3*pow(x[5], beta))
		},
		Inequality: func(x []float64) []float64 {
			n := [3]float64{round(x[0]), round(x[1]), round(x[2])}
			v := [3]float64{x[3], x[4], x[5]}
			tl1, tl2, b1, b2 := x[6], x[7], x[8], x[9]

			g := make([]float64, 0, 10)
			g = append(g, q1*tl1/b1+q2*tl2/b2-horizon)
			for j := 0; j < 3; j++ {
				g = append(g, size[0][j]*b1+size[1][j]*b2-v[j])
			}
			for j := 0; j < 3; j++ {
				g = append(g, proc[0][j]-n[j]*tl1)
			}
			for j := 0; j < 3; j++ {
				g = append(g, proc[1][j]-n[j]*tl2)
			}
			return g
		},
	}
}
