package problems

func haverlyPooling() Definition {
	return Definition{
		Name:  "HaverlyPoolingProblem",
		Lower: filled(9, 0),
		Upper: []float64{100, 200, 100, 100, 100, 100, 200, 100, 200},
		Objective: func(x []float64) float64 {
			return -(9*x[0] + 15*x[1] - 6*x[2] - 16*x[3] - 10*(x[4]+x[5]))
		},
		Inequality: func(x []float64) []float64 {
			return []float64{
				x[8]*x[6] + 2*x[4] - 2.5*x[0],
				x[8]*x[7] + 2*x[5] - 1.5*x[1],
			}
		},
		Equality: func(x []float64) []float64 {
			return []float64{
				x[6] + x[7] - x[2] - x[3],
				x[0] - x[6] - x[4],
				x[1] - x[7] - x[5],
				x[8]*x[6] + x[8]*x[7] - 3*x[2] - x[3],
			}
		},
	}
}

// blendingPoolingSeparation has 20 flow variables followed by 18 split
// fractions.
func blendingPoolingSeparation() Definition {
	upper := make([]float64, 0, 38)
	upper = append(upper, 90, 150, 90, 150)
	upper = append(upper, filled(8, 90)...)
	upper = append(upper, filled(8, 150)...)
	upper = append(upper, filled(18, 1)...)

	return Definition{
		Name:  "BlendingPoolingSeparationProblem",
		Lower: filled(38, 0),
		Upper: upper,
		Objective: func(x []float64) float64 {
			return 0.9979 + 0.00432*x[4] + 0.01517*x[12]
		},
		Equality: func(x []float64) []float64 {
			const third = 1.0 / 3.0
			return []float64{
				x[0] + x[1] + x[2] + x[3] - 300,
				x[5] - x[6] - x[7],
				x[8] - x[9] - x[10] - x[11],
				x[13] - x[14] - x[15] - x[16],
				x[17] - x[18] - x[19],
				x[4]*x[20] - x[5]*x[21] - x[8]*x[22],
				x[4]*x[23] - x[5]*x[24] - x[8]*x[25],
				x[4]*x[26] - x[5]*x[27] - x[8]*x[28],
				x[12]*x[29] - x[13]*x[30] - x[17]*x[31],
				x[12]*x[32] - x[13]*x[33] - x[17]*x[34],
				x[12]*x[35] - x[13]*x[36] - x[17]*x[37],
				third*x[0] + x[14]*x[30] - x[4]*x[20],
				third*x[0] + x[14]*x[33] - x[4]*x[23],
				third*x[0] + x[14]*x[36] - x[4]*x[26],
				third*x[1] + x[9]*x[22] - x[12]*x[29],
				third*x[1] + x[9]*x[25] - x[12]*x[32],
				third*x[1] + x[9]*x[28] - x[12]*x[35],
				third*x[2] + x[6]*x[21] + x[10]*x[22] + x[15]*x[30] + x[18]*x[31] - 30,
				third*x[2] + x[6]*x[24] + x[10]*x[25] + x[15]*x[33] + x[18]*x[34] - 50,
				third*x[2] + x[6]*x[27] + x[10]*x[28] + x[15]*x[36] + x[18]*x[37] - 30,
				x[20] + x[23] + x[26] - 1,
				x[21] + x[24] + x[27] - 1,
				x[22] + x[25] + x[28] - 1,
				x[29] + x[32] + x[35] - 1,
				x[30] + x[33] + x[36] - 1,
				x[31] + x[34] + x[37] - 1,
				x[24],
				x[27],
				x[22],
				x[36],
				x[31],
				x[34],
			}
		},
	}
}

// propaneIsobutaneNButaneNonsharpSeparation has 20 flow variables, 28
// composition and split variables, six of which are component flows.
func propaneIsobutaneNButaneNonsharpSeparation() Definition {
	upper := make([]float64, 0, 48)
	upper = append(upper, filled(4, 150)...)
	upper = append(upper, filled(16, 300)...)
	upper = append(upper, filled(28, 1)...)
	// Component flows (x25, x27, x29, x32, x35, x37).
	for _, i := range []int{24, 26, 28, 31, 34, 36} {
		upper[i] = 100
	}

	c := [6][2]float64{
		{0.23947, 0.75835},
		{-0.0139904, -0.0661588},
		{0.0093514, 0.0338147},
		{0.0077308, 0.0373349},
		{-0.0005719, 0.0016371},
		{0.0042656, 0.0288996},
	}

	return Definition{
		Name:  "PropaneIsobutaneNButaneNonsharpSeparationProblem",
		Lower: filled(48, 0),
		Upper: upper,
		Objective: func(x []float64) float64 {
			return c[0][0] + (c[1][0]+c[2][0]*x[23]+c[3][0]*x[27]+c[4][0]*x[32]+c[5][0]*x[33])*x[4] +
				c[0][1] + (c[1][1]+c[2][1]*x[25]+c[3][1]*x[30]+c[4][1]*x[37]+c[5][1]*x[38])*x[12]
		},
		Equality: func(x []float64) []float64 {
			const third = 0.333
			return []float64{
				x[0] + x[1] + x[2] + x[3] - 300,
				x[5] - x[6] - x[7],
				x[8] - x[9] - x[10] - x[11],
				x[13] - x[14] - x[15] - x[16],
				x[17] - x[18] - x[19],
				x[5]*x[20] - x[23]*x[24],
				x[13]*x[21] - x[25]*x[26],
				x[8]*x[22] - x[27]*x[28],
				x[17]*x[29] - x[30]*x[31],
				x[24] - x[4]*x[32],
				x[28] - x[4]*x[33],
				x[34] - x[4]*x[35],
				x[36] - x[12]*x[37],
				x[26] - x[12]*x[38],
				x[31] - x[12]*x[39],
				x[24] - x[5]*x[20] - x[8]*x[40],
				x[28] - x[5]*x[41] - x[8]*x[22],
				x[34] - x[5]*x[42] - x[8]*x[43],
				x[36] - x[13]*x[44] - x[17]*x[45],
				x[26] - x[13]*x[21] - x[17]*x[46],
				x[31] - x[13]*x[47] - x[17]*x[29],
				third*x[0] + x[14]*x[44] - x[24],
				third*x[0] + x[14]*x[21] - x[28],
				third*x[0] + x[14]*x[47] - x[34],
				third*x[1] + x[9]*x[40] - x[36],
				third*x[1] + x[9]*x[22] - x[26],
				third*x[1] + x[9]*x[43] - x[31],
				third*x[2] + x[6]*x[20] + x[10]*x[40] + x[15]*x[44] + x[18]*x[45] - 30,
				third*x[2] + x[6]*x[41] + x[10]*x[22] + x[15]*x[21] + x[18]*x[46] - 50,
				third*x[2] + x[6]*x[42] + x[10]*x[43] + x[15]*x[47] + x[18]*x[29] - 30,
				x[32] + x[33] + x[35] - 1,
				x[20] + x[41] + x[42] - 1,
				x[40] + x[22] + x[43] - 1,
				x[37] + x[38] + x[39] - 1,
				x[44] + x[21] + x[47] - 1,
				x[45] + x[46] + x[29] - 1,
				x[42],
				x[45],
			}
		},
	}
}
