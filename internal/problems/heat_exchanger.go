package problems

func heatExchangerNetworkDesignCase1() Definition {
	return Definition{
		Name:  "HeatExchangerNetworkDesignCase1Problem",
		Lower: []float64{0, 0, 0, 0, 1000, 0, 100, 100, 100},
		Upper: []float64{10, 200, 100, 200, 2000000, 600, 600, 600, 900},
		Objective: func(x []float64) float64 {
			return 35*pow(x[0], 0.6) + 35*pow(x[1], 0.6)
		},
		Equality: func(x []float64) []float64 {
			return []float64{
				200*x[0]*x[3] - x[2],
				200*x[1]*x[5] - x[4],
				x[2] - 10000*(x[6]-100),
				x[4] - 10000*(300-x[6]),
				x[2] - 10000*(600-x[7]),
				x[4] - 10000*(900-x[8]),
				x[3]*log(x[7]-100) - x[3]*log(600-x[6]) - x[7] + x[6] + 500,
				x[5]*log(x[8]-x[6]) - x[5]*log(600) - x[8] + x[6] + 600,
			}
		},
	}
}

func heatExchangerNetworkDesignCase2() Definition {
	return Definition{
		Name:  "HeatExchangerNetworkDesignCase2Problem",
		Lower: []float64{1e4, 1e4, 1e4, 0, 0, 0, 100, 100, 100, 100, 100},
		Upper: []float64{8.19e5, 1.131e6, 2.05e6, 0.05074, 0.05074, 0.05074, 200, 300, 300, 300, 400},
		Objective: func(x []float64) float64 {
			return pow(x[0]/(120*x[3]), 0.6) +
				pow(x[1]/(80*x[4]), 0.6) +
				pow(x[2]/(40*x[5]), 0.6)
		},
		Equality: func(x []float64) []float64 {
			return []float64{
				x[0] - 1e4*(x[6]-100),
				x[1] - 1e4*(x[7]-x[6]),
				x[2] - 1e4*(500-x[7]),
				x[0] - 1e4*(300-x[8]),
				x[1] - 1e4*(400-x[9]),
				x[2] - 1e4*(600-x[10]),
				x[3]*log(x[8]-100) - x[3]*log(300-x[6]) - x[8] - x[6] + 400,
				x[4]*log(x[9]-x[6]) - x[4]*log(400-x[7]) - x[9] + x[6] - x[7] + 400,
				x[5]*log(x[10]-x[7]) - x[5]*log(100) - x[10] + x[7] + 100,
			}
		},
	}
}
