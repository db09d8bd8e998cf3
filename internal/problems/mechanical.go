package problems

import "math"

func weightMinimizationSpeedReducer() Definition {
	return Definition{
		Name:  "WeightMinimizationSpeedReducerProblem",
		Lower: []float64{2.6, 0.7, 17, 7.3, 7.3, 2.9, 5},
		Upper: []float64{3.6, 0.8, 28, 8.3, 8.3, 3.9, 5.5},
		Objective: func(x []float64) float64 {
			return 0.7854*x[0]*sq(x[1])*(3.3333*sq(x[2])+14.9334*x[2]-43.0934) -
				1.508*x[0]*(sq(x[5])+sq(x[6])) +
				7.477*(cube(x[5])+cube(x[6])) +
				0.7854*(x[3]*sq(x[5])+x[4]*sq(x[6]))
		},
		Inequality: func(x []float64) []float64 {
			return []float64{
				-x[0]*sq(x[1])*x[2] + 27,
				-x[0]*sq(x[1])*sq(x[2]) + 397.5,
				-x[1]*pow(x[5], 4)*x[2]/cube(x[3]) + 1.93,
				-x[1]*pow(x[6], 4)*x[2]/cube(x[4]) + 1.93,
				10/cube(x[5])*sqrt(16.91e6+sq(745*x[3]/(x[1]*x[2]))) - 1100,
				10/cube(x[6])*sqrt(157.5e6+sq(745*x[4]/(x[1]*x[2]))) - 850,
				x[1]*x[2] - 40,
				-x[0]/x[1] + 5,
				x[0]/x[1] - 12,
				1.5*x[5] - x[3] + 1.9,
				1.1*x[6] - x[4] + 1.9,
			}
		},
	}
}

func optimalDesignIndustrialRefrigerationSystem() Definition {
	return Definition{
		Name:  "OptimalDesignIndustrialRefrigerationSystemProblem",
		Lower: filled(14, 0.001),
		Upper: filled(14, 5),
		Objective: func(x []float64) float64 {
			return 63098.88*x[1]*x[3]*x[11] + 5441.5*sq(x[1])*x[11] +
				115055.5*pow(x[1], 1.664)*x[5] + 6172.27*sq(x[1])*x[5] +
				63098.88*x[0]*x[2]*x[10] + 5441.5*sq(x[0])*x[10] +
				115055.5*pow(x[0], 1.664)*x[4] + 6172.27*sq(x[0])*x[4] +
				140.53*x[0]*x[10] + 281.29*x[2]*x[10] + 70.26*sq(x[0]) +
				281.29*x[0]*x[2] + 281.29*sq(x[2]) +
				14437*pow(x[7], 1.8812)*pow(x[11], 0.3424)*x[9]*sq(x[0])*x[6]/(x[13]*x[8]) +
				20470.2*pow(x[6], 2.893)*pow(x[10], 0.316)*sq(x[0])
		},
		Inequality: func(x []float64) []float64 {
			return []float64{
				1.524/x[6] - 1,
				1.524/x[7] - 1,
				0.07789*x[0] - 2*x[8]/x[6] - 1,
				7.05305*sq(x[0])*x[9]/(x[8]*x[7]*x[1]*x[13]) - 1,
				0.0833*x[13]/x[12] - 1,
				47.136*pow(x[1], 0.333)*x[11]/x[9] - 1.333*x[7]*pow(x[12], 2.1195) +
					62.08*pow(x[12], 2.1195)*pow(x[7], 0.2)/(x[11]*x[9]) - 1,
				0.04771*x[9]*pow(x[7], 1.8812)*pow(x[11], 0.3424) - 1,
				0.0488*x[8]*pow(x[6], 1.893)*pow(x[10], 0.316) - 1,
				0.0099*x[0]/x[2] - 1,
				0.0193*x[1]/x[3] - 1,
				0.0298*x[0]/x[4] - 1,
				0.056*x[1]/x[5] - 1,
				2/x[8] - 1,
				2/x[9] - 1,
			}
		},
	}
}

func tensionCompressionSpringDesign() Definition {
	return Definition{
		Name:  "TensionCompressionSpringDesignProblem",
		Lower: []float64{0.05, 0.25, 2},
		Upper: []float64{2, 1.3, 15},
		Objective: func(x []float64) float64 {
			return sq(x[0]) * x[1] * (x[2] + 2)
		},
		Inequality: func(x []float64) []float64 {
			d, D, n := x[0], x[1], x[2]
			return []float64{
				1 - cube(D)*n/(71785*pow(d, 4)),
				(4*sq(D)-d*D)/(12566*(D*cube(d)-pow(d, 4))) + 1/(5108*sq(d)) - 1,
				1 - 140.45*d/(sq(D)*n),
				(d+D)/1.5 - 1,
			}
		},
	}
}

func pressureVesselDesign() Definition {
	// Shell and head thickness come in multiples of 0.0625 inch.
	thickness := func(v float64) float64 { return 0.0625 * round(v) }
	return Definition{
		Name:  "PressureVesselDesignProblem",
		Lower: []float64{0.51, 0.51, 10, 10},
		Upper: []float64{99.49, 99.49, 200, 200},
		Objective: func(x []float64) float64 {
			ts, th, r, l := thickness(x[0]), thickness(x[1]), x[2], x[3]
			return 0.6224*ts*r*l + 1.7781*th*sq(r) + 3.1661*sq(ts)*l + 19.84*sq(ts)*r
		},
		Inequality: func(x []float64) []float64 {
			ts, th, r, l := thickness(x[0]), thickness(x[1]), x[2], x[3]
			return []float64{
				-ts + 0.0193*r,
				-th + 0.00954*r,
				-pi*sq(r)*l - 4.0/3.0*pi*cube(r) + 1296000,
				l - 240,
			}
		},
	}
}

func weldedBeamDesign() Definition {
	const (
		load     = 6000.0
		length   = 14.0
		deltaMax = 0.25
		young    = 30e6
		shear    = 12e6
		tauMax   = 13600.0
		sigmaMax = 30000.0
	)
	return Definition{
		Name:  "WeldedBeamDesignProblem",
		Lower: []float64{0.125, 0.1, 0.1, 0.1},
		Upper: []float64{2, 10, 10, 2},
		Objective: func(x []float64) float64 {
			return 1.10471*sq(x[0])*x[1] + 0.04811*x[2]*x[3]*(14+x[1])
		},
		Inequality: func(x []float64) []float64 {
			h, l, t, b := x[0], x[1], x[2], x[3]

			pc := 4.013 * young * sqrt(sq(t)*pow(b, 6)/30) / sq(length) *
				(1 - t/(2*length)*sqrt(young/(4*shear)))
			sigma := 6 * load * length / (b * sq(t))
			delta := 6 * load * cube(length) / (young * sq(t) * b)

			m := load * (length + l/2)
			r := sqrt(sq(l)/4 + sq((h+t)/2))
			j := 2 * (math.Sqrt2 * h * l * (sq(l)/4 + sq((h+t)/2)))
			tau1 := load / (math.Sqrt2 * h * l)
			tau2 := m * r / j
			tau := sqrt(sq(tau1) + 2*tau1*tau2*l/(2*r) + sq(tau2))

			return []float64{
				tau - tauMax,
				sigma - sigmaMax,
				h - b,
				0.10471*sq(h) + 0.04811*t*b*(14+l) - 5,
				delta - deltaMax,
				load - pc,
				0.125 - h,
			}
		},
	}
}

func threeBarTrussDesign() Definition {
	const (
		span   = 100.0
		load   = 2.0
		stress = 2.0
	)
	return Definition{
		Name:  "ThreeBarTrussDesignProblem",
		Lower: []float64{0, 0},
		Upper: []float64{1, 1},
		Objective: func(x []float64) float64 {
			return (2*math.Sqrt2*x[0] + x[1]) * span
		},
		Inequality: func(x []float64) []float64 {
			den := math.Sqrt2*sq(x[0]) + 2*x[0]*x[1]
			return []float64{
				(math.Sqrt2*x[0]+x[1])/den*load - stress,
				x[1]/den*load - stress,
				1/(math.Sqrt2*x[1]+x[0])*load - stress,
			}
		},
	}
}

func multipleDiskClutchBrakeDesign() Definition {
	const (
		mf     = 3.0
		ms     = 40.0
		iz     = 55.0
		speed  = 250.0
		tMax   = 15.0
		safety = 1.5
		delta  = 0.5
		vsrMax = 10.0
		rho    = 0.0000078
		pMax   = 1.0
		mu     = 0.6
		lMax   = 30.0
		delR   = 20.0
	)
	type terms struct{ mh, prz, vsr, t float64 }
	compute := func(x []float64) terms {
		ri, ro, f, z := x[0], x[1], x[3], round(x[4])
		area := sq(ro) - sq(ri)
		mh := 2.0 / 3.0 * mu * f * z * (cube(ro) - cube(ri)) / area
		vsr := 2 * pi * speed * (cube(ro) - cube(ri)) / (90 * area)
		return terms{
			mh:  mh,
			prz: f / (pi * area),
			vsr: vsr,
			t:   iz * pi * speed / (30 * (mh + mf)),
		}
	}
	return Definition{
		Name:  "MultipleDiskClutchBrakeDesignProblem",
		Lower: []float64{60, 90, 1, 0, 2},
		Upper: []float64{80, 110, 3, 1000, 9},
		Objective: func(x []float64) float64 {
			return pi * (sq(x[1]) - sq(x[0])) * x[2] * (round(x[4]) + 1) * rho
		},
		Inequality: func(x []float64) []float64 {
			c := compute(x)
			z := round(x[4])
			return []float64{
				-x[1] + x[0] + delR,
				(z+1)*(x[2]+delta) - lMax,
				c.prz - pMax,
				c.prz*c.vsr - pMax*vsrMax,
				c.vsr - vsrMax,
				c.t - tMax,
				safety*ms - c.mh,
				-c.t,
			}
		},
	}
}

func planetaryGearTrainDesignOptimization() Definition {
	const (
		dMax      = 220.0
		clearance = 0.5
		i01       = 3.11
		i02       = 1.84
		i0R       = -3.11
	)
	planets := []float64{3, 4, 5}
	modules := []float64{1.75, 2, 2.25, 2.5, 2.75, 3.0}

	// pick maps a relaxed 1-based index onto table, clamped to its range.
	pick := func(table []float64, v float64) float64 {
		i := int(round(abs(v))) - 1
		i = max(0, min(i, len(table)-1))
		return table[i]
	}
	type gears struct{ n1, n2, n3, n4, n5, n6, p, m1, m2 float64 }
	decode := func(x []float64) gears {
		return gears{
			n1: round(abs(x[0])), n2: round(abs(x[1])), n3: round(abs(x[2])),
			n4: round(abs(x[3])), n5: round(abs(x[4])), n6: round(abs(x[5])),
			p:  pick(planets, x[6]),
			m1: pick(modules, x[7]),
			m2: pick(modules, x[8]),
		}
	}

	return Definition{
		Name:  "PlanetaryGearTrainDesignOptimizationProblem",
		Lower: []float64{16.51, 13.51, 13.51, 16.51, 13.51, 47.51, 0.51, 0.51, 0.51},
		Upper: []float64{96.49, 54.49, 51.49, 46.49, 51.49, 124.49, 3.49, 6.49, 6.49},
		Objective: func(x []float64) float64 {
			g := decode(x)
			i1 := g.n6 / g.n4
			i2 := g.n6 * (g.n1*g.n3 + g.n2*g.n4) / (g.n1 * g.n3 * (g.n6 - g.n4))
			iR := -(g.n2 * g.n6 / (g.n1 * g.n3))
			return math.Max(abs(i1-i01), math.Max(abs(i2-i02), abs(iR-i0R)))
		},
		Inequality: func(x []float64) []float64 {
			g := decode(x)
			s := sin(pi / g.p)

			// Adjacent planets must not interfere; an undefined carrier
			// angle counts as a hard violation.
			beta := math.Acos((sq(g.n6-g.n3) + sq(g.n4+g.n5) - sq(g.n3+g.n5)) /
				(2 * (g.n6 - g.n3) * (g.n4 + g.n5)))
			g8 := 1e6
			if !math.IsNaN(beta) {
				g8 = sq(g.n3+g.n5+2+clearance) -
					(sq(g.n6-g.n3) + sq(g.n4+g.n5) - 2*(g.n6-g.n3)*(g.n4+g.n5)*cos(2*pi/g.p-beta))
			}

			return []float64{
				g.m2*(g.n6+2.5) - dMax,
				g.m1*(g.n1+g.n2) + g.m1*(g.n2+2) - dMax,
				g.m2*(g.n4+g.n5) + g.m2*(g.n5+2) - dMax,
				abs(g.m1*(g.n1+g.n2)-g.m2*(g.n6-g.n3)) - g.m1 - g.m2,
				-((g.n1+g.n2)*s - g.n2 - 2 - clearance),
				-((g.n6-g.n3)*s - g.n3 - 2 - clearance),
				-((g.n4+g.n5)*s - g.n5 - 2 - clearance),
				g8,
				-(g.n6 - 2*g.n3 - g.n4 - 4 - 2*clearance),
				-(g.n6 - g.n4 - 2*g.n5 - 4 - 2*clearance),
			}
		},
		Equality: func(x []float64) []float64 {
			g := decode(x)
			return []float64{math.Mod(g.n6-g.n4, g.p)}
		},
	}
}

func stepConePulley() Definition {
	const (
		speed    = 350.0
		density  = 7200.0
		distance = 3.0
		mu       = 0.35
		stress   = 1.75e6
		thick    = 8e-3
		minPower = 0.75 * 745.6998
	)
	steps := [4]float64{750, 450, 250, 150}

	type step struct{ c, r, p float64 }
	compute := func(x []float64) [4]step {
		w := x[4] * 1e-3
		var out [4]step
		for i, n := range steps {
			d := x[i] * 1e-3
			ratio := n / speed
			wrap := pi - 2*math.Asin((ratio-1)*d/(2*distance))
			out[i] = step{
				c: pi*d/2*(1+ratio) + sq(ratio-1)*sq(d)/(4*distance) + 2*distance,
				r: exp(mu * wrap),
				p: stress * thick * w * (1 - exp(-mu*wrap)) * pi * d * n / 60,
			}
		}
		return out
	}

	return Definition{
		Name:  "StepConePulleyProblem",
		Lower: filled(5, 0),
		Upper: []float64{60, 60, 90, 90, 90},
		Objective: func(x []float64) float64 {
			w := x[4] * 1e-3
			var sum float64
			for i, n := range steps {
				d := x[i] * 1e-3
				sum += sq(d) * (1 + sq(n/speed))
			}
			return density * w * pi / 4 * sum
		},
		Inequality: func(x []float64) []float64 {
			s := compute(x)
			g := make([]float64, 0, 8)
			for _, st := range s {
				g = append(g, -st.r+2)
			}
			for _, st := range s {
				g = append(g, -st.p+minPower)
			}
			return g
		},
		Equality: func(x []float64) []float64 {
			s := compute(x)
			return []float64{s[0].c - s[1].c, s[0].c - s[2].c, s[0].c - s[3].c}
		},
	}
}
