package problems

// Definitions returns the full suite in its published order.
func Definitions() []Definition {
	return []Definition{
		heatExchangerNetworkDesignCase1(),
		heatExchangerNetworkDesignCase2(),
		haverlyPooling(),
		blendingPoolingSeparation(),
		propaneIsobutaneNButaneNonsharpSeparation(),
		optimalOperationAlkylationUnit(),
		reactorNetworkDesign(),
		processSynthesis01(),
		processSynthesis02(),
		processDesign(),
		processSynthesisAndDesign(),
		processFlowSheeting(),
		twoReactor(),
		multiProductBatchPlant(),
		weightMinimizationSpeedReducer(),
		optimalDesignIndustrialRefrigerationSystem(),
		tensionCompressionSpringDesign(),
		pressureVesselDesign(),
		weldedBeamDesign(),
		threeBarTrussDesign(),
		multipleDiskClutchBrakeDesign(),
		planetaryGearTrainDesignOptimization(),
		stepConePulley(),
	}
}

// Names returns the problem names in Definitions order.
func Names() []string {
	defs := Definitions()
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.Name
	}
	return names
}

// filled returns n copies of v.
func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
