package catalog

// Registered problem identifiers. They match the class names of the Python
// enoppy suite so both providers resolve the same names.
const (
	HeatExchangerNetworkDesignCase1            = "HeatExchangerNetworkDesignCase1Problem"
	HeatExchangerNetworkDesignCase2            = "HeatExchangerNetworkDesignCase2Problem"
	HaverlyPooling                             = "HaverlyPoolingProblem"
	BlendingPoolingSeparation                  = "BlendingPoolingSeparationProblem"
	PropaneIsobutaneNButaneNonsharpSeparation  = "PropaneIsobutaneNButaneNonsharpSeparationProblem"
	OptimalOperationAlkylationUnit             = "OptimalOperationAlkylationUnitProblem"
	ReactorNetworkDesign                       = "ReactorNetworkDesignProblem"
	ProcessSynthesis01                         = "ProcessSynthesis01Problem"
	ProcessSynthesis02                         = "ProcessSynthesis02Problem"
	ProcessDesign                              = "ProcessDesignProblem"
	ProcessSynthesisAndDesign                  = "ProcessSynthesisAndDesignProblem"
	ProcessFlowSheeting                        = "ProcessFlowSheetingProblem"
	TwoReactor                                 = "TwoReactorProblem"
	MultiProductBatchPlant                     = "MultiProductBatchPlantProblem"
	WeightMinimizationSpeedReducer             = "WeightMinimizationSpeedReducerProblem"
	OptimalDesignIndustrialRefrigerationSystem = "OptimalDesignIndustrialRefrigerationSystemProblem"
	TensionCompressionSpringDesign             = "TensionCompressionSpringDesignProblem"
	PressureVesselDesign                       = "PressureVesselDesignProblem"
	WeldedBeamDesign                           = "WeldedBeamDesignProblem"
	ThreeBarTrussDesign                        = "ThreeBarTrussDesignProblem"
	MultipleDiskClutchBrakeDesign              = "MultipleDiskClutchBrakeDesignProblem"
	PlanetaryGearTrainDesignOptimization       = "PlanetaryGearTrainDesignOptimizationProblem"
	StepConePulley                             = "StepConePulleyProblem"
)

// Identifiers returns the registered identifiers in catalog order.
func Identifiers() []string {
	return []string{
		HeatExchangerNetworkDesignCase1,
		HeatExchangerNetworkDesignCase2,
		HaverlyPooling,
		BlendingPoolingSeparation,
		PropaneIsobutaneNButaneNonsharpSeparation,
		OptimalOperationAlkylationUnit,
		ReactorNetworkDesign,
		ProcessSynthesis01,
		ProcessSynthesis02,
		ProcessDesign,
		ProcessSynthesisAndDesign,
		ProcessFlowSheeting,
		TwoReactor,
		MultiProductBatchPlant,
		WeightMinimizationSpeedReducer,
		OptimalDesignIndustrialRefrigerationSystem,
		TensionCompressionSpringDesign,
		PressureVesselDesign,
		WeldedBeamDesign,
		ThreeBarTrussDesign,
		MultipleDiskClutchBrakeDesign,
		PlanetaryGearTrainDesignOptimization,
		StepConePulley,
	}
}
