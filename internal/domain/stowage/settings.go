package stowage

// Algorithm selects which engine entry point Optimize dispatches to.
type Algorithm string

const (
	AlgorithmPhase   Algorithm = "phase"
	AlgorithmGenetic Algorithm = "genetic"
	AlgorithmLegacy  Algorithm = "legacy"
)

// Settings is the engine's full tunable bag. It is a plain value type
// so both solvers, the scorer, and the persistence adapter can share
// it without any of them depending on the process configuration
// layer — infrastructure/config.SolverConfig is converted into this
// at the composition root.
type Settings struct {
	OptimizationAlgorithm Algorithm

	MinUtilization             float64
	DragDropWarningThreshold   float64
	ExactFitThreshold          float64
	BowSternViolationThreshold float64
	SymmetricPairMinThreshold  float64

	ScoreWeights            ScoreWeights
	WasteUtilizationWeights WasteUtilizationWeights

	Faz1SingleTankTolerance       float64
	Faz2TwoTankTolerance          float64
	Faz2AsymmetricToleranceFactor float64
	Faz3ThreeTankTolerance        float64
	Faz4FourTankTolerance         float64
	Faz5FiveTankTolerance         float64
	Faz6SixTankTolerance          float64

	MandatoryRetryIncrement float64
	MandatoryMaxRelaxation  float64

	GA GeneticSettings
}

// ScoreWeights blends the legacy single-pass scorer's composite score.
type ScoreWeights struct {
	SingleFit float64
	Symmetry  float64
	BowStern  float64
	BestFit   float64
}

// WasteUtilizationWeights blends the legacy optimizer's tank-choice score.
type WasteUtilizationWeights struct {
	Waste       float64
	Utilization float64
}

// SelectionStrategy names one of the genetic solver's parent-selection
// operators.
type SelectionStrategy string

const (
	SelectionTournament SelectionStrategy = "tournament"
	SelectionRoulette   SelectionStrategy = "roulette"
)

// GeneticSettings parameterizes the genetic solver.
type GeneticSettings struct {
	PopulationSize         int
	MaxGenerations         int
	CrossoverRate          float64
	MutationRate           float64
	TournamentSize         int
	Selection              SelectionStrategy
	UseElitism             bool
	ElitismCount           int
	SymmetryPenaltyCoef    float64
	TrimPenaltyCoef        float64
	OperationalPenaltyCoef float64
	ReceiverTolerance      float64
	ConvergenceThreshold   float64
	ConvergenceGenerations int
}

// DefaultSettings mirrors the persisted settings document's defaults,
// used whenever a caller omits a settings bag entirely.
func DefaultSettings() Settings {
	return Settings{
		OptimizationAlgorithm:      AlgorithmGenetic,
		MinUtilization:             0.65,
		DragDropWarningThreshold:   0.70,
		ExactFitThreshold:          0.01,
		BowSternViolationThreshold: 3,
		SymmetricPairMinThreshold:  0.65,
		ScoreWeights: ScoreWeights{
			SingleFit: 0.40,
			Symmetry:  0.25,
			BowStern:  0.15,
			BestFit:   0.20,
		},
		WasteUtilizationWeights: WasteUtilizationWeights{
			Waste:       0.7,
			Utilization: 0.3,
		},
		Faz1SingleTankTolerance:       0.05,
		Faz2TwoTankTolerance:          0.05,
		Faz2AsymmetricToleranceFactor: 0.2,
		Faz3ThreeTankTolerance:        0.04,
		Faz4FourTankTolerance:         0.04,
		Faz5FiveTankTolerance:         0.04,
		Faz6SixTankTolerance:          0.05,
		MandatoryRetryIncrement:       0.01,
		MandatoryMaxRelaxation:        0.35,
		GA: GeneticSettings{
			PopulationSize:         500,
			MaxGenerations:         2000,
			CrossoverRate:          0.90,
			MutationRate:           0.11,
			TournamentSize:         3,
			Selection:              SelectionTournament,
			UseElitism:             true,
			ElitismCount:           5,
			SymmetryPenaltyCoef:    3000.0,
			TrimPenaltyCoef:        1500.0,
			OperationalPenaltyCoef: 100.0,
			ReceiverTolerance:      0.03,
			ConvergenceThreshold:   0.0001,
			ConvergenceGenerations: 60,
		},
	}
}
