package config

// SolverConfig holds the full tunable settings bag consumed by the
// mandatory placer, phase cascade, genetic solver and scorer. Field
// names mirror the persisted settings document so a loaded settings
// file and the process config agree on vocabulary.
type SolverConfig struct {
	// OptimizationAlgorithm selects which engine entry point Optimize
	// dispatches to: "phase", "genetic" or "legacy".
	OptimizationAlgorithm string `mapstructure:"optimization_algorithm" validate:"required,oneof=phase genetic legacy"`

	MinUtilization             float64 `mapstructure:"min_utilization" validate:"gte=0,lte=1"`
	DragDropWarningThreshold   float64 `mapstructure:"drag_drop_warning_threshold" validate:"gte=0,lte=1"`
	ExactFitThreshold          float64 `mapstructure:"exact_fit_threshold" validate:"gte=0,lte=1"`
	BowSternViolationThreshold float64 `mapstructure:"bow_stern_violation_threshold"`
	SymmetricPairMinThreshold  float64 `mapstructure:"symmetric_pair_min_threshold" validate:"gte=0,lte=1"`

	ScoreWeights            ScoreWeights            `mapstructure:"score_weights"`
	WasteUtilizationWeights WasteUtilizationWeights `mapstructure:"waste_utilization_weights"`

	Faz1SingleTankTolerance       float64 `mapstructure:"faz1_single_tank_tolerance"`
	Faz2TwoTankTolerance          float64 `mapstructure:"faz2_two_tank_tolerance"`
	Faz2AsymmetricToleranceFactor float64 `mapstructure:"faz2_asymmetric_tolerance_factor"`
	Faz3ThreeTankTolerance        float64 `mapstructure:"faz3_three_tank_tolerance"`
	Faz4FourTankTolerance         float64 `mapstructure:"faz4_four_tank_tolerance"`
	Faz5FiveTankTolerance         float64 `mapstructure:"faz5_five_tank_tolerance"`
	Faz6SixTankTolerance          float64 `mapstructure:"faz6_six_tank_tolerance"`

	MandatoryRetryIncrement float64 `mapstructure:"mandatory_retry_increment"`
	MandatoryMaxRelaxation  float64 `mapstructure:"mandatory_max_relaxation"`

	GA GeneticSettings `mapstructure:"genetic"`
}

// ScoreWeights blends the legacy single-pass scorer's composite components.
type ScoreWeights struct {
	SingleFit float64 `mapstructure:"single_fit"`
	Symmetry  float64 `mapstructure:"symmetry"`
	BowStern  float64 `mapstructure:"bow_stern"`
	BestFit   float64 `mapstructure:"best_fit"`
}

// WasteUtilizationWeights blends the legacy optimizer's per-tank tank-choice score.
type WasteUtilizationWeights struct {
	Waste       float64 `mapstructure:"waste"`
	Utilization float64 `mapstructure:"utilization"`
}

// GeneticSettings parameterizes the C5 genetic solver.
type GeneticSettings struct {
	PopulationSize        int     `mapstructure:"ga_population_size" validate:"omitempty,min=2"`
	MaxGenerations         int     `mapstructure:"ga_max_generations" validate:"omitempty,min=1"`
	CrossoverRate          float64 `mapstructure:"ga_crossover_rate" validate:"gte=0,lte=1"`
	MutationRate           float64 `mapstructure:"ga_mutation_rate" validate:"gte=0,lte=1"`
	TournamentSize         int     `mapstructure:"ga_tournament_size" validate:"omitempty,min=2"`
	UseElitism             bool    `mapstructure:"ga_use_elitism"`
	ElitismCount           int     `mapstructure:"ga_elitism_count" validate:"gte=0"`
	SymmetryPenaltyCoef    float64 `mapstructure:"ga_symmetry_penalty_coef"`
	TrimPenaltyCoef        float64 `mapstructure:"ga_trim_penalty_coef"`
	OperationalPenaltyCoef float64 `mapstructure:"ga_operational_penalty_coef"`
	ReceiverTolerance      float64 `mapstructure:"ga_receiver_tolerance"`
	ConvergenceThreshold   float64 `mapstructure:"ga_convergence_threshold"`
	ConvergenceGenerations int     `mapstructure:"ga_convergence_generations" validate:"omitempty,min=1"`
}
