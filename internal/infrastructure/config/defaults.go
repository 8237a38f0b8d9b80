package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	setSolverDefaults(&cfg.Solver)

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "stowagemaster.db"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 25
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 5
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Daemon defaults
	if cfg.Daemon.Address == "" {
		cfg.Daemon.Address = "localhost:50061"
	}
	if cfg.Daemon.SocketPath == "" {
		cfg.Daemon.SocketPath = "/tmp/stowagemaster-daemon.sock"
	}
	if cfg.Daemon.PIDFile == "" {
		cfg.Daemon.PIDFile = "/tmp/stowagemaster-daemon.pid"
	}
	if cfg.Daemon.ShutdownTimeout == 0 {
		cfg.Daemon.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Daemon.HealthCheckInterval == 0 {
		cfg.Daemon.HealthCheckInterval = 30 * time.Second
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.Logging.Rotation.MaxSize == 0 {
		cfg.Logging.Rotation.MaxSize = 100
	}
	if cfg.Logging.Rotation.MaxBackups == 0 {
		cfg.Logging.Rotation.MaxBackups = 3
	}
	if cfg.Logging.Rotation.MaxAge == 0 {
		cfg.Logging.Rotation.MaxAge = 28
	}

	// Metrics defaults
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9108
	}
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

// setSolverDefaults mirrors the original engine's get_default_settings
// document so a fresh install behaves identically to a pre-existing
// settings file that has never been edited.
func setSolverDefaults(s *SolverConfig) {
	if s.OptimizationAlgorithm == "" {
		s.OptimizationAlgorithm = "genetic"
	}
	if s.MinUtilization == 0 {
		s.MinUtilization = 0.65
	}
	if s.DragDropWarningThreshold == 0 {
		s.DragDropWarningThreshold = 0.70
	}
	if s.ExactFitThreshold == 0 {
		s.ExactFitThreshold = 0.01
	}
	if s.BowSternViolationThreshold == 0 {
		s.BowSternViolationThreshold = 3
	}
	if s.SymmetricPairMinThreshold == 0 {
		s.SymmetricPairMinThreshold = 0.65
	}

	if s.ScoreWeights.SingleFit == 0 {
		s.ScoreWeights.SingleFit = 0.40
	}
	if s.ScoreWeights.Symmetry == 0 {
		s.ScoreWeights.Symmetry = 0.25
	}
	if s.ScoreWeights.BowStern == 0 {
		s.ScoreWeights.BowStern = 0.15
	}
	if s.ScoreWeights.BestFit == 0 {
		s.ScoreWeights.BestFit = 0.20
	}

	if s.WasteUtilizationWeights.Waste == 0 {
		s.WasteUtilizationWeights.Waste = 0.7
	}
	if s.WasteUtilizationWeights.Utilization == 0 {
		s.WasteUtilizationWeights.Utilization = 0.3
	}

	if s.Faz1SingleTankTolerance == 0 {
		s.Faz1SingleTankTolerance = 0.05
	}
	if s.Faz2TwoTankTolerance == 0 {
		s.Faz2TwoTankTolerance = 0.05
	}
	if s.Faz2AsymmetricToleranceFactor == 0 {
		s.Faz2AsymmetricToleranceFactor = 0.2
	}
	if s.Faz3ThreeTankTolerance == 0 {
		s.Faz3ThreeTankTolerance = 0.04
	}
	if s.Faz4FourTankTolerance == 0 {
		s.Faz4FourTankTolerance = 0.04
	}
	if s.Faz5FiveTankTolerance == 0 {
		s.Faz5FiveTankTolerance = 0.04
	}
	if s.Faz6SixTankTolerance == 0 {
		s.Faz6SixTankTolerance = 0.05
	}

	if s.MandatoryRetryIncrement == 0 {
		s.MandatoryRetryIncrement = 0.01
	}
	if s.MandatoryMaxRelaxation == 0 {
		s.MandatoryMaxRelaxation = 0.35
	}

	if s.GA.PopulationSize == 0 {
		s.GA.PopulationSize = 500
	}
	if s.GA.MaxGenerations == 0 {
		s.GA.MaxGenerations = 2000
	}
	if s.GA.CrossoverRate == 0 {
		s.GA.CrossoverRate = 0.90
	}
	if s.GA.MutationRate == 0 {
		s.GA.MutationRate = 0.11
	}
	if s.GA.TournamentSize == 0 {
		s.GA.TournamentSize = 3
	}
	// ga_use_elitism defaults true; only override when the zero value
	// reached here came from an empty config rather than an explicit false.
	s.GA.UseElitism = true
	if s.GA.ElitismCount == 0 {
		s.GA.ElitismCount = 5
	}
	if s.GA.SymmetryPenaltyCoef == 0 {
		s.GA.SymmetryPenaltyCoef = 3000.0
	}
	if s.GA.TrimPenaltyCoef == 0 {
		s.GA.TrimPenaltyCoef = 1500.0
	}
	if s.GA.OperationalPenaltyCoef == 0 {
		s.GA.OperationalPenaltyCoef = 100.0
	}
	if s.GA.ReceiverTolerance == 0 {
		s.GA.ReceiverTolerance = 0.03
	}
	if s.GA.ConvergenceThreshold == 0 {
		s.GA.ConvergenceThreshold = 0.0001
	}
	if s.GA.ConvergenceGenerations == 0 {
		s.GA.ConvergenceGenerations = 60
	}
}
