package steps

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/cucumber/godog"

	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	"github.com/akinaridici/stowagemaster/internal/application/stowage/services"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

type optimizeContext struct {
	client   *engine.LocalClient
	settings stowage.Settings
	seed     int64

	ship    *stowage.Ship
	cargoes []*stowage.Cargo
	fixed   []stowage.FixedAssignment
	excl    []string

	plan      *stowage.Plan
	otherPlan *stowage.Plan
}

func (oc *optimizeContext) reset() {
	oc.client = engine.NewLocalClient()
	oc.settings = stowage.DefaultSettings()
	oc.settings.OptimizationAlgorithm = stowage.AlgorithmPhase
	oc.seed = 0
	oc.ship = nil
	oc.cargoes = nil
	oc.fixed = nil
	oc.excl = nil
	oc.plan = nil
	oc.otherPlan = nil
}

func (oc *optimizeContext) aStowageEngineUsingTheAlgorithm(algorithm string) error {
	oc.settings.OptimizationAlgorithm = stowage.Algorithm(algorithm)
	return nil
}

func (oc *optimizeContext) aStowageEngineUsingTheAlgorithmWithRandomSeed(algorithm string, seed int64) error {
	oc.settings.OptimizationAlgorithm = stowage.Algorithm(algorithm)
	oc.settings.GA.MaxGenerations = 25
	oc.settings.GA.PopulationSize = 20
	oc.seed = seed
	return nil
}

func (oc *optimizeContext) aShipWithTanksOfVolumeEach(count int, volume float64) error {
	tanks := make([]stowage.Tank, count)
	for i := 0; i < count; i++ {
		id := fmt.Sprintf("tank-%d", i+1)
		tanks[i] = stowage.Tank{ID: id, Name: id, Volume: volume}
	}
	oc.ship = &stowage.Ship{ID: "ship-1", Name: "Test Tanker", Tanks: tanks}
	return nil
}

func (oc *optimizeContext) aRegularCargoRequestingVolume(kind string, volume float64) error {
	oc.cargoes = append(oc.cargoes, stowage.NewCargo(kind, volume, 0, 0, nil, false))
	return nil
}

func (oc *optimizeContext) aMandatoryCargoRequestingVolume(kind string, volume float64) error {
	oc.cargoes = append(oc.cargoes, stowage.NewCargo(kind, volume, 0, 0, nil, true))
	return nil
}

func (oc *optimizeContext) theMinimumUtilizationIs(value float64) error {
	oc.settings.MinUtilization = value
	return nil
}

func (oc *optimizeContext) tanksAndAreExcluded(a, b int) error {
	oc.excl = append(oc.excl, fmt.Sprintf("tank-%d", a), fmt.Sprintf("tank-%d", b))
	return nil
}

func (oc *optimizeContext) tankIsAlreadyFixedToCargoWithUnits(tank int, cargoID string, units float64) error {
	oc.fixed = append(oc.fixed, stowage.FixedAssignment{
		TankID:         fmt.Sprintf("tank-%d", tank),
		CargoID:        cargoID,
		QuantityLoaded: units,
	})
	return nil
}

func (oc *optimizeContext) iOptimizeThePlan() error {
	if oc.settings.OptimizationAlgorithm == stowage.AlgorithmGenetic {
		oc.plan = services.OptimizeGenetic(oc.ship, oc.cargoes, oc.excl, oc.fixed, oc.settings, rand.New(rand.NewSource(oc.seed)))
		return nil
	}
	plan, err := oc.client.Optimize(context.Background(), engine.OptimizeArgs{
		Ship:             oc.ship,
		Cargoes:          oc.cargoes,
		ExcludedTanks:    oc.excl,
		FixedAssignments: oc.fixed,
		Settings:         oc.settings,
	})
	if err != nil {
		return err
	}
	oc.plan = plan
	return nil
}

func (oc *optimizeContext) iOptimizeThePlanAgainWithTheSameSeed() error {
	oc.otherPlan = services.OptimizeGenetic(oc.ship, oc.cargoes, oc.excl, oc.fixed, oc.settings, rand.New(rand.NewSource(oc.seed)))
	return nil
}

func (oc *optimizeContext) thePlanShouldHaveAssignments(count int) error {
	if len(oc.plan.Assignments) != count {
		return fmt.Errorf("expected %d assignments, got %d", count, len(oc.plan.Assignments))
	}
	return nil
}

func (oc *optimizeContext) tankShouldBeLoadedWithUnits(tank int, units float64) error {
	id := fmt.Sprintf("tank-%d", tank)
	a, ok := oc.plan.Assignments[id]
	if !ok {
		return fmt.Errorf("tank %s has no assignment", id)
	}
	if a.QuantityLoaded != units {
		return fmt.Errorf("expected tank %s loaded with %v, got %v", id, units, a.QuantityLoaded)
	}
	return nil
}

func (oc *optimizeContext) thePlanScoreShouldBeAtLeast(min float64) error {
	score := services.Score(oc.plan, oc.ship, oc.cargoes)
	if score < min {
		return fmt.Errorf("expected score >= %v, got %v", min, score)
	}
	return nil
}

func (oc *optimizeContext) cargoShouldBeFullyLoaded(kind string) error {
	for _, c := range oc.cargoes {
		if c.KindLabel != kind {
			continue
		}
		loaded := oc.plan.LoadedVolumeForCargo(c.ID)
		if loaded < c.RequestedVolume-1e-6 {
			return fmt.Errorf("cargo %q loaded %v, want %v", kind, loaded, c.RequestedVolume)
		}
		return nil
	}
	return fmt.Errorf("no cargo of kind %q in scenario", kind)
}

func (oc *optimizeContext) theAssignedTanksShouldNotFormABowOrSternCluster() error {
	var tankIDs []string
	for id := range oc.plan.Assignments {
		tankIDs = append(tankIDs, id)
	}
	if stowage.BowOrSternCluster(oc.ship, tankIDs) {
		return fmt.Errorf("assigned tanks %v form a bow or stern cluster", tankIDs)
	}
	return nil
}

func (oc *optimizeContext) tankShouldNotAppearInThePlan(tank int) error {
	id := fmt.Sprintf("tank-%d", tank)
	if _, ok := oc.plan.Assignments[id]; ok {
		return fmt.Errorf("tank %s unexpectedly appears in the plan", id)
	}
	return nil
}

func (oc *optimizeContext) everyAssignmentShouldMeetTheMinimumUtilization() error {
	for id, a := range oc.plan.Assignments {
		tank := oc.ship.TankByID(id)
		if tank == nil {
			return fmt.Errorf("assignment references unknown tank %s", id)
		}
		if a.QuantityLoaded/tank.Volume < oc.settings.MinUtilization-1e-9 {
			return fmt.Errorf("tank %s utilization %v below floor %v", id, a.QuantityLoaded/tank.Volume, oc.settings.MinUtilization)
		}
	}
	return nil
}

func (oc *optimizeContext) bothPlansShouldBeIdentical() error {
	if len(oc.plan.Assignments) != len(oc.otherPlan.Assignments) {
		return fmt.Errorf("assignment counts differ: %d vs %d", len(oc.plan.Assignments), len(oc.otherPlan.Assignments))
	}
	for id, a := range oc.plan.Assignments {
		b, ok := oc.otherPlan.Assignments[id]
		if !ok || a.CargoID != b.CargoID || a.QuantityLoaded != b.QuantityLoaded {
			return fmt.Errorf("assignment for tank %s differs between runs", id)
		}
	}
	return nil
}

// RegisterStowageOptimizeSteps wires the cargo stowage optimization
// feature's step definitions.
func RegisterStowageOptimizeSteps(sc *godog.ScenarioContext) {
	oc := &optimizeContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		oc.reset()
		return ctx, nil
	})

	sc.Step(`^a stowage engine using the "([^"]*)" algorithm$`, oc.aStowageEngineUsingTheAlgorithm)
	sc.Step(`^a stowage engine using the "([^"]*)" algorithm with random seed (\d+)$`, oc.aStowageEngineUsingTheAlgorithmWithRandomSeed)
	sc.Step(`^a ship with (\d+) tanks? of volume (\d+) each$`, oc.aShipWithTanksOfVolumeEach)
	sc.Step(`^a regular cargo "([^"]*)" requesting volume (\d+)$`, oc.aRegularCargoRequestingVolume)
	sc.Step(`^a mandatory cargo "([^"]*)" requesting volume (\d+)$`, oc.aMandatoryCargoRequestingVolume)
	sc.Step(`^the minimum utilization is ([0-9.]+)$`, oc.theMinimumUtilizationIs)
	sc.Step(`^tanks (\d+) and (\d+) are excluded$`, oc.tanksAndAreExcluded)
	sc.Step(`^tank (\d+) is already fixed to cargo "([^"]*)" with (\d+) units$`, oc.tankIsAlreadyFixedToCargoWithUnits)

	sc.Step(`^I optimize the plan$`, oc.iOptimizeThePlan)
	sc.Step(`^I optimize the plan again with the same seed$`, oc.iOptimizeThePlanAgainWithTheSameSeed)

	sc.Step(`^the plan should have (\d+) assignments?$`, oc.thePlanShouldHaveAssignments)
	sc.Step(`^tank (\d+) should be loaded with (\d+) units$`, oc.tankShouldBeLoadedWithUnits)
	sc.Step(`^the plan score should be at least (\d+)$`, oc.thePlanScoreShouldBeAtLeast)
	sc.Step(`^cargo "([^"]*)" should be fully loaded$`, oc.cargoShouldBeFullyLoaded)
	sc.Step(`^the assigned tanks should not form a bow or stern cluster$`, oc.theAssignedTanksShouldNotFormABowOrSternCluster)
	sc.Step(`^tank (\d+) should not appear in the plan$`, oc.tankShouldNotAppearInThePlan)
	sc.Step(`^every assignment should meet the minimum utilization$`, oc.everyAssignmentShouldMeetTheMinimumUtilization)
	sc.Step(`^both plans should be identical$`, oc.bothPlansShouldBeIdentical)
}
