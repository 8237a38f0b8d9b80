package services

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
)

// gene is one tank's slot in a chromosome: which cargo (if any) is
// loaded there, and how much.
type gene struct {
	cargoID  string
	quantity float64
}

// chromosome is a fixed-length vector of genes indexed in lockstep
// with the solver's tankIDs slice, captured once at construction and
// never exposed as mutable on its own.
type chromosome struct {
	genes []gene
}

func (c chromosome) clone() chromosome {
	genes := make([]gene, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes}
}

// geneticSolver holds the GA's working state for one Optimize call.
// It never shares mutable state outside its own stack.
type geneticSolver struct {
	ship          *stowage.Ship
	cargoes       []*stowage.Cargo
	cargoByID     map[string]*stowage.Cargo
	tankIDs       []string
	tankVolume    map[string]float64
	tankCapacity  map[string]float64 // residual capacity after mandatory placement
	rowOf         map[string]int
	sideOf        map[string]stowage.Side
	totalRows     int
	idealLCG      float64
	settings      stowage.GeneticSettings
	rng           *rand.Rand
}

// OptimizeGenetic runs the C5 genetic solver: mandatory cargoes are
// placed first by the shared C3 placer, then the GA searches the
// residual capacity for regular cargoes, and a post-fill pass tops up
// any tank the GA left empty.
func OptimizeGenetic(ship *stowage.Ship, cargoes []*stowage.Cargo, excludedTanks []string, fixed []stowage.FixedAssignment, settings stowage.Settings, rng *rand.Rand) *stowage.Plan {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	unavailable := stowage.ExcludedOrFixed(excludedTanks, fixed)
	available := NewAvailableCapacity(ship, unavailable)
	plan := stowage.NewPlan("", ship.ID, SystemClock.Now())

	mandatory, regular := SplitMandatory(cargoes)
	PlaceMandatory(ship, plan, available, mandatory, settings.MinUtilization)

	gs := newGeneticSolver(ship, regular, available, settings.GA, rng)
	if len(gs.tankIDs) == 0 || len(regular) == 0 {
		fillEmptyTanksWithRemaining(ship, plan, available, regular, settings.MinUtilization)
		return plan
	}

	best := gs.run()
	gs.applyToPlan(best, plan)

	// residual capacity after the GA's own placements, for post-fill.
	residual := make(AvailableCapacity, len(gs.tankIDs))
	for i, id := range gs.tankIDs {
		residual[id] = gs.tankCapacity[id] - best.genes[i].quantity
	}
	fillEmptyTanksWithRemaining(ship, plan, residual, regular, settings.MinUtilization)

	return plan
}

func newGeneticSolver(ship *stowage.Ship, regular []*stowage.Cargo, available AvailableCapacity, gaSettings stowage.GeneticSettings, rng *rand.Rand) *geneticSolver {
	totalRows := ship.TotalRows()
	tankIDs := available.RemainingTankIDs()

	tankVolume := make(map[string]float64, len(tankIDs))
	tankCapacity := make(map[string]float64, len(tankIDs))
	rowOf := make(map[string]int, len(tankIDs))
	sideOf := make(map[string]stowage.Side, len(tankIDs))
	for i, t := range ship.Tanks {
		if _, ok := available[t.ID]; !ok {
			continue
		}
		pos := stowage.PositionOf(i, totalRows)
		tankVolume[t.ID] = t.Volume
		tankCapacity[t.ID] = available[t.ID]
		rowOf[t.ID] = pos.Row
		sideOf[t.ID] = pos.Side
	}

	cargoByID := make(map[string]*stowage.Cargo, len(regular))
	for _, c := range regular {
		cargoByID[c.ID] = c
	}

	return &geneticSolver{
		ship:         ship,
		cargoes:      regular,
		cargoByID:    cargoByID,
		tankIDs:      tankIDs,
		tankVolume:   tankVolume,
		tankCapacity: tankCapacity,
		rowOf:        rowOf,
		sideOf:       sideOf,
		totalRows:    totalRows,
		idealLCG:     float64(totalRows) / 2,
		settings:     gaSettings,
		rng:          rng,
	}
}

func (s *geneticSolver) run() chromosome {
	popSize := s.settings.PopulationSize
	if popSize < 2 {
		popSize = 2
	}
	population := make([]chromosome, popSize)
	for i := range population {
		population[i] = s.repair(s.randomChromosome())
	}

	history := make([]float64, 0, s.settings.ConvergenceGenerations)
	best := population[0]
	bestFitness := s.fitness(best)

	generations := s.settings.MaxGenerations
	if generations < 1 {
		generations = 1
	}

	for gen := 0; gen < generations; gen++ {
		fitnesses := make([]float64, popSize)
		for i, c := range population {
			fitnesses[i] = s.fitness(c)
			if fitnesses[i] > bestFitness {
				bestFitness = fitnesses[i]
				best = c
			}
		}

		next := make([]chromosome, 0, popSize)
		if s.settings.UseElitism && s.settings.ElitismCount > 0 {
			next = append(next, s.elite(population, fitnesses, s.settings.ElitismCount)...)
		}

		for len(next) < popSize {
			parentA := s.selectParent(population, fitnesses)
			parentB := s.selectParent(population, fitnesses)
			childA, childB := parentA.clone(), parentB.clone()
			if s.rng.Float64() < s.settings.CrossoverRate {
				childA, childB = s.twoPointCrossover(parentA, parentB)
			}
			childA = s.maybeMutate(childA)
			childB = s.maybeMutate(childB)
			next = append(next, childA)
			if len(next) < popSize {
				next = append(next, childB)
			}
		}
		population = next

		history = append(history, bestFitness)
		if len(history) > s.settings.ConvergenceGenerations {
			history = history[1:]
		}
		if len(history) == s.settings.ConvergenceGenerations && s.settings.ConvergenceGenerations > 0 {
			improvement := history[len(history)-1] - history[0]
			if improvement < s.settings.ConvergenceThreshold {
				break
			}
		}
	}

	return best
}

func (s *geneticSolver) randomChromosome() chromosome {
	genes := make([]gene, len(s.tankIDs))
	maxAttempts := len(s.tankIDs) * 2

	for _, cargo := range s.cargoes {
		remaining := cargo.RequestedVolume
		for attempt := 0; attempt < maxAttempts && remaining > 1e-9; attempt++ {
			idx := s.rng.Intn(len(s.tankIDs))
			room := s.tankCapacity[s.tankIDs[idx]] - genes[idx].quantity
			if room <= 1e-9 {
				continue
			}
			if genes[idx].cargoID != "" && genes[idx].cargoID != cargo.ID {
				continue
			}
			add := room
			if add > remaining {
				add = remaining
			}
			genes[idx].cargoID = cargo.ID
			genes[idx].quantity += add
			remaining -= add
		}
	}
	return chromosome{genes: genes}
}

// repair is the hard-constraint projection: cap tank overflows, then
// rebalance each cargo's total to within +/-receiver_tolerance of its
// requested volume. It is idempotent — applying it twice to an
// already-repaired chromosome is a no-op.
func (s *geneticSolver) repair(c chromosome) chromosome {
	out := c.clone()

	for i, id := range s.tankIDs {
		if out.genes[i].quantity > s.tankCapacity[id] {
			out.genes[i].quantity = s.tankCapacity[id]
		}
		if out.genes[i].quantity < 0 {
			out.genes[i].quantity = 0
		}
	}

	for _, cargo := range s.cargoes {
		total := s.totalFor(out, cargo.ID)
		lo := cargo.RequestedVolume * (1 - s.settings.ReceiverTolerance)
		hi := cargo.RequestedVolume * (1 + s.settings.ReceiverTolerance)

		if total < lo {
			s.addCargo(&out, cargo.ID, lo-total)
		} else if total > hi {
			s.removeCargo(&out, cargo.ID, total-hi)
		}
	}
	return out
}

func (s *geneticSolver) totalFor(c chromosome, cargoID string) float64 {
	var total float64
	for _, g := range c.genes {
		if g.cargoID == cargoID {
			total += g.quantity
		}
	}
	return total
}

func (s *geneticSolver) addCargo(c *chromosome, cargoID string, amount float64) {
	// same-cargo tanks first.
	for i, id := range s.tankIDs {
		if amount <= 1e-9 {
			return
		}
		if c.genes[i].cargoID != cargoID {
			continue
		}
		room := s.tankCapacity[id] - c.genes[i].quantity
		add := math.Min(room, amount)
		c.genes[i].quantity += add
		amount -= add
	}
	// then empty tanks.
	for i, id := range s.tankIDs {
		if amount <= 1e-9 {
			return
		}
		if c.genes[i].cargoID != "" {
			continue
		}
		room := s.tankCapacity[id]
		add := math.Min(room, amount)
		if add <= 1e-9 {
			continue
		}
		c.genes[i].cargoID = cargoID
		c.genes[i].quantity += add
		amount -= add
	}
}

func (s *geneticSolver) removeCargo(c *chromosome, cargoID string, amount float64) {
	for i := range s.tankIDs {
		if amount <= 1e-9 {
			return
		}
		if c.genes[i].cargoID != cargoID {
			continue
		}
		remove := math.Min(c.genes[i].quantity, amount)
		c.genes[i].quantity -= remove
		amount -= remove
		if c.genes[i].quantity <= 1e-9 {
			c.genes[i].cargoID = ""
			c.genes[i].quantity = 0
		}
	}
}

// fitness = total_loaded - symmetry_penalty - trim_penalty - operational_penalty.
func (s *geneticSolver) fitness(c chromosome) float64 {
	var total float64
	for _, g := range c.genes {
		total += g.quantity
	}
	return total - s.symmetryPenalty(c) - s.trimPenalty(c) - s.operationalPenalty(c)
}

func (s *geneticSolver) symmetryPenalty(c chromosome) float64 {
	tanksByCargo := make(map[string][]int)
	for i, g := range c.genes {
		if g.cargoID == "" {
			continue
		}
		tanksByCargo[g.cargoID] = append(tanksByCargo[g.cargoID], i)
	}

	var penalty float64
	for _, indices := range tanksByCargo {
		if len(indices) < 2 {
			continue
		}
		side := s.sideOf[s.tankIDs[indices[0]]]
		allSame := true
		for _, idx := range indices[1:] {
			if s.sideOf[s.tankIDs[idx]] != side {
				allSame = false
				break
			}
		}
		if allSame {
			penalty += s.settings.SymmetryPenaltyCoef * float64(len(indices))
		}
	}

	for _, pair := range stowage.TankPairs(s.ship) {
		p, star := s.quantityAt(c, pair.Port.ID), s.quantityAt(c, pair.Starboard.ID)
		if p <= 0 || star <= 0 {
			continue
		}
		avg := (p + star) / 2
		imbalance := math.Abs(p-star) / avg
		if imbalance > 0.10 {
			penalty += s.settings.SymmetryPenaltyCoef * imbalance * 0.1
		}
	}
	return penalty
}

func (s *geneticSolver) quantityAt(c chromosome, tankID string) float64 {
	for i, id := range s.tankIDs {
		if id == tankID {
			return c.genes[i].quantity
		}
	}
	return 0
}

func (s *geneticSolver) trimPenalty(c chromosome) float64 {
	var weighted, totalQ float64
	for i, g := range c.genes {
		if g.quantity <= 0 {
			continue
		}
		row := s.rowOf[s.tankIDs[i]]
		weighted += g.quantity * float64(row)
		totalQ += g.quantity
	}
	if totalQ == 0 {
		return 0
	}
	lcg := weighted / totalQ
	if s.totalRows == 0 {
		return 0
	}
	return s.settings.TrimPenaltyCoef * math.Abs(lcg-s.idealLCG) / float64(s.totalRows)
}

func (s *geneticSolver) operationalPenalty(c chromosome) float64 {
	counts := make(map[string]int)
	for _, g := range c.genes {
		if g.cargoID == "" {
			continue
		}
		counts[g.cargoID]++
	}
	var penalty float64
	for _, n := range counts {
		if n > 1 {
			penalty += s.settings.OperationalPenaltyCoef * math.Pow(float64(n-1), 2)
		}
	}
	return penalty
}

// selectParent dispatches to the configured selection operator,
// defaulting to tournament selection.
func (s *geneticSolver) selectParent(population []chromosome, fitnesses []float64) chromosome {
	if s.settings.Selection == stowage.SelectionRoulette {
		return s.rouletteSelect(population, fitnesses)
	}
	return s.tournamentSelect(population, fitnesses)
}

func (s *geneticSolver) tournamentSelect(population []chromosome, fitnesses []float64) chromosome {
	size := s.settings.TournamentSize
	if size < 2 {
		size = 2
	}
	bestIdx := s.rng.Intn(len(population))
	for i := 1; i < size; i++ {
		idx := s.rng.Intn(len(population))
		if fitnesses[idx] > fitnesses[bestIdx] {
			bestIdx = idx
		}
	}
	return population[bestIdx]
}

// rouletteSelect picks a parent with probability proportional to its
// fitness, shifting all scores positive first so a negative-fitness
// population still has well-defined weights.
func (s *geneticSolver) rouletteSelect(population []chromosome, fitnesses []float64) chromosome {
	minFitness := fitnesses[0]
	for _, f := range fitnesses {
		if f < minFitness {
			minFitness = f
		}
	}

	shift := 1.0
	if minFitness < 0 {
		shift = -minFitness + 1.0
	}

	total := 0.0
	shifted := make([]float64, len(fitnesses))
	for i, f := range fitnesses {
		shifted[i] = f + shift
		total += shifted[i]
	}

	if total < 0.001 {
		return population[s.rng.Intn(len(population))]
	}

	target := s.rng.Float64() * total
	cumulative := 0.0
	for i, w := range shifted {
		cumulative += w
		if cumulative >= target {
			return population[i]
		}
	}
	return population[len(population)-1]
}

func (s *geneticSolver) elite(population []chromosome, fitnesses []float64, count int) []chromosome {
	idx := make([]int, len(population))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return fitnesses[idx[i]] > fitnesses[idx[j]] })
	if count > len(idx) {
		count = len(idx)
	}
	out := make([]chromosome, count)
	for i := 0; i < count; i++ {
		out[i] = population[idx[i]].clone()
	}
	return out
}

func (s *geneticSolver) twoPointCrossover(a, b chromosome) (chromosome, chromosome) {
	n := len(a.genes)
	if n < 2 {
		return s.repair(a.clone()), s.repair(b.clone())
	}
	p1 := s.rng.Intn(n)
	p2 := s.rng.Intn(n)
	if p1 > p2 {
		p1, p2 = p2, p1
	}

	childA, childB := a.clone(), b.clone()
	for i := p1; i <= p2 && i < n; i++ {
		childA.genes[i], childB.genes[i] = childB.genes[i], childA.genes[i]
	}
	return s.repair(childA), s.repair(childB)
}

func (s *geneticSolver) maybeMutate(c chromosome) chromosome {
	if s.rng.Float64() >= s.settings.MutationRate {
		return c
	}
	switch s.rng.Intn(3) {
	case 0:
		c = s.mutateSwap(c)
	case 1:
		c = s.mutateTransfer(c)
	default:
		c = s.mutateShift(c)
	}
	return s.repair(c)
}

func (s *geneticSolver) mutateSwap(c chromosome) chromosome {
	n := len(c.genes)
	if n < 2 {
		return c
	}
	i, j := s.rng.Intn(n), s.rng.Intn(n)
	c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	return c
}

func (s *geneticSolver) mutateTransfer(c chromosome) chromosome {
	n := len(c.genes)
	if n < 2 {
		return c
	}
	from := s.rng.Intn(n)
	if c.genes[from].cargoID == "" {
		return c
	}
	to := s.rng.Intn(n)
	if to == from {
		return c
	}
	if c.genes[to].cargoID != "" && c.genes[to].cargoID != c.genes[from].cargoID {
		return c
	}
	amount := c.genes[from].quantity * (0.01 + s.rng.Float64()*0.29) // up to 30%
	room := s.tankCapacity[s.tankIDs[to]] - c.genes[to].quantity
	if amount > room {
		amount = room
	}
	if amount <= 1e-9 {
		return c
	}
	cargoID := c.genes[from].cargoID
	c.genes[from].quantity -= amount
	if c.genes[from].quantity <= 1e-9 {
		c.genes[from].cargoID = ""
		c.genes[from].quantity = 0
	}
	c.genes[to].cargoID = cargoID
	c.genes[to].quantity += amount
	return c
}

func (s *geneticSolver) mutateShift(c chromosome) chromosome {
	tanksByCargo := make(map[string][]int)
	for i, g := range c.genes {
		if g.cargoID != "" {
			tanksByCargo[g.cargoID] = append(tanksByCargo[g.cargoID], i)
		}
	}
	var multi [][]int
	for _, idxs := range tanksByCargo {
		if len(idxs) >= 2 {
			multi = append(multi, idxs)
		}
	}
	if len(multi) == 0 {
		return c
	}
	group := multi[s.rng.Intn(len(multi))]
	from := group[s.rng.Intn(len(group))]
	to := s.rng.Intn(len(c.genes))
	if to == from {
		return c
	}
	cargoID := c.genes[from].cargoID
	if c.genes[to].cargoID != "" && c.genes[to].cargoID != cargoID {
		return c
	}
	amount := c.genes[from].quantity * (0.01 + s.rng.Float64()*0.49) // up to 50%
	room := s.tankCapacity[s.tankIDs[to]] - c.genes[to].quantity
	if amount > room {
		amount = room
	}
	if amount <= 1e-9 {
		return c
	}
	c.genes[from].quantity -= amount
	if c.genes[from].quantity <= 1e-9 {
		c.genes[from].cargoID = ""
		c.genes[from].quantity = 0
	}
	c.genes[to].cargoID = cargoID
	c.genes[to].quantity += amount
	return c
}

func (s *geneticSolver) applyToPlan(c chromosome, plan *stowage.Plan) {
	for i, id := range s.tankIDs {
		g := c.genes[i]
		if g.cargoID == "" || g.quantity <= 1e-9 {
			continue
		}
		plan.Place(stowage.Assignment{TankID: id, CargoID: g.cargoID, QuantityLoaded: g.quantity})
	}
}

// fillEmptyTanksWithRemaining is the GA's post-fill pass: sort still-
// empty tanks ascending by volume, and remaining regular cargoes
// descending by remaining quantity, then greedily top up.
func fillEmptyTanksWithRemaining(ship *stowage.Ship, plan *stowage.Plan, available AvailableCapacity, regular []*stowage.Cargo, minUtilization float64) {
	var emptyTankIDs []string
	for id, cap := range available {
		if cap <= 0 {
			continue
		}
		if _, placed := plan.Assignments[id]; placed {
			continue
		}
		emptyTankIDs = append(emptyTankIDs, id)
	}
	sort.Slice(emptyTankIDs, func(i, j int) bool { return available[emptyTankIDs[i]] < available[emptyTankIDs[j]] })

	type remainder struct {
		cargo     *stowage.Cargo
		remaining float64
	}
	var remainders []remainder
	for _, c := range regular {
		remaining := c.RequestedVolume - plan.LoadedVolumeForCargo(c.ID)
		if remaining > 1e-9 {
			remainders = append(remainders, remainder{cargo: c, remaining: remaining})
		}
	}
	sort.Slice(remainders, func(i, j int) bool { return remainders[i].remaining > remainders[j].remaining })

	for _, tankID := range emptyTankIDs {
		tank := ship.TankByID(tankID)
		if tank == nil {
			continue
		}
		for i := range remainders {
			if remainders[i].remaining <= 1e-9 {
				continue
			}
			q := math.Min(remainders[i].remaining, available[tankID])
			q = math.Min(q, tank.Volume)
			if !stowage.MeetsMinUtilization(q, tank.Volume, minUtilization) {
				continue
			}
			plan.Place(stowage.Assignment{TankID: tankID, CargoID: remainders[i].cargo.ID, QuantityLoaded: q})
			available[tankID] -= q
			remainders[i].remaining -= q
			break
		}
	}
}
