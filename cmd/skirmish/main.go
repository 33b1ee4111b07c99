// Package main provides the skirmish binary that loads the content catalog
// and auto-plays a two-unit duel, printing the match transcript.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/look-itsaxiom/summoners-grid-sub002/internal/config"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/board"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/catalog"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/game/unit"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/match"
	"github.com/look-itsaxiom/summoners-grid-sub002/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "content catalog directory; overrides config")
	seed := flag.Int64("seed", 0, "deterministic dice seed; 0 = crypto randomness")
	northID := flag.String("north", "gignen", "species id summoned by the north side")
	southID := flag.String("south", "fae", "species id summoned by the south side")
	roleID := flag.String("role", "adept", "role id for both units")
	weaponID := flag.String("weapon", "iron_sword", "weapon id for both units")
	maxTurns := flag.Int("max-turns", 50, "turn limit before the duel is called a draw")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Dir = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.Content.Dir)
	if err != nil {
		logger.Fatal("loading content catalog", zap.Error(err))
	}
	species, roles, equipment, actions := cat.Counts()
	logger.Info("content catalog loaded",
		zap.Int("species", species),
		zap.Int("roles", roles),
		zap.Int("equipment", equipment),
		zap.Int("actions", actions),
	)

	mgr := match.NewManager(logger)
	mcfg := match.Config{
		BoardWidth:     cfg.Board.Width,
		BoardHeight:    cfg.Board.Height,
		TerritoryDepth: cfg.Board.TerritoryDepth,
		StartingLevel:  cfg.Match.StartingLevel,
	}
	var m *match.Match
	if *seed != 0 {
		m = mgr.CreateSeeded(mcfg, *seed)
	} else {
		m = mgr.Create(mcfg)
	}

	role := mustRole(cat, *roleID)
	weapon := mustWeapon(cat, *weaponID)

	mid := cfg.Board.Width / 2
	north, err := m.Summon(mustSpecies(cat, *northID), role, board.SideNorth,
		[]*catalog.EquipmentDef{weapon}, board.Position{X: mid, Y: cfg.Board.TerritoryDepth - 1})
	if err != nil {
		logger.Fatal("summoning north unit", zap.Error(err))
	}
	south, err := m.Summon(mustSpecies(cat, *southID), role, board.SideSouth,
		[]*catalog.EquipmentDef{weapon}, board.Position{X: mid, Y: cfg.Board.Height - cfg.Board.TerritoryDepth})
	if err != nil {
		logger.Fatal("summoning south unit", zap.Error(err))
	}
	fmt.Println(north)
	fmt.Println(south)

	for m.Turn() <= *maxTurns {
		if _, over := m.Winner(); over {
			break
		}
		playSide(m, logger)
		m.EndTurn()
	}

	fmt.Println()
	for _, line := range m.Transcript() {
		fmt.Println(line)
	}
	fmt.Println()

	if winner, over := m.Winner(); over {
		fmt.Printf("winner: %s after %d turns (%s)\n", winner, m.Turn(), time.Since(start).Round(time.Millisecond))
	} else {
		fmt.Printf("draw after %d turns (%s)\n", *maxTurns, time.Since(start).Round(time.Millisecond))
	}
}

// playSide takes one greedy action per unit of the active side: attack the
// nearest enemy in range, otherwise step toward it.
func playSide(m *match.Match, logger *zap.Logger) {
	side := m.ActiveSide()
	for _, u := range m.Units() {
		if u.Side() != side {
			continue
		}
		enemy := nearestEnemy(m, u)
		if enemy == nil {
			return
		}
		if board.Chebyshev(u.Position(), enemy.Position()) <= u.AttackRange() {
			if _, err := m.Attack(u.ID(), enemy.ID()); err != nil {
				logger.Fatal("attacking", zap.Error(err))
			}
			continue
		}
		if dest, ok := stepToward(m.Board(), u, enemy.Position()); ok {
			if _, err := m.Move(u.ID(), dest); err != nil {
				logger.Fatal("moving", zap.Error(err))
			}
			// Attack immediately if the step brought the enemy into range.
			if board.Chebyshev(dest, enemy.Position()) <= u.AttackRange() {
				if _, err := m.Attack(u.ID(), enemy.ID()); err != nil {
					logger.Fatal("attacking", zap.Error(err))
				}
			}
		}
	}
}

func nearestEnemy(m *match.Match, u *unit.State) *unit.State {
	var best *unit.State
	bestDist := 0
	for _, other := range m.Units() {
		if other.Side() == u.Side() {
			continue
		}
		d := board.Chebyshev(u.Position(), other.Position())
		if best == nil || d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}

func stepToward(b *board.Board, u *unit.State, goal board.Position) (board.Position, bool) {
	var best board.Position
	bestDist := -1
	for _, p := range b.ValidMovementPositions(u) {
		d := board.Chebyshev(p, goal)
		if bestDist == -1 || d < bestDist {
			best, bestDist = p, d
		}
	}
	if bestDist == -1 || bestDist >= board.Chebyshev(u.Position(), goal) {
		return board.Position{}, false
	}
	return best, true
}

func mustSpecies(cat *catalog.Catalog, id string) *catalog.SpeciesDef {
	def, ok := cat.Species(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown species %q\n", id)
		os.Exit(1)
	}
	return def
}

func mustRole(cat *catalog.Catalog, id string) *catalog.RoleDef {
	def, ok := cat.Role(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", id)
		os.Exit(1)
	}
	return def
}

func mustWeapon(cat *catalog.Catalog, id string) *catalog.EquipmentDef {
	def, ok := cat.Equipment(id)
	if !ok || !def.IsWeapon() {
		fmt.Fprintf(os.Stderr, "unknown weapon %q\n", id)
		os.Exit(1)
	}
	return def
}
