// Command agent runs a single headless Pong or Catch simulation, driving
// a stochastic spiking network against its environment for a fixed
// number of ticks and recording the result (spec.md §6 "External
// interfaces").
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vlachapelle/spikepaddle/agentlog"
	"github.com/vlachapelle/spikepaddle/agentrand"
	"github.com/vlachapelle/spikepaddle/config"
	"github.com/vlachapelle/spikepaddle/geometry"
	"github.com/vlachapelle/spikepaddle/results"
	"github.com/vlachapelle/spikepaddle/simulation"
)

var (
	simKind    = flag.String("sim", "catch", "which environment to run: \"catch\" or \"pong\"")
	batch      = flag.Bool("batch", false, "pong only: drive the opposing paddle with a PID tracker (default)")
	random     = flag.Bool("random", false, "pong only: drive the opposing paddle with a random walk instead of a PID tracker")
	coefFlag   = flag.String("coef", "", "override decay,exploration,strengthening, comma-separated (e.g. 0.02,0.0003,1.1)")
	configPath = flag.String("config", "", "YAML config file overlaying the embedded defaults")
	outDir     = flag.String("out", "results", "result directory root; a subdirectory is created per run")
	seed       = flag.Int64("seed", 1, "RNG seed")
	ticks      = flag.Int("ticks", 10000, "number of ticks to run")
)

// coefOverride holds a --coef override, parsed from "decay,exploration,strengthening".
type coefOverride struct {
	decay, exploration, strengthening float64
}

func parseCoef(s string) (*coefOverride, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("--coef must be three comma-separated values (decay,exploration,strengthening), got %q", s)
	}
	values := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("--coef value %q is not a number: %w", p, err)
		}
		values[i] = v
	}
	return &coefOverride{decay: values[0], exploration: values[1], strengthening: values[2]}, nil
}

// environment is the common surface the run loop drives, built by
// adapting either a *simulation.Catch or a *simulation.Pong.
type environment struct {
	step              func() error
	envHistory        func() [][]geometry.Vector2D
	freeEnergyHistory func() []float64
	outcomes          func() ([]bool, []int)
	successRate       func() float64
}

func catchEnvironment(c *simulation.Catch) environment {
	return environment{
		step:              c.Step,
		envHistory:        c.EnvHistory,
		freeEnergyHistory: c.Network.FreeEnergyHistory,
		outcomes:          func() ([]bool, []int) { return outcomeSlices(c.SuccessHistory()) },
		successRate:       c.AverageSuccessRate,
	}
}

func pongEnvironment(p *simulation.Pong) environment {
	return environment{
		step:              p.Step,
		envHistory:        p.EnvHistory,
		freeEnergyHistory: p.Network.FreeEnergyHistory,
		outcomes:          func() ([]bool, []int) { return outcomeSlices(p.SuccessHistory()) },
		successRate: func() float64 {
			history := p.SuccessHistory()
			if len(history) == 0 {
				return 0
			}
			caught := 0
			for _, o := range history {
				if o.Caught {
					caught++
				}
			}
			return float64(caught) / float64(len(history))
		},
	}
}

func outcomeSlices(history []simulation.Outcome) ([]bool, []int) {
	outcomes := make([]bool, len(history))
	ticks := make([]int, len(history))
	for i, o := range history {
		outcomes[i] = o.Caught
		ticks[i] = o.Tick
	}
	return outcomes, ticks
}

func run() error {
	flag.Parse()

	if *batch && *random {
		return fmt.Errorf("--batch and --random are mutually exclusive")
	}

	if err := config.Init(*configPath); err != nil {
		return err
	}
	cfg := config.Cfg()

	coef, err := parseCoef(*coefFlag)
	if err != nil {
		return err
	}

	runSeed := *seed
	rng := agentrand.New(runSeed)

	sensoryNames, motorNames, net, err := buildNetwork(networkConfig(cfg, coef), rng)
	if err != nil {
		return err
	}

	var env environment
	switch *simKind {
	case "catch":
		c, err := buildCatch(cfg, net, sensoryNames, motorNames, rng)
		if err != nil {
			return err
		}
		env = catchEnvironment(c)
	case "pong":
		opponent := opponentPID
		if *random {
			opponent = opponentRandomWalk
		}
		p, err := buildPong(cfg, net, sensoryNames, motorNames, rng, opponent)
		if err != nil {
			return err
		}
		env = pongEnvironment(p)
	default:
		return fmt.Errorf("unknown --sim %q, want \"catch\" or \"pong\"", *simKind)
	}

	runName := fmt.Sprintf("%s-seed%d", *simKind, runSeed)
	om, err := results.NewOutputManager(*outDir, runName)
	if err != nil {
		return err
	}
	defer om.Close()

	cfg.Simulation.Seed = runSeed
	if coef != nil {
		cfg.Network.DecayCoefficient = coef.decay
		cfg.Network.ExplorationRate = coef.exploration
		cfg.Network.StrengtheningExponent = coef.strengthening
	}
	if err := om.WriteConfig(cfg); err != nil {
		return err
	}

	agentlog.Logf("starting %s run %q for %d ticks", *simKind, runName, *ticks)

	for t := 0; t < *ticks; t++ {
		if err := env.step(); err != nil {
			return err
		}
		freeEnergy := 0.0
		if history := env.freeEnergyHistory(); len(history) > 0 {
			freeEnergy = history[len(history)-1]
		}
		row := results.TelemetryRow{Tick: t, FreeEnergy: freeEnergy, RunningSuccessRate: env.successRate()}
		if err := om.WriteTelemetryRow(row); err != nil {
			return err
		}
	}

	if err := om.WriteEnvHistory(env.envHistory()); err != nil {
		return err
	}
	if err := om.WriteFreeEnergyHistory(env.freeEnergyHistory()); err != nil {
		return err
	}
	outcomes, ticksAt := env.outcomes()
	if err := om.WriteSuccessHistory(outcomes, ticksAt); err != nil {
		return err
	}

	agentlog.Logf("finished %s run %q: success rate %.4f", *simKind, runName, env.successRate())
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
