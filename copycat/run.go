package copycat

import (
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/copycat/codelets"
	"github.com/katalvlaran/copycat/coderack"
	"github.com/katalvlaran/copycat/randutil"
	"github.com/katalvlaran/copycat/slipnet"
	"github.com/katalvlaran/copycat/workspace"
)

// Result is the outcome of a single Run: the answer string (or
// NoAnswer on exhaustion), the temperature at the moment the run
// stopped, and the number of coderack steps actually taken.
type Result struct {
	Answer      string
	Temperature float64
	Steps       int
}

// Run executes spec.md §4.5's main loop exactly once: it builds a
// fresh Slipnet and Workspace, posts the bootstrap codelet cohort, then
// alternates Slipnet updates, Temperature updates, top-down posting,
// and Coderack.ChooseAndRun for up to cfg.MaxSteps steps. It stops
// with an Answer at the first step where a Rule is built, the
// Workspace is ReadyToAnswer (clamp over, temperature at or below
// AnswerTemperatureThreshold) and the Rule translates; a translatable
// Rule alone does not stop the run. When the step budget runs out, it
// answers on whatever Rule is on hand, and returns NoAnswer only if
// none translates.
//
// logger may be nil; when non-nil it receives a Debug line each time
// the Coderack runs empty and is reseeded, plus a final Debug line
// noting how the run stopped. Individual steps are not logged.
func Run(cfg Config, initial, modified, target string, logger *zap.SugaredLogger) (Result, error) {
	if initial == "" || modified == "" || target == "" {
		return Result{}, ErrEmptyString
	}

	sn, err := slipnet.Build()
	if err != nil {
		return Result{}, err
	}
	w, err := workspace.New(sn, initial, modified, target, cfg.ClampTime, cfg.TemperatureFormula)
	if err != nil {
		return Result{}, err
	}
	rack := coderack.New()
	rng := randutil.NewRand(cfg.Seed)

	codelets.PostBootstrap(rack, sn, w, rng)

	for step := 1; step <= cfg.MaxSteps; step++ {
		if cfg.SlipnetUpdatePeriod > 0 && step%cfg.SlipnetUpdatePeriod == 0 {
			sn.Update(rng, w.Temperature.Clamped())
			codelets.PostTopDown(rack, sn, w, rng)
		}
		if cfg.TemperatureUpdatePeriod > 0 && step%cfg.TemperatureUpdatePeriod == 0 {
			w.Initial.UpdateUnhappiness()
			w.Target.UpdateUnhappiness()
			w.Temperature.Update(w.TotalUnhappiness())
		}
		w.Temperature.TryUnclamp(step)
		if cfg.CoderackUpdatePeriod > 0 && step%cfg.CoderackUpdatePeriod == 0 {
			rack.AgeTick(1)
		}

		if err := rack.ChooseAndRun(rng, w.Temperature.Value()); err != nil {
			if logger != nil {
				logger.Debugw("coderack empty, reseeding bootstrap", "step", step)
			}
			codelets.PostBootstrap(rack, sn, w, rng)
			continue
		}

		if w.Rule != nil && w.ReadyToAnswer() {
			answer, err := w.BuildAnswer()
			if err == nil {
				if logger != nil {
					logger.Debugw("run solved", "step", step, "answer", answer, "temperature", w.Temperature.Value())
				}
				return Result{Answer: answer, Temperature: w.Temperature.Value(), Steps: step}, nil
			}
		}
	}

	// MaxSteps exhausted without ever cooling below
	// AnswerTemperatureThreshold: answer anyway on whatever rule is on
	// hand rather than discarding it, matching the original's "the run
	// always ends with whatever answer it has, clamped or not" fallback.
	if w.Rule != nil {
		if answer, err := w.BuildAnswer(); err == nil {
			if logger != nil {
				logger.Debugw("run exhausted, answering anyway", "max_steps", cfg.MaxSteps, "answer", answer, "temperature", w.Temperature.Value())
			}
			return Result{Answer: answer, Temperature: w.Temperature.Value(), Steps: cfg.MaxSteps}, nil
		}
	}

	if logger != nil {
		logger.Debugw("run exhausted", "max_steps", cfg.MaxSteps, "temperature", w.Temperature.Value())
	}
	return Result{Answer: NoAnswer, Temperature: w.Temperature.Value(), Steps: cfg.MaxSteps}, nil
}

// AnswerStats aggregates one answer's occurrences across a RunMany
// batch: how many of the iterations produced it, and their average
// stopping temperature.
type AnswerStats struct {
	Count          int
	AvgTemperature float64
}

// RunMany executes iterations independent Run calls — concurrently,
// via golang.org/x/sync/errgroup, each with its own
// randutil.DeriveRNG(cfg.Seed, streamIndex) stream so results are
// reproducible regardless of goroutine scheduling — and aggregates
// them into a per-answer histogram, per spec.md §6's entry-point
// signature.
//
// Grounded on original_source's copycat-fargonauts/copycat/problem.py
// Problem.solve, generalized from its per-formula sequential loop to a
// concurrent per-iteration fan-out.
func RunMany(cfg Config, initial, modified, target string, iterations int, logger *zap.SugaredLogger) (map[string]AnswerStats, error) {
	if iterations <= 0 {
		return nil, ErrNonPositiveIterations
	}
	if initial == "" || modified == "" || target == "" {
		return nil, ErrEmptyString
	}

	results := make([]Result, iterations)
	var g errgroup.Group
	for i := 0; i < iterations; i++ {
		i := i
		g.Go(func() error {
			iterCfg := cfg
			rng := randutil.DeriveRNG(cfg.Seed, uint64(i))
			iterCfg.Seed = rng.Int63()
			r, err := Run(iterCfg, initial, modified, target, logger)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	histogram := make(map[string]AnswerStats)
	sums := make(map[string]float64)
	for _, r := range results {
		stats := histogram[r.Answer]
		stats.Count++
		sums[r.Answer] += r.Temperature
		histogram[r.Answer] = stats
	}
	for answer, stats := range histogram {
		stats.AvgTemperature = sums[answer] / float64(stats.Count)
		histogram[answer] = stats
	}
	return histogram, nil
}

// SortedAnswers returns the histogram's answer keys ordered by
// descending count (ties broken alphabetically), the order a CLI table
// or test assertion wants to present results in.
func SortedAnswers(histogram map[string]AnswerStats) []string {
	out := make([]string, 0, len(histogram))
	for answer := range histogram {
		out = append(out, answer)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := histogram[out[i]], histogram[out[j]]
		if si.Count != sj.Count {
			return si.Count > sj.Count
		}
		return out[i] < out[j]
	})
	return out
}
