// Package sampler implements the demo workload: a primary-phase invoker that
// picks random words and a late-phase invoker that reports on recent picks.
package sampler

import (
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tylerbonnell/brigsby/internal/config"
	"github.com/tylerbonnell/brigsby/internal/engine"
	"github.com/tylerbonnell/brigsby/internal/invoker"
	"github.com/tylerbonnell/brigsby/internal/lists"
)

// DefaultWords is the predefined word pool.
var DefaultWords = []string{
	"alpha", "beta", "gamma", "delta", "epsilon",
	"zeta", "eta", "theta", "iota", "kappa",
}

// Report summarizes the current pick history.
type Report struct {
	Picks    uint64
	Mode     string
	Last     string
	Shortest string
	Longest  string
}

// Sampler owns the word pool and the history shared by its two invokers.
// Like the engine, it is not safe for concurrent use.
type Sampler struct {
	cfg    *config.Config
	logger *zap.Logger
	rng    *rand.Rand

	words   []string
	history []string
	picks   uint64
}

// New creates a Sampler over a private copy of words. An empty words uses
// DefaultWords.
func New(cfg *config.Config, logger *zap.Logger, rng *rand.Rand, words []string) *Sampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(words) == 0 {
		words = DefaultWords
	}
	pool := make([]string, len(words))
	copy(pool, words)

	return &Sampler{
		cfg:    cfg,
		logger: logger,
		rng:    rng,
		words:  pool,
	}
}

// Picker returns a primary-phase invoker that picks a word on every firing.
func (s *Sampler) Picker() *invoker.Repeated {
	return invoker.New(s.pick,
		invoker.WithName("picker"),
		invoker.WithLogger(s.logger),
	)
}

// Reporter returns a late-phase invoker that reports on the picks made so far,
// including those made earlier in the same cycle.
func (s *Sampler) Reporter() *invoker.Late {
	return invoker.NewLate(s.report,
		invoker.WithName("reporter"),
		invoker.WithLogger(s.logger),
		invoker.WithInitialDelay(s.cfg.ReportInterval),
	)
}

func (s *Sampler) pick(data engine.UpdateData, execution int) time.Duration {
	word := lists.OneOf(s.rng, s.words)
	s.remember(word)

	s.logger.Info("pick",
		zap.Uint64("tick", data.Tick),
		zap.Int("execution", execution),
		zap.String("word", word),
	)

	return RandomDelay(s.rng, s.cfg.MinDelay, s.cfg.MaxDelay)
}

func (s *Sampler) report(data engine.UpdateData, execution int) time.Duration {
	r, ok := s.Report()
	if !ok {
		s.logger.Info("report", zap.Uint64("tick", data.Tick), zap.Uint64("picks", 0))
		return s.cfg.ReportInterval
	}

	s.logger.Info("report",
		zap.Uint64("tick", data.Tick),
		zap.Int("execution", execution),
		zap.Uint64("picks", r.Picks),
		zap.String("mode", r.Mode),
		zap.String("last", r.Last),
		zap.String("shortest", r.Shortest),
		zap.String("longest", r.Longest),
	)

	// Reorder the pool so the next window starts from a fresh permutation.
	lists.Shuffle(s.rng, s.words)

	return s.cfg.ReportInterval
}

// remember appends word to the history, keeping at most HistorySize entries.
func (s *Sampler) remember(word string) {
	s.picks++
	s.history = append(s.history, word)
	if limit := s.cfg.HistorySize; limit > 0 && len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

// Report summarizes the history. It reports false if nothing was picked yet.
func (s *Sampler) Report() (Report, bool) {
	mode, ok := lists.Mode(s.history)
	if !ok {
		return Report{}, false
	}
	last, _ := lists.Last(s.history)
	length := func(w string) int { return len(w) }
	shortest, _ := lists.MinBy(s.history, length)
	longest, _ := lists.MaxBy(s.history, length)

	return Report{
		Picks:    s.picks,
		Mode:     mode,
		Last:     last,
		Shortest: shortest,
		Longest:  longest,
	}, true
}

// FindWithPrefix returns a random pool word starting with prefix.
func (s *Sampler) FindWithPrefix(prefix string) (string, bool) {
	return lists.FindRandom(s.rng, s.words, func(w string) bool {
		return strings.HasPrefix(w, prefix)
	})
}

// History returns a copy of the recent picks, oldest first.
func (s *Sampler) History() []string {
	h := make([]string, len(s.history))
	copy(h, s.history)
	return h
}

// Words returns a copy of the word pool in its current order.
func (s *Sampler) Words() []string {
	w := make([]string, len(s.words))
	copy(w, s.words)
	return w
}
