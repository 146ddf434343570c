/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sampler.go
Description: Parallel corpus sampling. The requested draws are split across a fixed
pool of workers; each worker owns a random stream seeded from the base seed and its
index, tallies a partial table, and the partial tables are merged at the end. For a
given seed and worker count the result is reproducible.
*/

package corpus

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/kleascm/langgen/pkg/language"
	"github.com/sirupsen/logrus"
)

// seedStride separates the per-worker random streams
const seedStride = 1_000_003

// cancelCheckEvery is how many draws a worker makes between context checks
const cancelCheckEvery = 256

// SamplerConfig holds the worker pool settings
type SamplerConfig struct {
	Workers int            // Number of workers, defaults to GOMAXPROCS
	Seed    int64          // Base seed for the per-worker streams
	Alpha   float64        // Noise parameter in (0, 1]; the zero value means DefaultAlpha
	Logger  *logrus.Logger // Optional; a silent logger is used when nil
}

// Sampler fans corpus sampling out over a worker pool
type Sampler struct {
	config SamplerConfig
	logger *logrus.Logger

	// Statistics
	mu       sync.RWMutex
	runs     int64
	draws    int64
	failures int64
	elapsed  time.Duration
}

// NewSampler creates a sampler, filling in defaults
func NewSampler(config SamplerConfig) *Sampler {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Alpha == 0 {
		config.Alpha = DefaultAlpha
	}
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetLevel(logrus.PanicLevel)
	}
	return &Sampler{config: config, logger: logger}
}

// Workers returns the pool size
func (s *Sampler) Workers() int {
	return s.config.Workers
}

// share returns how many of n draws worker i makes
func share(n, workers, i int) int {
	q := n / workers
	if i < n%workers {
		q++
	}
	return q
}

// Sample draws n strings from lang across the pool. The first worker error
// cancels the others and is returned.
func (s *Sampler) Sample(ctx context.Context, lang language.Language, n int) (*Datum, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	if a := s.config.Alpha; a <= 0 || a > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidAlpha, a)
	}

	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := min(s.config.Workers, max(n, 1))
	partials := make([]map[string]int, workers)
	errs := make([]error, workers)

	s.logger.WithFields(logrus.Fields{
		"language": lang.Name(),
		"n":        n,
		"workers":  workers,
		"seed":     s.config.Seed,
	}).Debug("Sampling corpus")

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(s.config.Seed + int64(id)*seedStride))
			partials[id], errs[id] = s.work(ctx, id, lang, share(n, workers, id), rng)
			if errs[id] != nil {
				cancel()
			}
		}(i)
	}
	wg.Wait()

	if err := firstError(errs); err != nil {
		s.record(0, true, time.Since(start))
		s.logger.WithFields(logrus.Fields{
			"language": lang.Name(),
			"error":    err,
		}).Warn("Sampling failed")
		return nil, err
	}

	d := NewDatum(lang.Name(), s.config.Alpha)
	for _, p := range partials {
		for str, c := range p {
			d.Add(str, c)
		}
	}

	s.record(n, false, time.Since(start))
	s.logger.WithFields(logrus.Fields{
		"language": lang.Name(),
		"n":        d.N,
		"distinct": len(d.Output),
		"duration": time.Since(start),
	}).Info("Corpus sampled")
	return d, nil
}

// work is one worker's loop
func (s *Sampler) work(ctx context.Context, id int, lang language.Language, quota int, rng *rand.Rand) (map[string]int, error) {
	counts := make(map[string]int)
	for i := 0; i < quota; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		str, err := lang.SampleString(rng)
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", id, err)
		}
		counts[str]++
	}

	s.logger.WithFields(logrus.Fields{
		"worker":   id,
		"language": lang.Name(),
		"draws":    quota,
	}).Debug("Worker finished")
	return counts, nil
}

// firstError prefers a real failure over the cancellations it caused
func firstError(errs []error) error {
	var canceled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			if canceled == nil {
				canceled = err
			}
			continue
		}
		return err
	}
	return canceled
}

func (s *Sampler) record(draws int, failed bool, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs++
	s.draws += int64(draws)
	if failed {
		s.failures++
	}
	s.elapsed += d
}

// GetStats returns sampler statistics
func (s *Sampler) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})
	stats["workers"] = s.config.Workers
	stats["runs"] = s.runs
	stats["draws"] = s.draws
	stats["failures"] = s.failures
	stats["elapsed"] = s.elapsed
	if secs := s.elapsed.Seconds(); secs > 0 {
		stats["draws_per_second"] = float64(s.draws) / secs
	}
	return stats
}
