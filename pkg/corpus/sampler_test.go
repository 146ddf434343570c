/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sampler_test.go
Description: Test suite for the parallel corpus sampler: totals, reproducibility,
cancellation, error propagation and statistics.
*/

package corpus_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/kleascm/langgen/pkg/corpus"
	"github.com/kleascm/langgen/pkg/language"
	"github.com/kleascm/langgen/pkg/language/catalog"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type SamplerSuite struct {
	suite.Suite
	lang    language.Language
	logs    *bytes.Buffer
	logger  *logrus.Logger
	sampler *corpus.Sampler
}

func (s *SamplerSuite) SetupTest() {
	l, err := catalog.Get("AnBn")
	s.Require().NoError(err)
	s.lang = l

	s.logs = &bytes.Buffer{}
	s.logger = logrus.New()
	s.logger.SetOutput(s.logs)
	s.logger.SetLevel(logrus.DebugLevel)

	s.sampler = corpus.NewSampler(corpus.SamplerConfig{Workers: 4, Seed: 7, Logger: s.logger})
}

func (s *SamplerSuite) TestCountsSumToN() {
	for _, n := range []int{0, 1, 3, 1000, 1001} {
		d, err := s.sampler.Sample(context.Background(), s.lang, n)
		s.Require().NoError(err)

		sum := 0
		for _, c := range d.Output {
			sum += c
		}
		s.Equal(n, sum)
		s.Equal(n, d.N)
		s.Equal(corpus.DefaultAlpha, d.Alpha)
	}
}

func (s *SamplerSuite) TestReproducible() {
	a, err := s.sampler.Sample(context.Background(), s.lang, 5000)
	s.Require().NoError(err)

	again := corpus.NewSampler(corpus.SamplerConfig{Workers: 4, Seed: 7})
	b, err := again.Sample(context.Background(), s.lang, 5000)
	s.Require().NoError(err)

	s.Equal(a.Output, b.Output)
	s.NotEqual(a.ID, b.ID)
}

func (s *SamplerSuite) TestDistributionMatchesSerial() {
	d, err := s.sampler.Sample(context.Background(), s.lang, 20000)
	s.Require().NoError(err)

	// n is geometric with stopping probability 1/3
	s.InDelta(1.0/3, d.Probability("ab"), 0.015)
	s.InDelta(2.0/9, d.Probability("aabb"), 0.015)
}

func (s *SamplerSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.sampler.Sample(ctx, s.lang, 1000)
	s.ErrorIs(err, context.Canceled)
	s.EqualValues(1, s.sampler.GetStats()["failures"])
}

func (s *SamplerSuite) TestWorkerErrorWins() {
	never := language.Filter("never", s.lang, func(string) bool { return false },
		language.WithMaxRejections(3))

	_, err := s.sampler.Sample(context.Background(), never, 100)
	s.ErrorIs(err, language.ErrRejectionLimit)
	s.Contains(s.logs.String(), "Sampling failed")
}

func (s *SamplerSuite) TestInvalidCount() {
	_, err := s.sampler.Sample(context.Background(), s.lang, -5)
	s.ErrorIs(err, corpus.ErrInvalidCount)
}

func (s *SamplerSuite) TestStatsAndLogging() {
	_, err := s.sampler.Sample(context.Background(), s.lang, 100)
	s.Require().NoError(err)
	_, err = s.sampler.Sample(context.Background(), s.lang, 50)
	s.Require().NoError(err)

	stats := s.sampler.GetStats()
	s.Equal(4, stats["workers"])
	s.EqualValues(2, stats["runs"])
	s.EqualValues(150, stats["draws"])
	s.EqualValues(0, stats["failures"])

	s.Contains(s.logs.String(), "Corpus sampled")
	s.Contains(s.logs.String(), "Worker finished")
}

func (s *SamplerSuite) TestDefaults() {
	sm := corpus.NewSampler(corpus.SamplerConfig{})
	s.Positive(sm.Workers())

	d, err := sm.Sample(context.Background(), s.lang, 10)
	s.Require().NoError(err)
	s.Equal(10, d.N)
	s.Equal(corpus.DefaultAlpha, d.Alpha)
}

func (s *SamplerSuite) TestInvalidAlpha() {
	for _, alpha := range []float64{-0.5, 1.5} {
		sm := corpus.NewSampler(corpus.SamplerConfig{Workers: 2, Alpha: alpha})
		_, err := sm.Sample(context.Background(), s.lang, 10)
		s.ErrorIs(err, corpus.ErrInvalidAlpha, "alpha %g", alpha)
	}

	sm := corpus.NewSampler(corpus.SamplerConfig{Workers: 2, Alpha: 1})
	d, err := sm.Sample(context.Background(), s.lang, 10)
	s.Require().NoError(err)
	s.Equal(1.0, d.Alpha)
}

func TestSamplerSuite(t *testing.T) {
	suite.Run(t, new(SamplerSuite))
}
