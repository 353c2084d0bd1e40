package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kwanzafolio/kwanzafolio-backend/internal/advisory"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/format"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/model"
	"github.com/kwanzafolio/kwanzafolio-backend/internal/simulation"
)

// SimulatorService runs the reinvestment simulator for the session.
//
// The two scenario values are computed synchronously and returned at once.
// The advisory text is requested in the background and published under the
// run's sequence number; a reply whose sequence is no longer the latest is
// dropped, so a slow answer to an earlier run never overwrites a newer one.
type SimulatorService struct {
	advisor   *advisory.Advisor
	formatter *format.Formatter
	logger    *zap.SugaredLogger

	mu      sync.Mutex
	seq     uint64
	insight model.Insight

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSimulatorService creates a new SimulatorService. A nil advisor behaves
// like one without credentials.
func NewSimulatorService(advisor *advisory.Advisor, formatter *format.Formatter, logger *zap.SugaredLogger) *SimulatorService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &SimulatorService{
		advisor:   advisor,
		formatter: formatter,
		logger:    logger,
		insight:   model.Insight{Status: model.InsightNone},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Run computes both scenarios and starts the advisory request.
//
// Parameters:
//   - in: simulator inputs; a blank label is sent to the advisor as "Título Geral"
//
// Returns the result tagged with a new sequence number. Poll Insight for the text.
func (s *SimulatorService) Run(in model.SimulationInput) model.SimulationRun {
	run := s.compute(in)

	s.mu.Lock()
	s.seq++
	run.Sequence = s.seq
	s.insight = model.Insight{Sequence: run.Sequence, Status: model.InsightPending}
	s.mu.Unlock()

	s.wg.Add(1)
	go func(seq uint64) {
		defer s.wg.Done()
		text := s.advisor.RequestInsight(s.ctx, in.Principal, in.HorizonYears, in.AnnualRatePercent, in.Label)
		s.publish(seq, text)
	}(run.Sequence)

	return run
}

// RunAndWait computes both scenarios and blocks for the advisory text.
// Used by the CLI, where there is nothing to poll.
func (s *SimulatorService) RunAndWait(ctx context.Context, in model.SimulationInput) (model.SimulationRun, string) {
	run := s.compute(in)
	text := s.advisor.RequestInsight(ctx, in.Principal, in.HorizonYears, in.AnnualRatePercent, in.Label)
	return run, text
}

// Insight returns the advisory state of the latest run.
func (s *SimulatorService) Insight() model.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insight
}

// Wait blocks until every outstanding advisory request has been published or dropped.
func (s *SimulatorService) Wait() {
	s.wg.Wait()
}

// Close cancels outstanding advisory requests and waits for them.
func (s *SimulatorService) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *SimulatorService) publish(seq uint64, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.Debugw("discarding stale advisory insight", "sequence", seq, "latest", s.seq)
		return
	}
	s.insight = model.Insight{Sequence: seq, Status: model.InsightReady, Text: text}
}

func (s *SimulatorService) compute(in model.SimulationInput) model.SimulationRun {
	res := simulation.Run(in)
	return model.SimulationRun{
		Input:  in,
		Result: res,
		Display: model.SimulationText{
			MaturityValue:        s.formatter.Currency(res.MaturityValue),
			ReinvestValue:        s.formatter.Currency(res.ReinvestValue),
			MaturityProfit:       s.formatter.SignedCurrency(res.MaturityProfit),
			ReinvestProfit:       s.formatter.SignedCurrency(res.ReinvestProfit),
			ExtraFromReinvesting: s.formatter.Percent(res.ExtraFromReinvesting, 1),
		},
	}
}
