// Package forecast runs the simulation once and publishes the finished result
// to concurrent readers.
package forecast

import (
	"sync"
	"sync/atomic"
	"time"

	"planet-weather/internal/model"
	"planet-weather/internal/simulation"

	"go.uber.org/zap"
)

// RunRecorder receives the outcome of a completed run.
type RunRecorder interface {
	ObserveRun(counts simulation.Counts, took time.Duration)
}

// Store memoizes one simulation run. Readers see either nothing or the
// complete result, never a partial one.
type Store struct {
	engine   *simulation.Engine
	horizon  int
	log      *zap.SugaredLogger
	recorder RunRecorder

	once    sync.Once
	err     error
	current atomic.Pointer[simulation.Result]
}

func NewStore(engine *simulation.Engine, horizon int, log *zap.SugaredLogger, recorder RunRecorder) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{engine: engine, horizon: horizon, log: log, recorder: recorder}
}

// Run executes the simulation on first call and returns the memoized result
// or error on every later call.
func (s *Store) Run() (*simulation.Result, error) {
	s.once.Do(func() {
		start := time.Now()
		res, err := s.engine.Run(s.horizon)
		if err != nil {
			s.err = err
			s.log.Errorw("simulation failed", "horizon_days", s.horizon, "error", err)
			return
		}
		took := time.Since(start)
		s.current.Store(res)

		counts := res.Counts()
		fields := []any{
			"horizon_days", s.horizon,
			"drought", counts.Drought,
			"rain", counts.Rain,
			"optimal", counts.Optimal,
			"undefined", counts.Undefined,
			"took", took,
		}
		if d, ok := res.RainiestDay(); ok {
			fields = append(fields, "rainiest_day", d.Index, "rainiest_perimeter", d.Perimeter)
		}
		s.log.Infow("simulation published", fields...)

		if s.recorder != nil {
			s.recorder.ObserveRun(counts, took)
		}
	})
	return s.current.Load(), s.err
}

// Load returns the published result, if any.
func (s *Store) Load() (*simulation.Result, bool) {
	res := s.current.Load()
	return res, res != nil
}

func (s *Store) Horizon() int { return s.horizon }

func (s *Store) Bodies() [3]model.Body { return s.engine.Bodies() }
