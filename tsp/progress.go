package tsp

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// progressReporter throttles Progress callbacks and periodic debug logs.
type progressReporter struct {
	fn      func(Progress)
	log     *zap.Logger
	limiter *rate.Limiter
	runID   string
	mode    Mode
	started time.Time
}

func newProgressReporter(o Options, log *zap.Logger, runID string, started time.Time) *progressReporter {
	every := o.ProgressInterval
	if every <= 0 {
		every = DefaultProgressInterval
	}

	return &progressReporter{
		fn:      o.Progress,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(every), 1),
		runID:   runID,
		mode:    o.Mode,
		started: started,
	}
}

// tick emits a snapshot when the limiter allows it.
func (p *progressReporter) tick(explored int, best float64, open int) {
	if !p.limiter.Allow() {
		return
	}
	p.emit(explored, best, open, false)
}

// done always emits the final snapshot.
func (p *progressReporter) done(explored int, best float64, open int) {
	p.emit(explored, best, open, true)
}

func (p *progressReporter) emit(explored int, best float64, open int, final bool) {
	elapsed := time.Since(p.started)
	if !final {
		p.log.Debug("progress",
			zap.Int("nodes_explored", explored),
			zap.Float64("best_cost", best),
			zap.Int("open_set", open))
	}
	if p.fn == nil {
		return
	}
	p.fn(Progress{
		RunID:         p.runID,
		Mode:          p.mode,
		NodesExplored: explored,
		BestCost:      best,
		OpenSet:       open,
		Elapsed:       elapsed,
		Final:         final,
	})
}
