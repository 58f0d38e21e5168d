package strategy

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ProgressIndicator logs sweep progress with elapsed and estimated total
// time. An interval of 0 disables logging; counting still works.
type ProgressIndicator struct {
	total    int
	interval int
	done     int
	start    time.Time
}

func NewProgressIndicator(total, interval int) *ProgressIndicator {
	return &ProgressIndicator{total: total, interval: interval, start: time.Now()}
}

func (p *ProgressIndicator) Done() int { return p.done }

func (p *ProgressIndicator) CompleteOne() {
	p.done++
	if p.interval <= 0 || p.done%p.interval != 0 {
		return
	}
	frac := float64(p.done) / float64(p.total)
	elapsed := time.Since(p.start)
	estTotal := time.Duration(float64(elapsed) / frac)
	log.Info().Msgf("%d/%d %.1f%%, %s elapsed, %s estimated total",
		p.done, p.total, frac*100,
		elapsed.Round(time.Millisecond), estTotal.Round(time.Millisecond))
}
