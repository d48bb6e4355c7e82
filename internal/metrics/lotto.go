package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"querydrills/internal/model"
)

// LottoMetrics counts lotto outcomes per prize tier.
type LottoMetrics struct {
	outcomes *prometheus.CounterVec
}

// NewLottoMetrics creates the outcome counter and registers it on reg.
// Every tier is initialised at zero so it shows up before the first win.
func NewLottoMetrics(reg prometheus.Registerer) (*LottoMetrics, error) {
	m := &LottoMetrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lotto_outcomes_total",
				Help: "Lotto tickets checked, by prize tier.",
			},
			[]string{"prize"},
		),
	}
	if err := reg.Register(m.outcomes); err != nil {
		return nil, err
	}
	for _, p := range []model.Prize{model.PrizeJackpot, model.PrizeCash, model.PrizeSoda, model.PrizeNone} {
		m.outcomes.WithLabelValues(p.String())
	}
	return m, nil
}

// Record implements service.PrizeRecorder.
func (m *LottoMetrics) Record(p model.Prize) {
	m.outcomes.WithLabelValues(p.String()).Inc()
}
