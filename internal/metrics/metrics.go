package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	drawTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_draws_total",
			Help: "Completed draws by result and number source",
		},
		[]string{"result", "source"},
	)

	transitionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_draw_transitions_total",
			Help: "Draw state transitions by target phase and result",
		},
		[]string{"phase", "result"},
	)

	settleTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_settled_slips_total",
			Help: "Slips processed by settlement by outcome",
		},
		[]string{"outcome"},
	)

	settleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "roulette_settle_duration_ms",
			Help:    "Settlement of one draw in milliseconds",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"result"},
	)

	payoutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roulette_payout_amount_total",
			Help: "Sum of winnings credited by settlement",
		},
	)

	resolveTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_resolve_total",
			Help: "Winning number lookups by answering source",
		},
		[]string{"source"},
	)

	inconsistencyTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "roulette_result_inconsistency_total",
			Help: "Draws whose projection disagrees with the draws table",
		},
	)

	slipTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roulette_slip_operations_total",
			Help: "Slip sales, cancellations and cash-outs by result",
		},
		[]string{"operation", "result"},
	)
)

func result(err error) string {
	if err != nil {
		return "fail"
	}
	return "success"
}

func RecordDraw(err error, source string) {
	drawTotal.WithLabelValues(result(err), source).Inc()
}

func RecordTransition(phase string, err error) {
	transitionTotal.WithLabelValues(phase, result(err)).Inc()
}

// RecordSettle records the per-draw outcome counts of one settlement run.
func RecordSettle(err error, won, lost, skipped, failed int, payout float64, started time.Time) {
	settleTotal.WithLabelValues("won").Add(float64(won))
	settleTotal.WithLabelValues("lost").Add(float64(lost))
	settleTotal.WithLabelValues("skipped").Add(float64(skipped))
	settleTotal.WithLabelValues("failed").Add(float64(failed))
	if payout > 0 {
		payoutTotal.Add(payout)
	}
	settleDuration.WithLabelValues(result(err)).Observe(float64(time.Since(started).Milliseconds()))
}

func RecordResolve(source string) {
	resolveTotal.WithLabelValues(source).Inc()
}

func RecordInconsistency() {
	inconsistencyTotal.Inc()
}

func RecordSlip(operation string, err error) {
	slipTotal.WithLabelValues(operation, result(err)).Inc()
}
