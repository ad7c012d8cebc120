package check

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// checksTotal tracks the total number of check calls.
	//
	// Labels:
	//   - rule: the comparison that fired ("strict", "sequences", "regex",
	//     "tolerance", "maps", "recent", "changes").
	//   - outcome: "pass", "fail", or "invalid" (rejected options).
	//
	// The counter increments once per call regardless of outcome, which makes
	// pass/fail ratios and the mix of comparison strategies visible in test
	// telemetry:
	//   - rate(check_calls_total[5m]) - checks per second
	//   - check_calls_total{outcome="invalid"} - misconfigured calls
	//   - sum(rate(check_calls_total[5m])) by (rule) - strategy mix
	//
	// The nolint:gochecknoglobals directive is used because Prometheus metrics
	// are intentionally global by design - they need to be registered once and
	// accessed throughout the application lifecycle.
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "check_calls_total",
		Help: "The total number of check calls",
	}, []string{"rule", "outcome"})

	// checkTime tracks the duration of check calls in milliseconds.
	//
	// Labels:
	//   - rule: the comparison that fired.
	//
	// Checks are in-process compares, so the buckets skew sub-millisecond;
	// the upper buckets exist to catch pathological operands (huge sequences,
	// deep maps).
	checkTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "check_time_millis",
		Help: "The time it takes to run a check, in milliseconds",
		Buckets: []float64{
			0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100,
		},
	}, []string{"rule"})
)

// init pre-initializes every rule and outcome combination so the time
// series exist from process start. Without this, rate() queries see the
// first data point "late" and zero and non-existent are indistinguishable.
func init() {
	rules := []string{
		ruleStrict.String(),
		ruleSequences.String(),
		ruleTextPattern.String(),
		ruleTolerance.String(),
		ruleFilteredMaps.String(),
		recentRule,
		changesRule,
	}

	for _, r := range rules {
		for _, outcome := range []string{outcomePass, outcomeFail, outcomeInvalid} {
			checksTotal.WithLabelValues(r, outcome).Add(0)
		}
	}
}

const (
	outcomePass    = "pass"
	outcomeFail    = "fail"
	outcomeInvalid = "invalid"
)

// observe records one check call: its outcome counter and its duration.
func observe(rule string, start time.Time, err error) {
	checksTotal.WithLabelValues(rule, outcomeOf(err)).Inc()
	checkTime.WithLabelValues(rule).Observe(float64(time.Since(start).Nanoseconds()) / 1e6)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomePass
	case errors.Is(err, ErrBadOptions):
		return outcomeInvalid
	default:
		return outcomeFail
	}
}
