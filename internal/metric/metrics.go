package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var issueCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "prosecheck_issue_found_total",
	Help: "style issues found by checker",
}, []string{"source", "checker"})

// IncIssueCounter counts issues found by a checker. source is the repo in
// server mode, or the file/buffer name in batch mode.
func IncIssueCounter(source, checker string, count float64) {
	issueCounter.WithLabelValues(source, checker).Add(count)
}
