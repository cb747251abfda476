package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics 定义业务监控指标
type BusinessMetrics struct {
	ValidationsTotal       *prometheus.CounterVec
	SeedDerivationsTotal   *prometheus.CounterVec
	SeedDerivationDuration prometheus.Histogram
	MnemonicsGenerated     *prometheus.CounterVec
}

// Global Metrics Instance
var Business *BusinessMetrics

// InitBusinessMetrics 初始化业务指标
func InitBusinessMetrics() {
	Business = &BusinessMetrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "seed_validations_total",
			Help: "Seed phrase validations by result kind",
		}, []string{"result"}),
		SeedDerivationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "seed_derivations_total",
			Help: "Seed derivations by outcome",
		}, []string{"outcome"}),
		SeedDerivationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "seed_derivation_duration_seconds",
			Help:    "Duration of PBKDF2 seed derivation",
			Buckets: prometheus.DefBuckets,
		}),
		MnemonicsGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "seed_mnemonics_generated_total",
			Help: "Generated mnemonics by word count",
		}, []string{"words"}),
	}
}
