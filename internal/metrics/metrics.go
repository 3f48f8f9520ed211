package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ValuationsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equipped_valuations_issued_total",
		Help: "Total number of device valuations issued.",
	})

	TradeInsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equipped_trade_ins_created_total",
		Help: "Total number of trade-ins created from accepted valuations.",
	})

	LabelsGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equipped_shipping_labels_generated_total",
		Help: "Total number of prepaid shipping labels generated.",
	})

	InspectionsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equipped_inspections_recorded_total",
		Help: "Total number of device inspections recorded.",
	})

	CreditsAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equipped_credits_applied_total",
		Help: "Total number of trade-in credits applied.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "equipped_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	TradeInCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "equipped_trade_in_cache_items",
		Help: "Current number of items in the active trade-in cache.",
	})
)
