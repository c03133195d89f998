package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boostpanel_orders_created_total",
		Help: "Orders successfully created and debited.",
	})
	OrdersCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boostpanel_orders_completed_total",
		Help: "Orders moved to the completed state.",
	})
	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boostpanel_orders_cancelled_total",
		Help: "Orders cancelled and refunded.",
	})
	RewardsGranted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "boostpanel_rewards_granted_total",
		Help: "One-time rewards paid out, by reason.",
	}, []string{"reason"})
	BroadcastFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "boostpanel_broadcast_failures_total",
		Help: "Broadcast delivery attempts that failed.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
