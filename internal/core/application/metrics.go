package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconciliationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fleet",
		Name:      "reconciliation_passes_total",
		Help:      "Number of completed reconciliation passes.",
	})

	walletLoadFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fleet",
		Name:      "wallet_load_failures_total",
		Help:      "Number of wallets skipped because the node could not load them.",
	})

	registeredWallets = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fleet",
		Name:      "registered_wallets",
		Help:      "Number of wallets currently registered with the manager.",
	})
)
