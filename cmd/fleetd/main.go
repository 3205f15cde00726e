package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/walletfleet/fleetd/config"
	"github.com/walletfleet/fleetd/internal/core/application"
	"github.com/walletfleet/fleetd/internal/core/ports"
	nodewallet "github.com/walletfleet/fleetd/internal/infrastructure/node-wallet"
	filestore "github.com/walletfleet/fleetd/internal/infrastructure/storage/file"
	"github.com/walletfleet/fleetd/pkg/stats"
)

func main() {
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	datadir := config.GetDatadir()
	chain := config.GetChain()

	var gateway ports.NodeWalletGateway
	if endpoint := config.GetString(config.NodeRPCEndpointKey); endpoint != "" {
		svc, err := nodewallet.NewService(
			endpoint, config.GetInt(config.NodeRPCLimitKey),
		)
		if err != nil {
			log.WithError(err).Panic("error while connecting to the node")
		}
		gateway = svc
		defer gateway.Close()
	} else {
		log.Warn("no node rpc endpoint configured, running detached")
	}

	manager, err := application.NewWalletManager(
		datadir, chain, config.GetString(config.WalletPrefixKey),
		gateway, filestore.NewWalletRepositoryImpl(),
	)
	if err != nil {
		log.WithError(err).Panic("error while starting the wallet manager")
	}
	log.Infof(
		"managing %d wallets on chain %s", len(manager.WalletNames()), chain,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group, groupCtx := errgroup.WithContext(ctx)

	interval := time.Duration(config.GetInt(config.ReconcileIntervalKey)) * time.Second
	group.Go(func() error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := manager.Update(groupCtx); err != nil {
					log.WithError(err).Error("reconciliation pass failed")
				}
			case <-groupCtx.Done():
				return nil
			}
		}
	})

	if config.GetBool(config.EnableMetricsKey) {
		stats.EnableMemoryStatistics(groupCtx, time.Minute, datadir)

		metricsAddress := fmt.Sprintf(":%d", config.GetInt(config.MetricsPortKey))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		server := &http.Server{Addr: metricsAddress, Handler: mux}

		group.Go(func() error {
			log.Debug("metrics endpoint is listening on " + metricsAddress)
			if err := server.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		group.Go(func() error {
			<-groupCtx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(
				context.Background(), 5*time.Second,
			)
			defer shutdownCancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	log.Debug("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	cancel()
	if err := group.Wait(); err != nil {
		log.WithError(err).Error("error while shutting down")
	}

	log.Debug("exiting")
}
