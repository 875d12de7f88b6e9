package newrelic

import (
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/Adeakim/lincride/internal/pkg/logger"
	"github.com/Adeakim/lincride/internal/pkg/models"
)

// InitNewRelic initializes the New Relic application based on configuration.
// Returns nil when APM is disabled, in which case all instrumentation is a
// no-op.
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	logger.Info("Initializing New Relic",
		logger.String("app_name", configs.NewRelic.AppName),
		logger.Bool("forward_logs", configs.NewRelic.ForwardLogs))

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(configs.NewRelic.ForwardLogs),
		newrelic.ConfigAppLogDecoratingEnabled(true),
	)
	if err != nil {
		logger.Error("Failed to initialize New Relic", logger.Err(err))
		return nil
	}

	// Give the agent a moment to connect so early transactions are reported.
	if err := nrApp.WaitForConnection(5 * time.Second); err != nil {
		logger.Warn("New Relic connection not established yet", logger.Err(err))
	}

	return nrApp
}
