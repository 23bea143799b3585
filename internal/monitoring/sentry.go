package monitoring

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

var sentryEnabled bool

// InitSentry configures error reporting. An empty DSN leaves it disabled.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	}); err != nil {
		return err
	}
	sentryEnabled = true
	logrus.Info("Sentry error reporting enabled")
	return nil
}

// CaptureError reports err with the given tags when Sentry is enabled
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if !sentryEnabled || err == nil {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		hub.CaptureException(err)
	})
}

// Flush waits for buffered events before shutdown
func Flush() {
	if sentryEnabled {
		sentry.Flush(2 * time.Second)
	}
}
