package logger

import (
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

// sentryHook forwards warn and above to a sentry hub
type sentryHook struct {
	hub *sentry.Hub
}

func newSentryHub(dsn string) (*sentry.Hub, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{Dsn: dsn})
	if err != nil {
		return nil, err
	}

	return sentry.NewHub(client, sentry.NewScope()), nil
}

// Run implements zerolog.Hook
func (h sentryHook) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if level < zerolog.WarnLevel || msg == "" {
		return
	}

	h.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentryLevel(level))
		h.hub.CaptureMessage(msg)
	})
}

func sentryLevel(level zerolog.Level) sentry.Level {
	switch level {
	case zerolog.WarnLevel:
		return sentry.LevelWarning
	case zerolog.ErrorLevel:
		return sentry.LevelError
	default:
		return sentry.LevelFatal
	}
}
