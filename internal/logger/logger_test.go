package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextTagsEntries(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx := ContextWithRequestID(ContextWithActor(context.Background(), "ana"), "req-1")
	WithContext(ctx).WithField("event_id", "ev-1").Info("assigned")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "ana", entry.Data["actor"])
	assert.Equal(t, "req-1", entry.Data["request_id"])
	assert.Equal(t, "ev-1", entry.Data["event_id"])
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestWithContextDefaults(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	WithContext(context.Background()).Info("no actor")
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "unknown", entry.Data["actor"])
	_, ok := entry.Data["request_id"]
	assert.False(t, ok)

	assert.NotNil(t, WithContext(nil))
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	Setup("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
