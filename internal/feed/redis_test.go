package feed

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishEventChanged(t *testing.T) {
	db, mock := redismock.NewClientMock()
	publisher := NewRedisPublisher(db, "studio:events")
	fixed := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	publisher.now = func() time.Time { return fixed }

	change := EventChange{EventID: "ev-1", Version: 3, Stage: "production", Action: ActionStage}
	expected := change
	expected.OccurredAt = fixed
	payload, err := json.Marshal(expected)
	require.NoError(t, err)

	mock.ExpectPublish("studio:events", string(payload)).SetVal(1)

	err = publisher.PublishEventChanged(context.Background(), change)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublishEventChangedError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	publisher := NewRedisPublisher(db, "studio:events")
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	change := EventChange{EventID: "ev-1", Version: 2, Stage: "pre-production", Action: ActionAssignment, OccurredAt: at}
	payload, err := json.Marshal(change)
	require.NoError(t, err)

	mock.ExpectPublish("studio:events", string(payload)).SetErr(errors.New("connection refused"))

	err = publisher.PublishEventChanged(context.Background(), change)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish event change")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishEventChanged(context.Background(), EventChange{EventID: "ev-1"}))
}
