package email

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendQueuesJob(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@sportnest.club", "SportNest")

	mock.Regexp().ExpectLPush(queueKey, `.*"to":"coach@sportnest\.club".*`).SetVal(1)

	err := svc.Send(context.Background(), "coach@sportnest.club", "Sam", "Session Booked", "See you there")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSendSessionBooked(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@sportnest.club", "SportNest")

	mock.Regexp().ExpectLPush(queueKey, `.*Morning Drill.*`).SetVal(1)

	start := time.Date(2026, 9, 5, 6, 0, 0, 0, time.Local)
	err := svc.SendSessionBooked(context.Background(), "coach@sportnest.club", "Sam", "Morning Drill", "Pool", start)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSendSessionCancelled(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@sportnest.club", "SportNest")

	mock.Regexp().ExpectLPush(queueKey, `.*Cancelled.*`).SetVal(1)

	err := svc.SendSessionCancelled(context.Background(), "coach@sportnest.club", "Sam", "Morning Drill", "Pool")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	client, mock := redismock.NewClientMock()
	svc := NewWithClient(client, "noreply@sportnest.club", "SportNest")

	mock.ExpectLLen(queueKey).SetVal(4)

	assert.Equal(t, int64(4), svc.QueueLength(context.Background()))
}
