package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSnapshot = domain.FlightSnapshot{
	ID:             "BA123",
	Origin:         "Seattle",
	Destination:    "New York",
	TotalSeats:     2,
	AvailableSeats: 1,
}

func TestRedisCache_GetFlight_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(db, time.Minute)

	payload, err := json.Marshal(testSnapshot)
	require.NoError(t, err)
	mock.ExpectGet("cache:flight:BA123").SetVal(string(payload))

	got, err := c.GetFlight(context.Background(), "BA123")

	require.NoError(t, err)
	assert.Equal(t, &testSnapshot, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetFlight_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(db, time.Minute)

	mock.ExpectGet("cache:flight:BA123").RedisNil()

	got, err := c.GetFlight(context.Background(), "BA123")

	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_GetFlight_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(db, time.Minute)

	mock.ExpectGet("cache:flight:BA123").SetErr(errors.New("connection refused"))

	got, err := c.GetFlight(context.Background(), "BA123")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestRedisCache_GetFlight_CorruptPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(db, time.Minute)

	mock.ExpectGet("cache:flight:BA123").SetVal("{not json")

	_, err := c.GetFlight(context.Background(), "BA123")
	assert.Error(t, err)
}

func TestRedisCache_SetFlight(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(db, time.Minute)

	payload, err := json.Marshal(testSnapshot)
	require.NoError(t, err)
	mock.ExpectSet("cache:flight:BA123", payload, time.Minute).SetVal("OK")

	assert.NoError(t, c.SetFlight(context.Background(), testSnapshot))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_InvalidateFlight(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisCacheWithClient(db, time.Minute)

	mock.ExpectDel("cache:flight:BA123").SetVal(1)

	assert.NoError(t, c.InvalidateFlight(context.Background(), "BA123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
