package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
http:
  address: ":8081"
  docs_enabled: true
grpc:
  address: ":9091"
redis:
  addr: "localhost:6379"
  db: 2
kafka:
  brokers: ["localhost:9092"]
  booking_events_topic: "bookings"
  notifications_topic: "notifications"
booking:
  flights_cache_ttl_seconds: 60
log:
  level: debug
  format: text
flights:
  - id: KE001
    origin: Seoul
    destination: Los Angeles
    total_seats: 2
  - id: DL002
    origin: Atlanta
    destination: Paris
    total_seats: 1
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.True(t, cfg.HTTP.DocsEnabled)
	assert.Equal(t, ":9091", cfg.GRPC.Address)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "bookings", cfg.Kafka.BookingEventsTopic)
	assert.Equal(t, "notifications", cfg.Kafka.NotificationsTopic)
	assert.Equal(t, "seatbook-worker", cfg.Kafka.GroupID)
	assert.Equal(t, 60, cfg.Booking.FlightsCacheTTL)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.Len(t, cfg.Flights, 2)
	assert.Equal(t, FlightConfig{ID: "KE001", Origin: "Seoul", Destination: "Los Angeles", TotalSeats: 2}, cfg.Flights[0])
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, 30, cfg.Booking.FlightsCacheTTL)
	assert.Equal(t, "booking-events", cfg.Kafka.BookingEventsTopic)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.Flights)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("http: [not, a, map"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTP.Address)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}
