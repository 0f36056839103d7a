package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/Domenick1991/seatbook/internal/logger"
	"github.com/Domenick1991/seatbook/internal/repository"
	"github.com/Domenick1991/seatbook/internal/service/events"
	"github.com/go-playground/validator/v10"
)

type FlightUseCase interface {
	AddFlight(ctx context.Context, input CreateFlightInput) (*domain.FlightSnapshot, error)
	GetByID(ctx context.Context, id string) (*domain.FlightSnapshot, error)
}

type FlightCache interface {
	GetFlight(ctx context.Context, flightID string) (*domain.FlightSnapshot, error)
	SetFlight(ctx context.Context, snapshot domain.FlightSnapshot) error
	InvalidateFlight(ctx context.Context, flightID string) error
}

type CreateFlightInput struct {
	ID          string `json:"id" validate:"required,max=32"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TotalSeats  int    `json:"total_seats" validate:"gte=0"`
}

type FlightService struct {
	repo      repository.FlightRepository
	cache     FlightCache
	publisher *events.Publisher
	validate  *validator.Validate
	log       *logger.Logger
}

// NewFlightService wires the read and registration paths. cache and publisher
// may be nil.
func NewFlightService(repo repository.FlightRepository, cache FlightCache, publisher *events.Publisher, log *logger.Logger) *FlightService {
	if log == nil {
		log = logger.Nop()
	}
	return &FlightService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		validate:  validator.New(),
		log:       log,
	}
}

// AddFlight validates input and registers a new flight. A duplicate identifier
// is returned as domain.ErrDuplicateFlight.
func (s *FlightService) AddFlight(ctx context.Context, input CreateFlightInput) (*domain.FlightSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	flight, err := domain.NewFlight(input.ID, input.Origin, input.Destination, input.TotalSeats)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddFlight(flight); err != nil {
		return nil, fmt.Errorf("add flight: %w", err)
	}

	s.log.Info("flight added", "flight_id", flight.ID(), "total_seats", flight.TotalSeats())
	s.publisher.Publish(ctx, domain.EventFlightAdded, flight.ID(), "")

	snapshot := flight.Snapshot()
	return &snapshot, nil
}

func (s *FlightService) GetByID(ctx context.Context, id string) (*domain.FlightSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetFlight(ctx, id)
		if err != nil {
			s.log.Warn("flight cache read failed", "flight_id", id, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	flight, ok := s.repo.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("flight %s: %w", id, domain.ErrFlightNotFound)
	}

	snapshot := flight.Snapshot()
	if s.cache != nil {
		s.cacheSnapshot(ctx, flight, snapshot)
	}
	return &snapshot, nil
}

// cacheSnapshot stores snapshot and drops it again if the flight changed in
// the meantime, since that change's invalidation may have run before the write.
func (s *FlightService) cacheSnapshot(ctx context.Context, flight *domain.Flight, snapshot domain.FlightSnapshot) {
	if err := s.cache.SetFlight(ctx, snapshot); err != nil {
		s.log.Warn("flight cache write failed", "flight_id", snapshot.ID, "error", err)
		return
	}
	if flight.Version() == snapshot.Version {
		return
	}
	if err := s.cache.InvalidateFlight(ctx, snapshot.ID); err != nil {
		s.log.Warn("flight cache invalidation failed", "flight_id", snapshot.ID, "error", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
