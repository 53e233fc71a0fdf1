package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Submit validates a submission and stores it. Validation failures are
// returned as ValidationErrors.
func (s *Service) Submit(ctx context.Context, in Input) (*Registration, error) {
	now := s.now()
	reg, err := Validate(in, now)
	if err != nil {
		return nil, err
	}

	reg.ID = uuid.NewString()
	reg.CreatedAt = now
	if err := s.store.Insert(ctx, &reg); err != nil {
		return nil, fmt.Errorf("store registration: %w", err)
	}
	return &reg, nil
}

// GetByID retrieves a registration by ID
func (s *Service) GetByID(ctx context.Context, id string) (*Registration, error) {
	return s.store.FindByID(ctx, id)
}

// List returns every stored registration.
func (s *Service) List(ctx context.Context) ([]*Registration, error) {
	return s.store.List(ctx)
}

// Today returns the service clock's date, used to name exports.
func (s *Service) Today() string {
	return s.now().Format(dateLayout)
}
