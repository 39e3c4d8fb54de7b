package services

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

type AppointmentService struct {
	store domain.KeyValueStore
	mu    sync.Mutex
}

func NewAppointmentService(store domain.KeyValueStore) *AppointmentService {
	return &AppointmentService{store: store}
}

type BookAppointmentInput struct {
	UserID   string
	DoctorID int
	Date     string
	Time     string
	Notes    string
}

func (s *AppointmentService) Doctors() []domain.Doctor {
	return domain.Doctors()
}

func (s *AppointmentService) List(ctx context.Context, userID string) []domain.Appointment {
	return getItem(ctx, s.store, domain.ScopedKey(domain.KeyAppointments, userID), []domain.Appointment{})
}

func (s *AppointmentService) Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	appt, err := domain.NewAppointment(input.DoctorID, input.Date, input.Time, input.Notes)
	if err != nil {
		return nil, err
	}

	list := append(s.List(ctx, input.UserID), *appt)
	if err := setItem(ctx, s.store, domain.ScopedKey(domain.KeyAppointments, input.UserID), list); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) Cancel(ctx context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.List(ctx, userID)

	filtered := make([]domain.Appointment, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(list) {
		return domain.ErrAppointmentNotFound
	}

	return setItem(ctx, s.store, domain.ScopedKey(domain.KeyAppointments, userID), filtered)
}
