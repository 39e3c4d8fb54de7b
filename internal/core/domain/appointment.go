package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAppointmentIncomplete  = errors.New("doctor, date and time are required")
	ErrInvalidAppointmentDate = errors.New("invalid date format (must be YYYY-MM-DD)")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrSlotUnavailable        = errors.New("doctor is not available at that time")
	ErrAppointmentNotFound    = errors.New("appointment not found")
)

const AppointmentDateLayout = "2006-01-02"

type Doctor struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Available []string `json:"available"`
}

type Appointment struct {
	ID         string `json:"id"`
	DoctorID   int    `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Notes      string `json:"notes"`
}

var doctorCatalog = []Doctor{
	{ID: 1, Name: "Dr. Sarah Johnson", Specialty: "Physiotherapist", Available: []string{"10:00", "11:00", "14:00", "15:00"}},
	{ID: 2, Name: "Dr. Michael Chen", Specialty: "Orthopedic Specialist", Available: []string{"09:00", "13:00", "16:00", "17:00"}},
	{ID: 3, Name: "Dr. Emily Davis", Specialty: "Physical Therapist", Available: []string{"09:30", "12:30", "14:30", "16:30"}},
}

func Doctors() []Doctor {
	out := make([]Doctor, len(doctorCatalog))
	copy(out, doctorCatalog)
	return out
}

func FindDoctor(id int) (Doctor, error) {
	for _, d := range doctorCatalog {
		if d.ID == id {
			return d, nil
		}
	}
	return Doctor{}, ErrDoctorNotFound
}

func (d Doctor) IsAvailable(slot string) bool {
	for _, s := range d.Available {
		if s == slot {
			return true
		}
	}
	return false
}

// NewAppointment validates a booking request against the doctor catalog.
// Overlapping bookings are allowed.
func NewAppointment(doctorID int, date, slot, notes string) (*Appointment, error) {
	date = strings.TrimSpace(date)
	slot = strings.TrimSpace(slot)
	if doctorID == 0 || date == "" || slot == "" {
		return nil, ErrAppointmentIncomplete
	}

	if _, err := time.Parse(AppointmentDateLayout, date); err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	doctor, err := FindDoctor(doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.IsAvailable(slot) {
		return nil, ErrSlotUnavailable
	}

	return &Appointment{
		ID:         uuid.NewString(),
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       date,
		Time:       slot,
		Notes:      strings.TrimSpace(notes),
	}, nil
}
