package dashboard

import (
	"context"

	"github.com/google/uuid"
)

// Repository exposes the five aggregate reads behind the summary. Date and
// month arrive preformatted ("2006-01-02" and "2006-01") so the queries stay
// plain comparisons. The month reads are month-to-date: rows dated after
// until are out of the window even when they share the month.
type Repository interface {
	CountActivePatients(ctx context.Context, dentistID uuid.UUID) (int, error)
	CountAppointmentsOn(ctx context.Context, dentistID uuid.UUID, date string) (int, error)
	CountAppointmentsInMonth(ctx context.Context, dentistID uuid.UUID, month, until string) (int, error)
	SumRevenueInMonth(ctx context.Context, dentistID uuid.UUID, month, until string) (float64, error)
	NextAppointments(ctx context.Context, dentistID uuid.UUID, from string, limit int) ([]*Upcoming, error)
}
