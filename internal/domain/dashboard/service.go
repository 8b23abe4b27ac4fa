package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const upcomingLimit = 5

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Summarize runs the five aggregate reads concurrently. One failing query
// fails the whole summary, partial dashboards are worse than an error.
func (s *Service) Summarize(ctx context.Context, dentistID uuid.UUID) (*Summary, error) {
	today := s.now().Format("2006-01-02")
	month := s.now().Format("2006-01")

	var sum Summary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.repo.CountActivePatients(gctx, dentistID)
		sum.ActivePatients = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountAppointmentsOn(gctx, dentistID, today)
		sum.AppointmentsToday = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountAppointmentsInMonth(gctx, dentistID, month, today)
		sum.AppointmentsMonth = n
		return err
	})
	g.Go(func() error {
		v, err := s.repo.SumRevenueInMonth(gctx, dentistID, month, today)
		sum.RevenueMonth = v
		return err
	})
	g.Go(func() error {
		items, err := s.repo.NextAppointments(gctx, dentistID, today, upcomingLimit)
		sum.NextAppointments = items
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if sum.NextAppointments == nil {
		sum.NextAppointments = []*Upcoming{}
	}
	return &sum, nil
}
