package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/input"
	"academicevents/internal/ports/output"
)

const topInstitutions = 5

var _ input.ReportUseCase = (*ReportService)(nil)

// ReportService aggregates read-only statistics over the three repositories.
type ReportService struct {
	eventRepo        output.EventRepository
	participantRepo  output.ParticipantRepository
	registrationRepo output.RegistrationRepository
	now              func() time.Time
}

func NewReportService(
	eventRepo output.EventRepository,
	participantRepo output.ParticipantRepository,
	registrationRepo output.RegistrationRepository,
) *ReportService {
	return &ReportService{
		eventRepo:        eventRepo,
		participantRepo:  participantRepo,
		registrationRepo: registrationRepo,
		now:              time.Now,
	}
}

// WithClock replaces the clock used to decide which events are upcoming.
func (s *ReportService) WithClock(now func() time.Time) *ReportService {
	s.now = now
	return s
}

func (s *ReportService) EventSummary(ctx context.Context) (*entities.EventSummary, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("event summary: %w", err)
	}

	now := s.now()
	counter := newCounter()
	summary := &entities.EventSummary{Total: len(events)}
	for _, e := range events {
		counter.add(string(e.Status))
		if e.IsUpcoming(now) {
			summary.Upcoming++
			summary.Next = append(summary.Next, entities.EventHeadline{ID: e.ID, Name: e.Name, StartDate: e.StartDate})
		}
	}
	summary.ByStatus = counter.byKey()
	return summary, nil
}

func (s *ReportService) ParticipantSummary(ctx context.Context) (*entities.ParticipantSummary, error) {
	participants, err := s.participantRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("participant summary: %w", err)
	}

	types, institutions := newCounter(), newCounter()
	for _, p := range participants {
		types.add(string(p.Type))
		if p.Institution != "" {
			institutions.add(p.Institution)
		}
	}
	return &entities.ParticipantSummary{
		Total:           len(participants),
		ByType:          types.byKey(),
		TopInstitutions: institutions.top(topInstitutions),
	}, nil
}

func (s *ReportService) RegistrationSummary(ctx context.Context) (*entities.RegistrationSummary, error) {
	registrations, err := s.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("registration summary: %w", err)
	}

	statuses, payments := newCounter(), newCounter()
	summary := &entities.RegistrationSummary{Total: len(registrations)}
	for _, r := range registrations {
		statuses.add(string(r.Status))
		payments.add(string(r.PaymentStatus))
		if r.Status == domain.StatusConfirmed {
			summary.Confirmed++
		}
	}
	summary.ByStatus = statuses.byKey()
	summary.ByPaymentStatus = payments.byKey()
	return summary, nil
}

// Revenue computes potential (fee × confirmed) and collected (fee × paid) revenue per event.
// TotalPaid sums the event fee of every PAID registration; a registration whose event is
// unknown contributes zero.
func (s *ReportService) Revenue(ctx context.Context) (*entities.RevenueReport, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	registrations, err := s.registrationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("revenue report: %w", err)
	}

	confirmed := make(map[int64]int64)
	paid := make(map[int64]int64)
	for _, r := range registrations {
		if r.Status == domain.StatusConfirmed {
			confirmed[r.EventID]++
		}
		if r.PaymentStatus == domain.PaymentPaid {
			paid[r.EventID]++
		}
	}

	report := &entities.RevenueReport{
		TotalPotential: decimal.Zero,
		TotalPaid:      decimal.Zero,
		Events:         make([]entities.EventRevenue, 0, len(events)),
	}
	for _, e := range events {
		line := entities.EventRevenue{
			EventID:   e.ID,
			EventName: e.Name,
			Fee:       e.RegistrationFee,
			Confirmed: confirmed[e.ID],
			Paid:      paid[e.ID],
		}
		line.Potential = e.RegistrationFee.Mul(decimal.NewFromInt(line.Confirmed))
		line.Collected = e.RegistrationFee.Mul(decimal.NewFromInt(line.Paid))
		report.TotalPotential = report.TotalPotential.Add(line.Potential)
		report.TotalPaid = report.TotalPaid.Add(line.Collected)
		report.Events = append(report.Events, line)
	}
	return report, nil
}

// Capacity compares confirmed registrations with each event's maximum. It does not enforce it.
func (s *ReportService) Capacity(ctx context.Context) ([]entities.EventCapacity, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("capacity report: %w", err)
	}

	out := make([]entities.EventCapacity, 0, len(events))
	for _, e := range events {
		n, err := s.registrationRepo.CountConfirmedForEvent(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("capacity report: event %d: %w", e.ID, err)
		}
		out = append(out, entities.EventCapacity{
			EventID:         e.ID,
			EventName:       e.Name,
			MaxParticipants: e.MaxParticipants,
			Confirmed:       n,
			Remaining:       int64(e.MaxParticipants) - n,
		})
	}
	return out, nil
}

// counter keeps insertion order so ties can be broken by first appearance.
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) byKey() []entities.Count {
	out := c.slice()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func (c *counter) top(n int) []entities.Count {
	out := c.slice()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (c *counter) slice() []entities.Count {
	out := make([]entities.Count, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, entities.Count{Key: k, Count: c.counts[k]})
	}
	return out
}
