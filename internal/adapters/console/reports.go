package console

import (
	"context"
	"fmt"

	"academicevents/pkg/prompt"
)

// Report names accepted by PrintReport.
var ReportNames = []string{"events", "participants", "registrations", "revenue", "capacity"}

func (s *Shell) reportMenu(ctx context.Context) error {
	choice, err := s.menu("menu.reports")
	if err != nil {
		return err
	}
	if choice >= 1 && choice <= len(ReportNames) {
		if err := s.PrintReport(ctx, ReportNames[choice-1]); err != nil {
			s.fail(err)
		}
		return nil
	}
	if choice != len(ReportNames)+1 {
		s.say("invalid.choice", nil)
	}
	return nil
}

// PrintReport writes the named report to the shell output.
func (s *Shell) PrintReport(ctx context.Context, name string) error {
	switch name {
	case "events":
		return s.eventReport(ctx)
	case "participants":
		return s.participantReport(ctx)
	case "registrations":
		return s.registrationReport(ctx)
	case "revenue":
		return s.revenueReport(ctx)
	case "capacity":
		return s.capacityReport(ctx)
	default:
		return fmt.Errorf("unknown report %q", name)
	}
}

func (s *Shell) eventReport(ctx context.Context) error {
	summary, err := s.reportUseCase.EventSummary(ctx)
	if err != nil {
		return err
	}
	s.heading("reports.events")
	s.say("reports.total_events", map[string]any{"Count": summary.Total})
	s.say("reports.upcoming_events", map[string]any{"Count": summary.Upcoming})
	s.counts("reports.events_with_status", summary.ByStatus)
	if len(summary.Next) > 0 {
		s.println("")
		s.say("reports.next_events", nil)
		for _, e := range summary.Next {
			s.println(fmt.Sprintf("- %s (%s)", e.Name, prompt.FormatDate(e.StartDate)))
		}
	}
	return nil
}

func (s *Shell) participantReport(ctx context.Context) error {
	summary, err := s.reportUseCase.ParticipantSummary(ctx)
	if err != nil {
		return err
	}
	s.heading("reports.participants")
	s.say("reports.total_participants", map[string]any{"Count": summary.Total})
	s.counts("reports.participants_of_type", summary.ByType)
	if len(summary.TopInstitutions) > 0 {
		s.println("")
		s.say("reports.top_institutions", nil)
		s.counts("reports.institution", summary.TopInstitutions)
	}
	return nil
}

func (s *Shell) registrationReport(ctx context.Context) error {
	summary, err := s.reportUseCase.RegistrationSummary(ctx)
	if err != nil {
		return err
	}
	s.heading("reports.registrations")
	s.say("reports.total_registrations", map[string]any{"Count": summary.Total})
	s.say("reports.confirmed_registrations", map[string]any{"Count": summary.Confirmed})
	s.counts("reports.registrations_with_status", summary.ByStatus)
	s.counts("reports.registrations_with_payment", summary.ByPaymentStatus)
	return nil
}

func (s *Shell) revenueReport(ctx context.Context) error {
	report, err := s.reportUseCase.Revenue(ctx)
	if err != nil {
		return err
	}
	s.heading("reports.revenue")
	for _, line := range report.Events {
		s.say("reports.event_revenue", map[string]any{
			"Name":      line.EventName,
			"Fee":       prompt.FormatAmount(line.Fee),
			"Confirmed": line.Confirmed,
			"Potential": prompt.FormatAmount(line.Potential),
			"Paid":      line.Paid,
			"Collected": prompt.FormatAmount(line.Collected),
		})
	}
	s.say("reports.total_potential", map[string]any{"Amount": prompt.FormatAmount(report.TotalPotential)})
	s.say("reports.total_paid", map[string]any{"Amount": prompt.FormatAmount(report.TotalPaid)})
	return nil
}

func (s *Shell) capacityReport(ctx context.Context) error {
	capacity, err := s.reportUseCase.Capacity(ctx)
	if err != nil {
		return err
	}
	s.heading("reports.capacity")
	if len(capacity) == 0 {
		s.say("events.none", nil)
	}
	for _, c := range capacity {
		s.say("reports.event_capacity", map[string]any{
			"Name":      c.EventName,
			"Confirmed": c.Confirmed,
			"Max":       c.MaxParticipants,
			"Remaining": c.Remaining,
		})
	}
	return nil
}
