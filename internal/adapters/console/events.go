package console

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/pkg/prompt"
)

func (s *Shell) eventMenu(ctx context.Context) error {
	choice, err := s.menu("menu.events")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		s.heading("events.all")
		events, err := s.eventUseCase.ListEvents(ctx)
		s.showEvents(events, err)
	case 2:
		s.heading("events.upcoming")
		events, err := s.eventUseCase.ListUpcomingEvents(ctx)
		s.showEvents(events, err)
	case 3:
		return s.eventsByCategory(ctx)
	case 4:
		return s.eventsByDateRange(ctx)
	case 5:
		return s.createEvent(ctx)
	case 6:
		return s.updateEventStatus(ctx)
	case 7:
		return s.deleteEvent(ctx)
	case 8:
	default:
		s.say("invalid.choice", nil)
	}
	return nil
}

func (s *Shell) showEvents(events []entities.Event, err error) {
	if err != nil {
		s.fail(err)
		return
	}
	list(s, events, "events.none", eventLine)
}

func (s *Shell) eventsByCategory(ctx context.Context) error {
	s.heading("events.by_category")
	categoryID, err := s.askID("field.category_id")
	if err != nil {
		return err
	}
	events, err := s.eventUseCase.ListEventsByCategory(ctx, categoryID)
	s.showEvents(events, err)
	return nil
}

func (s *Shell) eventsByDateRange(ctx context.Context) error {
	s.heading("events.by_date_range")
	from, err := s.askDate("field.from")
	if err != nil {
		return err
	}
	to, err := s.askDate("field.to")
	if err != nil {
		return err
	}
	events, err := s.eventUseCase.ListEventsByDateRange(ctx, from, to)
	s.showEvents(events, err)
	return nil
}

func (s *Shell) createEvent(ctx context.Context) error {
	s.heading("events.create")
	var (
		f   entities.EventFields
		err error
	)
	if f.Name, err = s.askString("field.event_name"); err != nil {
		return err
	}
	if f.Description, err = s.askString("field.description"); err != nil {
		return err
	}
	if f.StartDate, err = s.askDate("field.start_date"); err != nil {
		return err
	}
	if f.EndDate, err = s.askDate("field.end_date"); err != nil {
		return err
	}
	if f.RegistrationDeadline, err = s.askOptionalDate("field.deadline"); err != nil {
		return err
	}
	if f.MaxParticipants, err = s.askInt("field.max_participants"); err != nil {
		return err
	}
	if f.RegistrationFee, err = ask(s, "field.fee", "invalid.amount", prompt.ParseAmount); err != nil {
		return err
	}
	if f.CategoryID, err = s.askID("field.category_id"); err != nil {
		return err
	}
	if f.LocationID, err = s.askID("field.location_id"); err != nil {
		return err
	}

	id, err := s.eventUseCase.CreateEvent(ctx, f)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.say("events.created", map[string]any{"ID": id})
	return nil
}

func (s *Shell) updateEventStatus(ctx context.Context) error {
	s.heading("events.update_status")
	id, err := s.askID("field.event_id")
	if err != nil {
		return err
	}
	status, err := s.askUpper("field.event_status")
	if err != nil {
		return err
	}
	res, err := s.eventUseCase.UpdateEventStatus(ctx, id, domain.EventStatus(status))
	s.report(res, err, "events.status_updated")
	return nil
}

func (s *Shell) deleteEvent(ctx context.Context) error {
	s.heading("events.delete")
	id, err := s.askID("field.event_id")
	if err != nil {
		return err
	}
	ok, err := s.confirm()
	if err != nil {
		return err
	}
	if !ok {
		s.say("result.cancelled", nil)
		return nil
	}
	res, err := s.eventUseCase.DeleteEvent(ctx, id)
	s.report(res, err, "events.deleted")
	return nil
}
