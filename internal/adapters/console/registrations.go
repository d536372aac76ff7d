package console

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

func (s *Shell) registrationMenu(ctx context.Context) error {
	choice, err := s.menu("menu.registrations")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		s.heading("registrations.all")
		regs, err := s.registrationUseCase.ListRegistrations(ctx)
		s.showRegistrations(regs, err, false)
	case 2:
		return s.registrationsByEvent(ctx)
	case 3:
		return s.registrationsByParticipant(ctx)
	case 4:
		return s.createRegistration(ctx)
	case 5:
		return s.updateRegistrationStatus(ctx)
	case 6:
		return s.updatePaymentStatus(ctx)
	case 7:
		return s.cancelRegistration(ctx)
	case 8:
		return s.deleteRegistration(ctx)
	case 9:
	default:
		s.say("invalid.choice", nil)
	}
	return nil
}

func (s *Shell) showRegistrations(regs []entities.Registration, err error, withTotal bool) {
	if err != nil {
		s.fail(err)
		return
	}
	list(s, regs, "registrations.none", s.registrationLine)
	if withTotal && len(regs) > 0 {
		s.say("registrations.total", map[string]any{"Count": len(regs)})
	}
}

func (s *Shell) registrationsByEvent(ctx context.Context) error {
	s.heading("registrations.by_event")
	id, err := s.askID("field.event_id")
	if err != nil {
		return err
	}
	regs, err := s.registrationUseCase.ListRegistrationsByEvent(ctx, id)
	s.showRegistrations(regs, err, true)
	return nil
}

func (s *Shell) registrationsByParticipant(ctx context.Context) error {
	s.heading("registrations.by_participant")
	id, err := s.askID("field.participant_id")
	if err != nil {
		return err
	}
	regs, err := s.registrationUseCase.ListRegistrationsByParticipant(ctx, id)
	s.showRegistrations(regs, err, true)
	return nil
}

func (s *Shell) createRegistration(ctx context.Context) error {
	s.heading("registrations.create")
	eventID, err := s.askID("field.event_id")
	if err != nil {
		return err
	}
	participantID, err := s.askID("field.participant_id")
	if err != nil {
		return err
	}
	notes, err := s.askString("field.notes")
	if err != nil {
		return err
	}

	if n, err := s.registrationUseCase.ConfirmedCount(ctx, eventID); err == nil {
		s.say("registrations.current", map[string]any{"Count": n})
	}

	id, err := s.registrationUseCase.Register(ctx, eventID, participantID, notes)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.say("registrations.created", map[string]any{"ID": id})
	return nil
}

func (s *Shell) updateRegistrationStatus(ctx context.Context) error {
	s.heading("registrations.update_status")
	id, err := s.askID("field.registration_id")
	if err != nil {
		return err
	}
	status, err := s.askUpper("field.registration_status")
	if err != nil {
		return err
	}
	res, err := s.registrationUseCase.UpdateRegistrationStatus(ctx, id, domain.RegistrationStatus(status))
	s.report(res, err, "registrations.status_updated")
	return nil
}

func (s *Shell) updatePaymentStatus(ctx context.Context) error {
	s.heading("registrations.update_payment")
	id, err := s.askID("field.registration_id")
	if err != nil {
		return err
	}
	status, err := s.askUpper("field.payment_status")
	if err != nil {
		return err
	}
	res, err := s.registrationUseCase.UpdatePaymentStatus(ctx, id, domain.PaymentStatus(status))
	s.report(res, err, "registrations.payment_updated")
	return nil
}

func (s *Shell) cancelRegistration(ctx context.Context) error {
	s.heading("registrations.cancel")
	id, err := s.askID("field.registration_id")
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
	res, err := s.registrationUseCase.CancelRegistration(ctx, id)
	s.report(res, err, "registrations.cancelled")
	return nil
}

func (s *Shell) deleteRegistration(ctx context.Context) error {
	s.heading("registrations.delete")
	id, err := s.askID("field.registration_id")
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
	res, err := s.registrationUseCase.DeleteRegistration(ctx, id)
	s.report(res, err, "registrations.deleted")
	return nil
}
