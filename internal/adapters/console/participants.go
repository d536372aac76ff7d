package console

import (
	"context"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

func (s *Shell) participantMenu(ctx context.Context) error {
	choice, err := s.menu("menu.participants")
	if err != nil {
		return err
	}
	switch choice {
	case 1:
		s.heading("participants.all")
		participants, err := s.participantUseCase.ListParticipants(ctx)
		s.showParticipants(participants, err)
	case 2:
		return s.searchParticipant(ctx)
	case 3:
		return s.participantsByType(ctx)
	case 4:
		return s.participantsByInstitution(ctx)
	case 5:
		return s.createParticipant(ctx)
	case 6:
		return s.updateParticipant(ctx)
	case 7:
		return s.deleteParticipant(ctx)
	case 8:
	default:
		s.say("invalid.choice", nil)
	}
	return nil
}

func (s *Shell) showParticipants(participants []entities.Participant, err error) {
	if err != nil {
		s.fail(err)
		return
	}
	list(s, participants, "participants.none", participantLine)
}

func (s *Shell) searchParticipant(ctx context.Context) error {
	s.heading("participants.search")
	email, err := s.askString("field.email")
	if err != nil {
		return err
	}
	p, err := s.participantUseCase.FindParticipantByEmail(ctx, email)
	switch {
	case err != nil:
		s.fail(err)
	case p == nil:
		s.say("participants.not_found", nil)
	default:
		s.say("participants.found", map[string]any{"Participant": participantLine(*p)})
	}
	return nil
}

func (s *Shell) participantsByType(ctx context.Context) error {
	s.heading("participants.by_type")
	typ, err := s.askUpper("field.participant_type")
	if err != nil {
		return err
	}
	participants, err := s.participantUseCase.ListParticipantsByType(ctx, domain.ParticipantType(typ))
	s.showParticipants(participants, err)
	return nil
}

func (s *Shell) participantsByInstitution(ctx context.Context) error {
	s.heading("participants.by_institution")
	institution, err := s.askString("field.institution")
	if err != nil {
		return err
	}
	participants, err := s.participantUseCase.ListParticipantsByInstitution(ctx, institution)
	s.showParticipants(participants, err)
	return nil
}

func (s *Shell) askParticipant() (entities.ParticipantFields, error) {
	var (
		f   entities.ParticipantFields
		err error
		typ string
	)
	if f.FirstName, err = s.askString("field.first_name"); err != nil {
		return f, err
	}
	if f.LastName, err = s.askString("field.last_name"); err != nil {
		return f, err
	}
	if f.Email, err = s.askString("field.email"); err != nil {
		return f, err
	}
	if f.Phone, err = s.askString("field.phone"); err != nil {
		return f, err
	}
	if f.Institution, err = s.askString("field.institution"); err != nil {
		return f, err
	}
	if typ, err = s.askUpper("field.participant_type"); err != nil {
		return f, err
	}
	f.Type = domain.ParticipantType(typ)
	return f, nil
}

func (s *Shell) createParticipant(ctx context.Context) error {
	s.heading("participants.create")
	f, err := s.askParticipant()
	if err != nil {
		return err
	}
	id, err := s.participantUseCase.CreateParticipant(ctx, f)
	if err != nil {
		s.fail(err)
		return nil
	}
	s.say("participants.created", map[string]any{"ID": id})
	return nil
}

func (s *Shell) updateParticipant(ctx context.Context) error {
	s.heading("participants.update")
	id, err := s.askID("field.participant_id")
	if err != nil {
		return err
	}
	f, err := s.askParticipant()
	if err != nil {
		return err
	}
	res, err := s.participantUseCase.UpdateParticipant(ctx, id, f)
	s.report(res, err, "participants.updated")
	return nil
}

func (s *Shell) deleteParticipant(ctx context.Context) error {
	s.heading("participants.delete")
	id, err := s.askID("field.participant_id")
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
	res, err := s.participantUseCase.DeleteParticipant(ctx, id)
	s.report(res, err, "participants.deleted")
	return nil
}
