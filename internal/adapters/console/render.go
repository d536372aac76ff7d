package console

import (
	"fmt"

	"academicevents/internal/domain/entities"
	"academicevents/pkg/prompt"
)

func eventLine(e entities.Event) string {
	return fmt.Sprintf("#%d %s [%s] %s .. %s | deadline %s | max %d | fee %s | category %d | location %d",
		e.ID, e.Name, e.Status,
		prompt.FormatDate(e.StartDate), prompt.FormatDate(e.EndDate),
		prompt.FormatOptionalDate(e.RegistrationDeadline),
		e.MaxParticipants, prompt.FormatAmount(e.RegistrationFee), e.CategoryID, e.LocationID)
}

func participantLine(p entities.Participant) string {
	line := fmt.Sprintf("#%d %s <%s> [%s]", p.ID, p.FullName(), p.Email, p.Type)
	if p.Institution != "" {
		line += " " + p.Institution
	}
	if p.Phone != "" {
		line += " tel. " + p.Phone
	}
	return line
}

func (s *Shell) registrationLine(r entities.Registration) string {
	line := fmt.Sprintf("#%d event %d participant %d | %s | %s | payment %s",
		r.ID, r.EventID, r.ParticipantID,
		prompt.FormatTimestamp(r.RegisteredAt, s.location), r.Status, r.PaymentStatus)
	if r.Notes != "" {
		line += " | " + r.Notes
	}
	return line
}

// list prints one line per item, or the empty message.
func list[T any](s *Shell, items []T, emptyKey string, line func(T) string) {
	if len(items) == 0 {
		s.say(emptyKey, nil)
		return
	}
	for _, it := range items {
		s.println(line(it))
	}
}

func (s *Shell) counts(labelKey string, counts []entities.Count) {
	for _, c := range counts {
		s.say(labelKey, map[string]any{"Key": c.Key, "Count": c.Count})
	}
}
