package application

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
)

type memStore struct {
	mu            sync.Mutex
	nextID        int64
	events        map[int64]entities.Event
	participants  map[int64]entities.Participant
	registrations map[int64]entities.Registration
	now           time.Time
	err           error
}

func newMemStore() *memStore {
	return &memStore{
		events:        make(map[int64]entities.Event),
		participants:  make(map[int64]entities.Participant),
		registrations: make(map[int64]entities.Registration),
		now:           time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

type memEvents struct{ *memStore }

func (r memEvents) sorted(keep func(entities.Event) bool) ([]entities.Event, error) {
	m := r.memStore
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []entities.Event{}
	for _, e := range m.events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.Before(out[j].StartDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r memEvents) ListAll(context.Context) ([]entities.Event, error) {
	return r.sorted(func(entities.Event) bool { return true })
}

func (r memEvents) ListByCategory(_ context.Context, categoryID int64) ([]entities.Event, error) {
	return r.sorted(func(e entities.Event) bool { return e.CategoryID == categoryID })
}

func (r memEvents) ListUpcoming(context.Context) ([]entities.Event, error) {
	now := r.now
	return r.sorted(func(e entities.Event) bool { return e.IsUpcoming(now) })
}

func (r memEvents) ListByDateRange(_ context.Context, from, to time.Time) ([]entities.Event, error) {
	return r.sorted(func(e entities.Event) bool { return e.Within(from, to) })
}

func (r memEvents) FindByID(_ context.Context, id int64) (entities.Event, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return entities.Event{}, false, r.err
	}
	e, ok := r.events[id]
	return e, ok, nil
}

func (r memEvents) Create(_ context.Context, f entities.EventFields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	id := r.id()
	r.events[id] = entities.Event{
		ID: id, Name: f.Name, Description: f.Description,
		StartDate: entities.DateOf(f.StartDate), EndDate: entities.DateOf(f.EndDate),
		RegistrationDeadline: f.RegistrationDeadline, MaxParticipants: f.MaxParticipants,
		RegistrationFee: f.RegistrationFee, CategoryID: f.CategoryID, LocationID: f.LocationID,
		Status: domain.EventActive,
	}
	return id, nil
}

func (r memEvents) UpdateStatus(_ context.Context, id int64, status domain.EventStatus) (domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.events[id]
	if !ok {
		return domain.NotFound, nil
	}
	e.Status = status
	r.events[id] = e
	return domain.Success, nil
}

func (r memEvents) Delete(_ context.Context, id int64) (domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return domain.NotFound, nil
	}
	for _, reg := range r.registrations {
		if reg.EventID == id {
			return domain.PersistenceFailed, &domain.PersistenceError{Op: "delete event", Err: domain.ErrEventHasRegistrations}
		}
	}
	delete(r.events, id)
	return domain.Success, nil
}

type memParticipants struct{ *memStore }

func (r memParticipants) sorted(keep func(entities.Participant) bool) ([]entities.Participant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []entities.Participant{}
	for _, p := range r.participants {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		if out[i].FirstName != out[j].FirstName {
			return out[i].FirstName < out[j].FirstName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r memParticipants) ListAll(context.Context) ([]entities.Participant, error) {
	return r.sorted(func(entities.Participant) bool { return true })
}

func (r memParticipants) FindByID(_ context.Context, id int64) (entities.Participant, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return entities.Participant{}, false, r.err
	}
	p, ok := r.participants[id]
	return p, ok, nil
}

func (r memParticipants) FindByEmail(ctx context.Context, email string) (entities.Participant, bool, error) {
	all, err := r.sorted(func(p entities.Participant) bool { return p.Email == email })
	if err != nil || len(all) == 0 {
		return entities.Participant{}, false, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all[0], true, nil
}

func (r memParticipants) ListByType(_ context.Context, t domain.ParticipantType) ([]entities.Participant, error) {
	return r.sorted(func(p entities.Participant) bool { return p.Type == t })
}

func (r memParticipants) ListByInstitution(_ context.Context, institution string) ([]entities.Participant, error) {
	needle := strings.ToLower(institution)
	return r.sorted(func(p entities.Participant) bool {
		return strings.Contains(strings.ToLower(p.Institution), needle)
	})
}

func participantFrom(id int64, f entities.ParticipantFields) entities.Participant {
	return entities.Participant{
		ID: id, FirstName: f.FirstName, LastName: f.LastName, Email: f.Email,
		Phone: f.Phone, Institution: f.Institution, Type: f.Type,
	}
}

func (r memParticipants) Create(_ context.Context, f entities.ParticipantFields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.id()
	r.participants[id] = participantFrom(id, f)
	return id, nil
}

func (r memParticipants) Update(_ context.Context, id int64, f entities.ParticipantFields) (domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[id]; !ok {
		return domain.NotFound, nil
	}
	r.participants[id] = participantFrom(id, f)
	return domain.Success, nil
}

func (r memParticipants) Delete(_ context.Context, id int64) (domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.participants[id]; !ok {
		return domain.NotFound, nil
	}
	delete(r.participants, id)
	return domain.Success, nil
}

type memRegistrations struct{ *memStore }

func (r memRegistrations) sorted(keep func(entities.Registration) bool) ([]entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []entities.Registration{}
	for _, reg := range r.registrations {
		if keep(reg) {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memRegistrations) ListAll(context.Context) ([]entities.Registration, error) {
	return r.sorted(func(entities.Registration) bool { return true })
}

func (r memRegistrations) FindByID(_ context.Context, id int64) (entities.Registration, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	return reg, ok, nil
}

func (r memRegistrations) ListByEvent(_ context.Context, eventID int64) ([]entities.Registration, error) {
	return r.sorted(func(reg entities.Registration) bool { return reg.EventID == eventID })
}

func (r memRegistrations) ListByParticipant(_ context.Context, participantID int64) ([]entities.Registration, error) {
	return r.sorted(func(reg entities.Registration) bool { return reg.ParticipantID == participantID })
}

func (r memRegistrations) ListConfirmed(context.Context) ([]entities.Registration, error) {
	return r.sorted(func(reg entities.Registration) bool { return reg.Status == domain.StatusConfirmed })
}

func (r memRegistrations) CountConfirmedForEvent(ctx context.Context, eventID int64) (int64, error) {
	regs, err := r.sorted(func(reg entities.Registration) bool {
		return reg.EventID == eventID && reg.Status == domain.StatusConfirmed
	})
	return int64(len(regs)), err
}

func (r memRegistrations) Create(_ context.Context, eventID, participantID int64, notes string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.registrations {
		if reg.EventID == eventID && reg.ParticipantID == participantID && reg.Active() {
			return 0, domain.ErrDuplicateRegistration
		}
	}
	id := r.id()
	r.registrations[id] = entities.Registration{
		ID: id, EventID: eventID, ParticipantID: participantID, RegisteredAt: r.now,
		Status: domain.StatusPending, PaymentStatus: domain.PaymentPending, Notes: notes,
	}
	return id, nil
}

func (r memRegistrations) update(id int64, fn func(*entities.Registration)) domain.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registrations[id]
	if !ok {
		return domain.NotFound
	}
	fn(&reg)
	r.registrations[id] = reg
	return domain.Success
}

func (r memRegistrations) UpdateStatus(_ context.Context, id int64, status domain.RegistrationStatus) (domain.Result, error) {
	return r.update(id, func(reg *entities.Registration) { reg.Status = status }), nil
}

func (r memRegistrations) UpdatePaymentStatus(_ context.Context, id int64, status domain.PaymentStatus) (domain.Result, error) {
	return r.update(id, func(reg *entities.Registration) { reg.PaymentStatus = status }), nil
}

func (r memRegistrations) Cancel(ctx context.Context, id int64) (domain.Result, error) {
	return r.UpdateStatus(ctx, id, domain.StatusCancelled)
}

func (r memRegistrations) Delete(_ context.Context, id int64) (domain.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.registrations[id]; !ok {
		return domain.NotFound, nil
	}
	delete(r.registrations, id)
	return domain.Success, nil
}
