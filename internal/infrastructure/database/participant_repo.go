package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"academicevents/internal/domain"
	"academicevents/internal/domain/entities"
	"academicevents/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository with pgx.
type ParticipantRepository struct {
	db *Provider
}

// NewParticipantRepository creates a ParticipantRepository.
func NewParticipantRepository(db *Provider) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

const participantOrder = ` ORDER BY last_name, first_name, participant_id`

func (r *ParticipantRepository) list(ctx context.Context, op, query string, args ...any) ([]entities.Participant, error) {
	var out []entities.Participant
	err := r.db.With(ctx, func(q Querier) error {
		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, collectParticipant)
		return err
	})
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return out, nil
}

func (r *ParticipantRepository) find(ctx context.Context, op, query string, arg any) (entities.Participant, bool, error) {
	var (
		p     entities.Participant
		found bool
	)
	err := r.db.With(ctx, func(q Querier) error {
		var err error
		p, err = scanParticipant(q.QueryRow(ctx, query, arg))
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		found = err == nil
		return err
	})
	if err != nil {
		return entities.Participant{}, false, wrapErr(op, err)
	}
	return p, found, nil
}

func (r *ParticipantRepository) ListAll(ctx context.Context) ([]entities.Participant, error) {
	return r.list(ctx, "list participants", `SELECT `+participantColumns+` FROM participants`+participantOrder)
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id int64) (entities.Participant, bool, error) {
	return r.find(ctx, "get participant by id",
		`SELECT `+participantColumns+` FROM participants WHERE participant_id = $1`, id)
}

// FindByEmail returns the oldest participant with this email. Email uniqueness is not
// enforced by the schema.
func (r *ParticipantRepository) FindByEmail(ctx context.Context, email string) (entities.Participant, bool, error) {
	return r.find(ctx, "get participant by email",
		`SELECT `+participantColumns+` FROM participants WHERE email = $1 ORDER BY participant_id LIMIT 1`, email)
}

func (r *ParticipantRepository) ListByType(ctx context.Context, participantType domain.ParticipantType) ([]entities.Participant, error) {
	return r.list(ctx, "list participants by type",
		`SELECT `+participantColumns+` FROM participants WHERE participant_type = $1`+participantOrder,
		string(participantType))
}

// ListByInstitution matches institution case-insensitively on a substring. Participants
// without an institution never match.
func (r *ParticipantRepository) ListByInstitution(ctx context.Context, institution string) ([]entities.Participant, error) {
	return r.list(ctx, "list participants by institution",
		`SELECT `+participantColumns+` FROM participants
		WHERE institution ILIKE '%' || $1 || '%'`+participantOrder,
		escapeLike(institution))
}

func (r *ParticipantRepository) Create(ctx context.Context, f entities.ParticipantFields) (int64, error) {
	if !f.Type.Valid() {
		return 0, fmt.Errorf("create participant: type %q: %w", f.Type, domain.ErrInvalidStatus)
	}
	var id int64
	err := r.db.With(ctx, func(q Querier) error {
		err := q.QueryRow(ctx, `
			INSERT INTO participants (first_name, last_name, email, phone, institution, participant_type)
			VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
			RETURNING participant_id`,
			f.FirstName, f.LastName, f.Email, f.Phone, f.Institution, string(f.Type),
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNoGeneratedKey
		}
		return err
	})
	if err != nil {
		return 0, wrapErr("create participant", err)
	}
	return id, nil
}

// Update replaces every column of the participant.
func (r *ParticipantRepository) Update(ctx context.Context, id int64, f entities.ParticipantFields) (domain.Result, error) {
	if !f.Type.Valid() {
		return domain.ValidationFailed, fmt.Errorf("update participant: type %q: %w", f.Type, domain.ErrInvalidStatus)
	}
	var affected int64
	err := r.db.With(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, `
			UPDATE participants
			SET first_name = $1, last_name = $2, email = $3, phone = NULLIF($4, ''),
				institution = NULLIF($5, ''), participant_type = $6
			WHERE participant_id = $7`,
			f.FirstName, f.LastName, f.Email, f.Phone, f.Institution, string(f.Type), id)
		affected = tag.RowsAffected()
		return err
	})
	if err != nil {
		return mutationResult("update participant", err)
	}
	return domain.ResultFromRows(affected), nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id int64) (domain.Result, error) {
	var affected int64
	err := r.db.With(ctx, func(q Querier) error {
		tag, err := q.Exec(ctx, `DELETE FROM participants WHERE participant_id = $1`, id)
		if pgCode(err) == foreignKeyViolation {
			return &domain.PersistenceError{Op: "delete participant", Err: fmt.Errorf("%w: %v", domain.ErrParticipantHasRegistrations, err)}
		}
		affected = tag.RowsAffected()
		return err
	})
	if err != nil {
		return mutationResult("delete participant", err)
	}
	return domain.ResultFromRows(affected), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards so the value matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
