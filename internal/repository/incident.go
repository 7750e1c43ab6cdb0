package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/service"
)

// pgForeignKeyViolation - код ошибки postgres при ссылке на несуществующую запись
const pgForeignKeyViolation = "23503"

// incidentColumns - общий список колонок инцидента для всех выборок (алиас i)
const incidentColumns = `
	i.id,
	i.reporter_id,
	i.incident_type,
	i.severity,
	i.description,
	i.images,
	ST_AsGeoJSON(i.location) AS location,
	i.status,
	i.admin_validated,
	i.admin_validated_by,
	i.admin_validation_note,
	i.admin_validated_at,
	i.ngo_validated,
	i.ngo_validated_by,
	i.ngo_validation_note,
	i.ngo_validated_at,
	i.initial_weight,
	i.time_decay_factor,
	i.effective_multiplier,
	i.contribution_score,
	i.score_evaluated_at,
	i.created_at,
	i.updated_at`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

// Create создает новую запись об инциденте в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	geometry, err := json.Marshal(incident.Coordinates)
	if err != nil {
		return fmt.Errorf("failed to marshal incident geometry: %w", err)
	}
	images := incident.Images
	if images == nil {
		images = []string{}
	}

	query := `
		INSERT INTO incidents (reporter_id, incident_type, severity, description, images, location, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_GeomFromGeoJSON($6), 4326), $7, $8, $8)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		incident.ReporterID,
		string(incident.IncidentType),
		string(incident.Severity),
		incident.Description,
		images,
		string(geometry),
		string(incident.Status),
		incident.CreatedAt,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents i WHERE i.id = $1;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "incident", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает список инцидентов с фильтрами и пагинацией
func (r *IncidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	// рассчитываем смещение
	offset := (filter.Page - 1) * filter.PageSize

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents i
		WHERE ($1 = '' OR i.status = $1)
			AND ($2 = '' OR i.incident_type = $2)
		ORDER BY i.created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.db.Query(ctx, query, string(filter.Status), string(filter.IncidentType), filter.PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// UpdateStatus меняет статус рассмотрения инцидента
func (r *IncidentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) error {
	query := `UPDATE incidents SET status = $1, updated_at = NOW() WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}

	// RowsAffected() == 0 - инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "incident", ID: id.String()}
	}
	return nil
}

// GetAudits возвращает историю аудитов инцидента в порядке создания
func (r *IncidentRepository) GetAudits(ctx context.Context, incidentID uuid.UUID) ([]models.Audit, error) {
	query := `
		SELECT id, incident_id, auditor_id, auditor_role, s_env, risk_level, notes, created_at
		FROM audits
		WHERE incident_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get audits: %w", err)
	}
	defer rows.Close()

	audits := make([]models.Audit, 0)
	for rows.Next() {
		var a models.Audit
		if err := rows.Scan(&a.ID, &a.IncidentID, &a.AuditorID, &a.AuditorRole, &a.SEnv, &a.RiskLevel, &a.Notes, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		audits = append(audits, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error audit iteration: %w", err)
	}
	return audits, nil
}

// CreateAudit добавляет запись аудита. Аудиты только дописываются.
func (r *IncidentRepository) CreateAudit(ctx context.Context, audit *models.Audit) error {
	query := `
		INSERT INTO audits (incident_id, auditor_id, auditor_role, s_env, risk_level, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		audit.IncidentID,
		audit.AuditorID,
		string(audit.AuditorRole),
		audit.SEnv,
		string(audit.RiskLevel),
		audit.Notes,
		audit.CreatedAt,
	).Scan(&audit.ID, &audit.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &models.NotFoundError{Entity: "incident", ID: audit.IncidentID.String()}
		}
		return fmt.Errorf("failed to create audit: %w", err)
	}
	return nil
}

// SetValidation записывает отметку валидации одной роли одним UPDATE
func (r *IncidentRepository) SetValidation(ctx context.Context, incidentID uuid.UUID, role models.Role, validation models.Validation) error {
	var query string
	switch role {
	case models.RoleAdmin:
		query = `
			UPDATE incidents SET
				admin_validated = $1, admin_validated_by = $2, admin_validation_note = $3, admin_validated_at = $4, updated_at = NOW()
			WHERE id = $5;`
	case models.RoleNGO:
		query = `
			UPDATE incidents SET
				ngo_validated = $1, ngo_validated_by = $2, ngo_validation_note = $3, ngo_validated_at = $4, updated_at = NOW()
			WHERE id = $5;`
	default:
		return &models.InvalidInputError{Field: "role", Reason: "must be admin or ngo"}
	}

	cmdTag, err := r.db.Exec(ctx, query,
		validation.Validated,
		validation.ValidatedBy,
		validation.Note,
		validation.ValidatedAt,
		incidentID,
	)
	if err != nil {
		return fmt.Errorf("failed to set %s validation: %w", role, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "incident", ID: incidentID.String()}
	}
	return nil
}

// SaveIncidentDerived кеширует последний посчитанный вклад инцидента
func (r *IncidentRepository) SaveIncidentDerived(ctx context.Context, incidentID uuid.UUID, score models.DerivedScore) error {
	query := `
		UPDATE incidents SET
			initial_weight = $1,
			time_decay_factor = $2,
			effective_multiplier = $3,
			contribution_score = $4,
			score_evaluated_at = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		score.InitialWeight,
		score.TimeDecayFactor,
		score.EffectiveMultiplier,
		score.ContributionScore,
		score.EvaluatedAt,
		incidentID,
	)
	if err != nil {
		return fmt.Errorf("failed to save incident derived score: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "incident", ID: incidentID.String()}
	}
	return nil
}

// AddComment добавляет комментарий к инциденту
func (r *IncidentRepository) AddComment(ctx context.Context, incidentID uuid.UUID, comment *models.Comment) error {
	query := `
		INSERT INTO comments (incident_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, incidentID, comment.AuthorID, comment.Text, comment.CreatedAt).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &models.NotFoundError{Entity: "incident", ID: incidentID.String()}
		}
		return fmt.Errorf("failed to add incident comment: %w", err)
	}
	return nil
}

// ListComments возвращает комментарии инцидента в порядке добавления
func (r *IncidentRepository) ListComments(ctx context.Context, incidentID uuid.UUID) ([]models.Comment, error) {
	query := `
		SELECT id, author_id, text, created_at
		FROM comments
		WHERE incident_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident comments: %w", err)
	}
	return collectComments(rows)
}

// scanIncident читает строку в формате incidentColumns
func scanIncident(row pgx.Row) (*models.Incident, error) {
	var (
		incident = &models.Incident{}
		location string

		initialWeight, decay, multiplier, contribution *float64
		evaluatedAt                                    *time.Time
	)
	err := row.Scan(
		&incident.ID,
		&incident.ReporterID,
		&incident.IncidentType,
		&incident.Severity,
		&incident.Description,
		&incident.Images,
		&location,
		&incident.Status,
		&incident.AdminValidation.Validated,
		&incident.AdminValidation.ValidatedBy,
		&incident.AdminValidation.Note,
		&incident.AdminValidation.ValidatedAt,
		&incident.NGOValidation.Validated,
		&incident.NGOValidation.ValidatedBy,
		&incident.NGOValidation.Note,
		&incident.NGOValidation.ValidatedAt,
		&initialWeight,
		&decay,
		&multiplier,
		&contribution,
		&evaluatedAt,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(location), &incident.Coordinates); err != nil {
		return nil, fmt.Errorf("failed to decode incident geometry: %w", err)
	}

	// Вклад еще не считался, пока score_evaluated_at пуст
	if evaluatedAt != nil && initialWeight != nil && decay != nil && multiplier != nil && contribution != nil {
		incident.Derived = &models.DerivedScore{
			InitialWeight:       *initialWeight,
			TimeDecayFactor:     *decay,
			EffectiveMultiplier: *multiplier,
			ContributionScore:   *contribution,
			EvaluatedAt:         *evaluatedAt,
		}
	}
	return incident, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error incident iteration: %w", err)
	}
	return incidents, nil
}

func collectComments(rows pgx.Rows) ([]models.Comment, error) {
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.AuthorID, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error comment iteration: %w", err)
	}
	return comments, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
