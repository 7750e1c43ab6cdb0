package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/safety_scoring_system/internal/models"
	"github.com/shenikar/safety_scoring_system/internal/service"
)

const regionColumns = `
	r.id,
	r.name,
	ST_AsGeoJSON(r.location) AS location,
	r.cluster_factor,
	r.safety_score,
	r.risk_sum,
	r.incident_count,
	COALESCE(r.average_severity, '') AS average_severity,
	r.high_severity_count,
	r.incident_types,
	r.scored_at,
	r.created_at,
	r.updated_at`

type RegionRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewRegionRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.RegionRepository {
	return &RegionRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает новый регион в бд
func (r *RegionRepository) Create(ctx context.Context, region *models.Region) error {
	geometry, err := json.Marshal(region.Coordinates)
	if err != nil {
		return fmt.Errorf("failed to marshal region geometry: %w", err)
	}

	query := `
		INSERT INTO regions (name, location, cluster_factor, safety_score, created_at, updated_at)
		VALUES ($1, ST_SetSRID(ST_GeomFromGeoJSON($2), 4326), $3, $4, $5, $5)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		region.Name,
		string(geometry),
		region.ClusterFactor,
		region.SafetyScore,
		region.CreatedAt,
	).Scan(&region.ID, &region.CreatedAt, &region.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

// GetByID возвращает регион по его UUID
func (r *RegionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	query := `SELECT ` + regionColumns + ` FROM regions r WHERE r.id = $1;`

	region, err := scanRegion(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "region", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get region by id: %w", err)
	}
	return region, nil
}

// ListRegions возвращает список регионов с пагинацией
func (r *RegionRepository) ListRegions(ctx context.Context, page, pageSize int) ([]*models.Region, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + regionColumns + `
		FROM regions r
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return collectRegions(rows)
}

// ListIDs возвращает идентификаторы всех регионов
func (r *RegionRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM regions ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list region ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan region ids: %w", err)
	}
	return ids, nil
}

// FindByLocation находит регионы, геометрия которых содержит точку
func (r *RegionRepository) FindByLocation(ctx context.Context, lat, lon float64) ([]*models.Region, error) {
	query := `
		SELECT ` + regionColumns + `
		FROM regions r
		WHERE ST_Intersects(r.location, ST_SetSRID(ST_MakePoint($1, $2), 4326))
		ORDER BY r.safety_score ASC;
	`
	rows, err := r.db.Query(ctx, query, lon, lat)
	if err != nil {
		return nil, fmt.Errorf("failed to find regions by location: %w", err)
	}
	return collectRegions(rows)
}

// GetIncidentsForRegion возвращает все инциденты, пересекающие геометрию региона
func (r *RegionRepository) GetIncidentsForRegion(ctx context.Context, regionID uuid.UUID) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents i
		JOIN regions r ON ST_Intersects(i.location, r.location)
		WHERE r.id = $1
		ORDER BY i.created_at, i.id;
	`
	rows, err := r.db.Query(ctx, query, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get incidents for region: %w", err)
	}
	return collectIncidents(rows)
}

// GetRegionIDsForIncident возвращает регионы, которые затрагивает инцидент
func (r *RegionRepository) GetRegionIDsForIncident(ctx context.Context, incidentID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT r.id
		FROM regions r
		JOIN incidents i ON ST_Intersects(r.location, i.location)
		WHERE i.id = $1;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get regions for incident: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("failed to scan region ids: %w", err)
	}
	return ids, nil
}

// SaveRegionSafetyScore записывает результат агрегации одним UPDATE
func (r *RegionRepository) SaveRegionSafetyScore(ctx context.Context, regionID uuid.UUID, score models.RegionScore) error {
	incidentTypes, err := json.Marshal(score.IncidentTypes)
	if err != nil {
		return fmt.Errorf("failed to marshal incident types: %w", err)
	}

	query := `
		UPDATE regions SET
			safety_score = $1,
			risk_sum = $2,
			incident_count = $3,
			average_severity = NULLIF($4, ''),
			high_severity_count = $5,
			incident_types = $6::jsonb,
			scored_at = $7,
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		score.SafetyScore,
		score.RiskSum,
		score.IncidentCount,
		string(score.AverageSeverity),
		score.HighSeverityCount,
		string(incidentTypes),
		score.EvaluatedAt,
		regionID,
	)
	if err != nil {
		return fmt.Errorf("failed to save region safety score: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return &models.NotFoundError{Entity: "region", ID: regionID.String()}
	}
	return nil
}

// AddComment добавляет комментарий к региону
func (r *RegionRepository) AddComment(ctx context.Context, regionID uuid.UUID, comment *models.Comment) error {
	query := `
		INSERT INTO comments (region_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, regionID, comment.AuthorID, comment.Text, comment.CreatedAt).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &models.NotFoundError{Entity: "region", ID: regionID.String()}
		}
		return fmt.Errorf("failed to add region comment: %w", err)
	}
	return nil
}

// ListComments возвращает комментарии региона в порядке добавления
func (r *RegionRepository) ListComments(ctx context.Context, regionID uuid.UUID) ([]models.Comment, error) {
	query := `
		SELECT id, author_id, text, created_at
		FROM comments
		WHERE region_id = $1
		ORDER BY created_at, id;
	`
	rows, err := r.db.Query(ctx, query, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list region comments: %w", err)
	}
	return collectComments(rows)
}

// GetRegionFromCache пытается получить регион из Redis
func (r *RegionRepository) GetRegionFromCache(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	val, err := r.redisClient.Get(ctx, regionCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get region from cache: %w", err)
	}

	region := &models.Region{}
	if err := json.Unmarshal(val, region); err != nil {
		return nil, fmt.Errorf("failed to unmarshal region from cache: %w", err)
	}
	return region, nil
}

// setIfVersionScript пишет регион в кеш, только если версия не менялась с момента чтения из бд
var setIfVersionScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[2]) or '0')
if current ~= tonumber(ARGV[2]) then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

// RegionCacheVersion возвращает текущую версию кеша региона. Снимается до чтения из бд.
func (r *RegionRepository) RegionCacheVersion(ctx context.Context, id uuid.UUID) (int64, error) {
	version, err := r.redisClient.Get(ctx, regionCacheVersionKey(id)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get region cache version: %w", err)
	}
	return version, nil
}

// SetRegionCache сохраняет регион в Redis, если с момента снятия version кеш не инвалидировали
func (r *RegionRepository) SetRegionCache(ctx context.Context, region *models.Region, version int64) error {
	val, err := json.Marshal(region)
	if err != nil {
		return fmt.Errorf("failed to marshal region for cache: %w", err)
	}
	keys := []string{regionCacheKey(region.ID), regionCacheVersionKey(region.ID)}
	if err := setIfVersionScript.Run(ctx, r.redisClient, keys, val, version, r.cacheTTL.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("failed to set region in cache: %w", err)
	}
	return nil
}

// InvalidateRegionCache удаляет регион из Redis кеша и увеличивает его версию
func (r *RegionRepository) InvalidateRegionCache(ctx context.Context, id uuid.UUID) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, regionCacheVersionKey(id))
		pipe.Del(ctx, regionCacheKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate region cache: %w", err)
	}
	return nil
}

func regionCacheVersionKey(id uuid.UUID) string {
	return fmt.Sprintf("region:%s:version", id.String())
}

func regionCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("region:%s", id.String())
}

func scanRegion(row pgx.Row) (*models.Region, error) {
	var (
		region        = &models.Region{}
		location      string
		incidentTypes []byte
	)
	err := row.Scan(
		&region.ID,
		&region.Name,
		&location,
		&region.ClusterFactor,
		&region.SafetyScore,
		&region.RiskSum,
		&region.IncidentCount,
		&region.AverageSeverity,
		&region.HighSeverityCount,
		&incidentTypes,
		&region.ScoredAt,
		&region.CreatedAt,
		&region.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(location), &region.Coordinates); err != nil {
		return nil, fmt.Errorf("failed to decode region geometry: %w", err)
	}
	region.IncidentTypes = make(map[models.IncidentType]int)
	if err := json.Unmarshal(incidentTypes, &region.IncidentTypes); err != nil {
		return nil, fmt.Errorf("failed to decode region incident types: %w", err)
	}
	return region, nil
}

func collectRegions(rows pgx.Rows) ([]*models.Region, error) {
	defer rows.Close()

	regions := make([]*models.Region, 0)
	for rows.Next() {
		region, err := scanRegion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan region row: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error region iteration: %w", err)
	}
	return regions, nil
}
