package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const complaintColumns = `
	id,
	user_id,
	category,
	title,
	description,
	urgency,
	contact_info,
	alternate_contact,
	location_address,
	ST_X(location::geometry) AS longitude,
	ST_Y(location::geometry) AS latitude,
	landmark,
	additional_info,
	is_emergency_sos,
	status,
	cancel_reason,
	communications,
	feedback,
	created_at,
	updated_at`

type ComplaintRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewComplaintRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ComplaintRepository {
	return &ComplaintRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create сохраняет обращение, переписка начинается с пустого массива
func (r *ComplaintRepository) Create(ctx context.Context, c *models.Complaint) error {
	var lon, lat *float64
	if c.Location.Coordinates != nil {
		lon, lat = &c.Location.Coordinates[0], &c.Location.Coordinates[1]
	}

	query := `
		INSERT INTO complaints (
			user_id, category, title, description, urgency, contact_info, alternate_contact,
			location_address, location, landmark, additional_info, is_emergency_sos, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, ST_SetSRID(ST_MakePoint($9, $10), 4326), $11, $12, $13, $14)
		RETURNING id, communications, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		c.UserID,
		c.Category,
		c.Title,
		c.Description,
		c.Urgency,
		c.ContactInfo,
		c.AlternateContact,
		c.Location.Address,
		lon,
		lat,
		c.Location.Landmark,
		c.AdditionalInfo,
		c.IsEmergencySOS,
		c.Status,
	).Scan(&c.ID, &c.Communications, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

// GetByID возвращает обращение по UUID или models.ErrNotFound
func (r *ComplaintRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1;`
	complaint, err := scanComplaint(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("complaint %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get complaint by id: %w", err)
	}
	return complaint, nil
}

// ListByUser возвращает страницу обращений пользователя и общее количество по фильтру
func (r *ComplaintRepository) ListByUser(ctx context.Context, userID string, filter models.ComplaintFilter) ([]*models.Complaint, int, error) {
	where, args := complaintFilterClause(userID, filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM complaints WHERE ` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s FROM complaints WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		complaintColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, filter.Limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	complaints := make([]*models.Complaint, 0)
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return complaints, total, nil
}

func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ComplaintStatus, reason string) error {
	query := `
		UPDATE complaints SET
			status = $1,
			cancel_reason = $2,
			updated_at = NOW()
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, reason, id)
	if err != nil {
		return fmt.Errorf("failed to update complaint status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("complaint %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// AppendCommunication дописывает сообщение в конец переписки (jsonb массив)
func (r *ComplaintRepository) AppendCommunication(ctx context.Context, id uuid.UUID, communication models.Communication) error {
	payload, err := json.Marshal([]models.Communication{communication})
	if err != nil {
		return fmt.Errorf("failed to marshal communication: %w", err)
	}

	query := `
		UPDATE complaints SET
			communications = communications || $1::jsonb,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, payload, id)
	if err != nil {
		return fmt.Errorf("failed to append communication: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("complaint %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// SetFeedback записывает оценку, только если ее еще нет
func (r *ComplaintRepository) SetFeedback(ctx context.Context, id uuid.UUID, feedback models.Feedback) error {
	payload, err := json.Marshal(feedback)
	if err != nil {
		return fmt.Errorf("failed to marshal feedback: %w", err)
	}

	query := `
		UPDATE complaints SET
			feedback = $1::jsonb,
			updated_at = NOW()
		WHERE id = $2 AND feedback IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, payload, id)
	if err != nil {
		return fmt.Errorf("failed to set feedback: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("feedback for complaint %s: %w", id, models.ErrInvalidState)
	}
	return nil
}

// Stats собирает сводку по обращениям пользователя
func (r *ComplaintRepository) Stats(ctx context.Context, userID string) (*models.ComplaintStats, error) {
	stats := &models.ComplaintStats{
		ByStatus:   map[string]int{},
		ByCategory: map[string]int{},
		ByUrgency:  map[string]int{},
	}

	totalsQuery := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'resolved'),
			COUNT(*) FILTER (WHERE is_emergency_sos),
			COALESCE(AVG((feedback->>'rating')::numeric), 0)::float8
		FROM complaints
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, totalsQuery, userID).Scan(
		&stats.Total,
		&stats.Resolved,
		&stats.Emergency,
		&stats.AverageRating,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint totals: %w", err)
	}

	groupsQuery := `
		SELECT 'status', status, COUNT(*) FROM complaints WHERE user_id = $1 GROUP BY status
		UNION ALL
		SELECT 'category', category, COUNT(*) FROM complaints WHERE user_id = $1 GROUP BY category
		UNION ALL
		SELECT 'urgency', urgency, COUNT(*) FROM complaints WHERE user_id = $1 GROUP BY urgency;
	`
	rows, err := r.db.Query(ctx, groupsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint groups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			dimension, key string
			count          int
		)
		if err := rows.Scan(&dimension, &key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan complaint group row: %w", err)
		}
		switch dimension {
		case "status":
			stats.ByStatus[key] = count
		case "category":
			stats.ByCategory[key] = count
		case "urgency":
			stats.ByUrgency[key] = count
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error groups iteration: %w", err)
	}
	return stats, nil
}

// GetComplaintFromCache возвращает nil, nil при промахе
func (r *ComplaintRepository) GetComplaintFromCache(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	complaint := &models.Complaint{}
	found, err := getJSON(ctx, r.redisClient, complaintKey(id), complaint)
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint from cache: %w", err)
	}
	if !found {
		return nil, nil
	}
	return complaint, nil
}

func (r *ComplaintRepository) SetComplaintCache(ctx context.Context, complaint *models.Complaint) error {
	if err := setJSON(ctx, r.redisClient, complaintKey(complaint.ID), complaint, r.cacheTTL); err != nil {
		return fmt.Errorf("failed to set complaint in cache: %w", err)
	}
	return nil
}

func (r *ComplaintRepository) InvalidateComplaintCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, complaintKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate complaint cache: %w", err)
	}
	return nil
}

// complaintFilterClause строит условие WHERE и аргументы по фильтру
func complaintFilterClause(userID string, filter models.ComplaintFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.Category != "" {
		add("category = $%d", filter.Category)
	}
	if filter.Urgency != "" {
		add("urgency = $%d", filter.Urgency)
	}
	if filter.StartDate != nil {
		add("created_at >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		add("created_at <= $%d", *filter.EndDate)
	}
	return strings.Join(conditions, " AND "), args
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var (
		c        models.Complaint
		lon, lat *float64
	)
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Category,
		&c.Title,
		&c.Description,
		&c.Urgency,
		&c.ContactInfo,
		&c.AlternateContact,
		&c.Location.Address,
		&lon,
		&lat,
		&c.Location.Landmark,
		&c.AdditionalInfo,
		&c.IsEmergencySOS,
		&c.Status,
		&c.CancelReason,
		&c.Communications,
		&c.Feedback,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lon != nil && lat != nil {
		c.Location.Coordinates = &[2]float64{*lon, *lat}
	}
	return &c, nil
}
