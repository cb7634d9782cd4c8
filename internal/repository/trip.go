package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const tripColumns = `
	id,
	user_id,
	name,
	destination,
	description,
	start_date,
	end_date,
	members,
	itinerary,
	status,
	is_archived,
	created_at,
	updated_at`

type TripRepository struct {
	db *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) service.TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, t *models.Trip) error {
	members, itinerary, err := marshalTripDetails(t)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO trips (user_id, name, destination, description, start_date, end_date, members, itinerary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9)
		RETURNING id, is_archived, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		t.UserID,
		t.Name,
		t.Destination,
		t.Description,
		t.StartDate,
		t.EndDate,
		members,
		itinerary,
		t.Status,
	).Scan(&t.ID, &t.IsArchived, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}
	return nil
}

// GetByID возвращает поездку по UUID или models.ErrNotFound
func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1;`
	trip, err := scanTrip(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("trip %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get trip by id: %w", err)
	}
	return trip, nil
}

// ListByUser возвращает страницу поездок пользователя и общее количество по фильтру
func (r *TripRepository) ListByUser(ctx context.Context, userID string, filter models.TripFilter) ([]*models.Trip, int, error) {
	where, args := tripFilterClause(userID, filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM trips WHERE ` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`SELECT %s FROM trips WHERE %s ORDER BY start_date DESC, created_at DESC LIMIT $%d OFFSET $%d;`,
		tripColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.Query(ctx, query, append(args, filter.Limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	trips := make([]*models.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip row: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error list iteration: %w", err)
	}
	return trips, total, nil
}

// Update перезаписывает редактируемые поля. Архивные и завершенные поездки не меняются.
func (r *TripRepository) Update(ctx context.Context, t *models.Trip) error {
	members, itinerary, err := marshalTripDetails(t)
	if err != nil {
		return err
	}

	query := `
		UPDATE trips SET
			name = $1,
			destination = $2,
			description = $3,
			start_date = $4,
			end_date = $5,
			members = $6::jsonb,
			itinerary = $7::jsonb,
			updated_at = NOW()
		WHERE id = $8 AND NOT is_archived AND status IN ('planned', 'active')
		RETURNING updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		t.Name,
		t.Destination,
		t.Description,
		t.StartDate,
		t.EndDate,
		members,
		itinerary,
		t.ID,
	).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("trip %s is not editable: %w", t.ID, models.ErrInvalidState)
		}
		return fmt.Errorf("failed to update trip: %w", err)
	}
	return nil
}

// UpdateStatus меняет статус, только если текущий равен from.
// Вторая активная поездка пользователя отклоняется уникальным индексом.
func (r *TripRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.TripStatus) error {
	query := `
		UPDATE trips SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2 AND status = $3 AND NOT is_archived;
	`
	cmdTag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user already has an active trip: %w", models.ErrInvalidState)
		}
		return fmt.Errorf("failed to update trip status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s is not %s: %w", id, from, models.ErrInvalidState)
	}
	return nil
}

// Archive прячет поездку из списков, активную поездку архивировать нельзя
func (r *TripRepository) Archive(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE trips SET
			is_archived = TRUE,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_archived AND status <> 'active';
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to archive trip: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s cannot be archived: %w", id, models.ErrInvalidState)
	}
	return nil
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1 AND status <> 'active';`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("trip %s cannot be deleted: %w", id, models.ErrInvalidState)
	}
	return nil
}

// GetActive возвращает активную поездку пользователя или models.ErrNotFound
func (r *TripRepository) GetActive(ctx context.Context, userID string) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE user_id = $1 AND status = 'active' AND NOT is_archived LIMIT 1;`
	trip, err := scanTrip(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("active trip of %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get active trip: %w", err)
	}
	return trip, nil
}

// GetCurrent возвращает неархивную поездку, в сроки которой попадает day
func (r *TripRepository) GetCurrent(ctx context.Context, userID string, day time.Time) (*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + ` FROM trips
		WHERE user_id = $1
			AND NOT is_archived
			AND status IN ('planned', 'active')
			AND start_date <= $2 AND end_date >= $2
		ORDER BY (status = 'active') DESC, start_date
		LIMIT 1;
	`
	trip, err := scanTrip(r.db.QueryRow(ctx, query, userID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("current trip of %s: %w", userID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get current trip: %w", err)
	}
	return trip, nil
}

// Stats считает поездки пользователя по статусам, архивные тоже учитываются
func (r *TripRepository) Stats(ctx context.Context, userID string) (*models.TripStats, error) {
	query := `SELECT status, COUNT(*) FROM trips WHERE user_id = $1 GROUP BY status ORDER BY status;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip stats: %w", err)
	}
	defer rows.Close()

	stats := &models.TripStats{Statuses: make([]models.TripStatusCount, 0)}
	for rows.Next() {
		var row models.TripStatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("failed to scan trip stats row: %w", err)
		}
		stats.Total += row.Count
		stats.Statuses = append(stats.Statuses, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

// tripFilterClause строит условие WHERE и аргументы по фильтру
func tripFilterClause(userID string, filter models.TripFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{userID}

	if !filter.IncludeArchived {
		conditions = append(conditions, "NOT is_archived")
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

func marshalTripDetails(t *models.Trip) (members, itinerary []byte, err error) {
	if t.Members == nil {
		t.Members = []models.TripMember{}
	}
	if t.Itinerary == nil {
		t.Itinerary = []models.ItineraryDay{}
	}
	members, err = json.Marshal(t.Members)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal trip members: %w", err)
	}
	itinerary, err = json.Marshal(t.Itinerary)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal trip itinerary: %w", err)
	}
	return members, itinerary, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func scanTrip(row pgx.Row) (*models.Trip, error) {
	var t models.Trip
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.Destination,
		&t.Description,
		&t.StartDate,
		&t.EndDate,
		&t.Members,
		&t.Itinerary,
		&t.Status,
		&t.IsArchived,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
