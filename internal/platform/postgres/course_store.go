package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coursedeck/coursedeck-api/internal/domain"
	"github.com/coursedeck/coursedeck-api/internal/platform/logger"
	"github.com/coursedeck/coursedeck-api/internal/store"
	"github.com/google/uuid"
)

// PostgresCourseStore implements the store.CourseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCourseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCourseStore creates a new PostgreSQL implementation of the
// CourseStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// the default logger is used.
func NewPostgresCourseStore(db store.DBTX, log *slog.Logger) *PostgresCourseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PostgresCourseStore{
		db:     db,
		logger: log.With(slog.String("component", "course_store")),
	}
}

// Ensure PostgresCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*PostgresCourseStore)(nil)

// courseColumns selects a course joined with its owner. Timestamps are
// scanned but never serialized; responses exclude them at the API layer.
const courseWithOwnerQuery = `
	SELECT c.id, c.title, c.description, c.estimated_time, c.materials_needed,
	       c.user_id, c.created_at, c.updated_at,
	       u.id, u.name, u.email, u.created_at, u.updated_at
	FROM courses c
	JOIN users u ON u.id = c.user_id
`

// Create implements store.CourseStore.Create.
// Returns store.ErrInvalidEntity if the course fails validation or the
// referenced owner does not exist (foreign key violation).
func (s *PostgresCourseStore) Create(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		log.Warn("course validation failed during create",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO courses (id, title, description, estimated_time, materials_needed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		course.ID,
		course.Title,
		course.Description,
		nullString(course.EstimatedTime),
		nullString(course.MaterialsNeeded),
		course.UserID,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during course creation",
				slog.String("course_id", course.ID.String()),
				slog.String("user_id", course.UserID.String()))
			return fmt.Errorf("%w: owner %s not found", store.ErrInvalidEntity, course.UserID)
		}

		log.Error("failed to create course",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return err
	}

	log.Info("course created successfully",
		slog.String("course_id", course.ID.String()),
		slog.String("user_id", course.UserID.String()))
	return nil
}

// GetByID implements store.CourseStore.GetByID.
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *PostgresCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*store.CourseWithOwner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	row := s.db.QueryRowContext(ctx, courseWithOwnerQuery+` WHERE c.id = $1`, id)

	cwo, err := scanCourseWithOwner(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("course not found", slog.String("course_id", id.String()))
			return nil, store.ErrCourseNotFound
		}
		log.Error("failed to get course by ID",
			slog.String("error", err.Error()),
			slog.String("course_id", id.String()))
		return nil, err
	}

	return cwo, nil
}

// List implements store.CourseStore.List.
func (s *PostgresCourseStore) List(ctx context.Context) ([]store.CourseWithOwner, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, courseWithOwnerQuery+` ORDER BY c.created_at, c.id`)
	if err != nil {
		log.Error("failed to list courses", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	courses := make([]store.CourseWithOwner, 0)
	for rows.Next() {
		cwo, err := scanCourseWithOwner(rows.Scan)
		if err != nil {
			log.Error("failed to scan course row", slog.String("error", err.Error()))
			return nil, err
		}
		courses = append(courses, *cwo)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while iterating course rows", slog.String("error", err.Error()))
		return nil, err
	}

	return courses, nil
}

// Update implements store.CourseStore.Update.
// Only content fields are written; user_id is immutable after creation.
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *PostgresCourseStore) Update(ctx context.Context, course *domain.Course) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := course.Validate(); err != nil {
		log.Warn("course validation failed during update",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE courses
		SET title = $2, description = $3, estimated_time = $4, materials_needed = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		course.ID,
		course.Title,
		course.Description,
		nullString(course.EstimatedTime),
		nullString(course.MaterialsNeeded),
		course.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to update course",
			slog.String("error", err.Error()),
			slog.String("course_id", course.ID.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrCourseNotFound
	}

	log.Info("course updated successfully",
		slog.String("course_id", course.ID.String()))
	return nil
}

// Delete implements store.CourseStore.Delete.
// Returns store.ErrCourseNotFound if the course does not exist.
func (s *PostgresCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete course",
			slog.String("error", err.Error()),
			slog.String("course_id", id.String()))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrCourseNotFound
	}

	log.Info("course deleted successfully", slog.String("course_id", id.String()))
	return nil
}

// scanCourseWithOwner scans one joined course+owner row.
func scanCourseWithOwner(scan func(dest ...any) error) (*store.CourseWithOwner, error) {
	var cwo store.CourseWithOwner
	var estimatedTime, materialsNeeded sql.NullString

	err := scan(
		&cwo.Course.ID,
		&cwo.Course.Title,
		&cwo.Course.Description,
		&estimatedTime,
		&materialsNeeded,
		&cwo.Course.UserID,
		&cwo.Course.CreatedAt,
		&cwo.Course.UpdatedAt,
		&cwo.Owner.ID,
		&cwo.Owner.Name,
		&cwo.Owner.Email,
		&cwo.Owner.CreatedAt,
		&cwo.Owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cwo.Course.EstimatedTime = estimatedTime.String
	cwo.Course.MaterialsNeeded = materialsNeeded.String
	return &cwo, nil
}

// nullString maps an empty string to SQL NULL for the optional columns.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
