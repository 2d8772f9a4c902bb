package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bnema/tintbar/internal/domain/entity"
	"github.com/bnema/tintbar/internal/domain/repository"
	"github.com/bnema/tintbar/internal/logging"
)

type projectColorRepo struct {
	db *sql.DB
}

// NewProjectColorRepository creates a new SQLite-backed project color
// repository.
func NewProjectColorRepository(db *sql.DB) repository.ProjectColorRepository {
	return &projectColorRepo{db: db}
}

func (r *projectColorRepo) Get(ctx context.Context, path string) (*entity.ProjectColor, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("path", path).Msg("getting project color")

	row := r.db.QueryRowContext(ctx,
		`SELECT path, color, auto_picked, updated_at FROM project_colors WHERE path = ?`,
		entity.CleanProjectPath(path))

	pc, err := scanProjectColor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get project color: %w", err)
	}
	return pc, nil
}

func (r *projectColorRepo) Set(ctx context.Context, color *entity.ProjectColor) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("path", color.Path).Str("color", color.Color.Hex()).Msg("setting project color")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO project_colors (path, color, auto_picked, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
		   color = excluded.color,
		   auto_picked = excluded.auto_picked,
		   updated_at = excluded.updated_at`,
		color.Path, color.Color.Hex(), boolToInt(color.AutoPicked), color.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("set project color: %w", err)
	}
	return nil
}

func (r *projectColorRepo) Delete(ctx context.Context, path string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM project_colors WHERE path = ?`, entity.CleanProjectPath(path))
	if err != nil {
		return fmt.Errorf("delete project color: %w", err)
	}
	return nil
}

func (r *projectColorRepo) GetAll(ctx context.Context) ([]*entity.ProjectColor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT path, color, auto_picked, updated_at FROM project_colors ORDER BY path`)
	if err != nil {
		return nil, fmt.Errorf("list project colors: %w", err)
	}
	defer rows.Close()

	var out []*entity.ProjectColor
	for rows.Next() {
		pc, err := scanProjectColor(rows)
		if err != nil {
			return nil, fmt.Errorf("list project colors: %w", err)
		}
		out = append(out, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list project colors: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProjectColor(row rowScanner) (*entity.ProjectColor, error) {
	var (
		path       string
		hex        string
		autoPicked int
		updatedAt  time.Time
	)
	if err := row.Scan(&path, &hex, &autoPicked, &updatedAt); err != nil {
		return nil, err
	}

	color, err := entity.ParseHex(hex)
	if err != nil {
		return nil, fmt.Errorf("stored color for %s is corrupt: %w", path, err)
	}

	return &entity.ProjectColor{
		Path:       path,
		Color:      color,
		AutoPicked: autoPicked != 0,
		UpdatedAt:  updatedAt,
	}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
