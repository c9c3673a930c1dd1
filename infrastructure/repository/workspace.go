package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/business-pulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-pulse-api/internal/domain"
)

const workspacesTable = "workspaces w"

type WorkspaceRepository interface {
	GetByID(workspaceID string) (*domain.Workspace, error)
	ListActiveIDs() ([]string, error)
}

type workspaceRepository struct {
	conn *postgres.Connection
}

func NewWorkspaceRepository(conn *postgres.Connection) WorkspaceRepository {
	return &workspaceRepository{
		conn: conn,
	}
}

func (r *workspaceRepository) GetByID(workspaceID string) (*domain.Workspace, error) {
	query, args, err := squirrel.
		Select("w.id, w.name, w.active, w.created_at, w.updated_at").
		From(workspacesTable).
		Where(squirrel.Eq{"w.id": workspaceID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		workspace domain.Workspace
		createdAt time.Time
		updatedAt time.Time
	)

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&workspace.ID, &workspace.Name, &workspace.Active, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
	}

	workspace.CreatedAt = createdAt
	workspace.UpdatedAt = updatedAt

	return &workspace, nil
}

func (r *workspaceRepository) ListActiveIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("w.id").
		From(workspacesTable).
		Where(squirrel.Eq{"w.active": true}).
		OrderBy("w.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear workspace: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}
