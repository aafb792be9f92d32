package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/domain/agentfile"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
)

type agentFileRepositoryImpl struct {
	db *database.DB
}

func NewAgentFileRepository(db *database.DB) agentfile.AgentFileRepository {
	return &agentFileRepositoryImpl{db: db}
}

const agentFileColumns = `id, employee_id, filename, file_description, onedrive_file_url, file_size_bytes, file_type, uploaded_at`

func (r *agentFileRepositoryImpl) Create(ctx context.Context, file agentfile.AgentFile) (agentfile.AgentFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO agent_files (id, employee_id, filename, file_description, onedrive_file_url, file_size_bytes, file_type, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING ` + agentFileColumns + `
	`

	var created agentfile.AgentFile
	err := q.QueryRow(ctx, query,
		file.ID, file.EmployeeID, file.Filename, file.FileDescription,
		file.OneDriveFileURL, file.FileSizeBytes, file.FileType,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Filename, &created.FileDescription,
		&created.OneDriveFileURL, &created.FileSizeBytes, &created.FileType, &created.UploadedAt,
	)
	if err != nil {
		return agentfile.AgentFile{}, err
	}
	return created, nil
}

func (r *agentFileRepositoryImpl) GetByID(ctx context.Context, id string) (agentfile.AgentFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + agentFileColumns + `
		FROM agent_files
		WHERE id = $1
	`

	var file agentfile.AgentFile
	err := q.QueryRow(ctx, query, id).Scan(
		&file.ID, &file.EmployeeID, &file.Filename, &file.FileDescription,
		&file.OneDriveFileURL, &file.FileSizeBytes, &file.FileType, &file.UploadedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return agentfile.AgentFile{}, agentfile.ErrFileNotFound
	}
	if err != nil {
		return agentfile.AgentFile{}, err
	}
	return file, nil
}

func (r *agentFileRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]agentfile.AgentFile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + agentFileColumns + `
		FROM agent_files
		WHERE employee_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []agentfile.AgentFile
	for rows.Next() {
		var file agentfile.AgentFile
		if err := rows.Scan(
			&file.ID, &file.EmployeeID, &file.Filename, &file.FileDescription,
			&file.OneDriveFileURL, &file.FileSizeBytes, &file.FileType, &file.UploadedAt,
		); err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, rows.Err()
}

func (r *agentFileRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM agent_files WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return agentfile.ErrFileNotFound
	}
	return nil
}
