package meta

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yourname/share_lite/internal/models"
)

const filesMetaTable = "files_meta"

// PGStore сохраняет метаданные файлов в Postgres.
type PGStore struct {
	pool *pgxpool.Pool
}

// OpenPostgres создаёт пул подключений к Postgres.
func OpenPostgres(ctx context.Context, dsn string) (*PGStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("meta dsn is empty")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &PGStore{pool: pool}, nil
}

// Get возвращает метаданные файла шары по идентификатору.
func (s *PGStore) Get(ctx context.Context, shareID, fileID string) (models.FileMetadata, error) {
	sqlStr, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("file_name", "mime_type", "size", "created_at").
		From(filesMetaTable).
		Where(sq.Eq{"id": fileID, "share_id": shareID}).
		Limit(1).
		ToSql()
	if err != nil {
		return models.FileMetadata{}, fmt.Errorf("build select: %w", err)
	}

	file := models.FileMetadata{ID: fileID, ShareID: shareID}
	err = s.pool.QueryRow(ctx, sqlStr, args...).
		Scan(&file.Name, &file.MimeType, &file.Size, &file.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.FileMetadata{}, models.ErrNotFound
		}
		return models.FileMetadata{}, fmt.Errorf("scan file row: %w", err)
	}

	return file, nil
}

// Save записывает метаданные финализированного файла.
func (s *PGStore) Save(ctx context.Context, file models.FileMetadata) error {
	sqlStr, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(filesMetaTable).
		Columns("id", "share_id", "file_name", "mime_type", "size", "created_at").
		Values(file.ID, file.ShareID, file.Name, file.MimeType, file.Size, file.CreatedAt).
		Suffix(`ON CONFLICT (id) DO NOTHING`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sql: %w", err)
	}

	if _, err := s.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("exec insert: %w", err)
	}

	return nil
}

// Delete удаляет запись файла; отсутствие строки — ErrNotFound.
func (s *PGStore) Delete(ctx context.Context, shareID, fileID string) error {
	sqlStr, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete(filesMetaTable).
		Where(sq.Eq{"id": fileID, "share_id": shareID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete sql: %w", err)
	}

	tag, err := s.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("exec delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

// ListByShare возвращает файлы шары в порядке создания.
func (s *PGStore) ListByShare(ctx context.Context, shareID string) ([]models.FileMetadata, error) {
	sqlStr, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "file_name", "mime_type", "size", "created_at").
		From(filesMetaTable).
		Where(sq.Eq{"share_id": shareID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sql: %w", err)
	}

	rows, err := s.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("query files: %w", err)
	}
	defer rows.Close()

	var out []models.FileMetadata
	for rows.Next() {
		f := models.FileMetadata{ShareID: shareID}
		if err := rows.Scan(&f.ID, &f.Name, &f.MimeType, &f.Size, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}
		out = append(out, f)
	}

	return out, rows.Err()
}

// Close освобождает подключения пула.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
