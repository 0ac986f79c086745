package photo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manaracms/manara/internal/content/resource"
	"github.com/manaracms/manara/internal/platform/apperr"
	"github.com/manaracms/manara/internal/platform/database/schema"
	"github.com/manaracms/manara/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListPhotos(context context.Context) ([]*Photo, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY %s DESC
	`, columnList(), schema.ContentPhoto.Table, schema.ContentPhoto.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_photos")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) ListPhotosByOwner(context context.Context, ownerEmail string) ([]*Photo, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`, columnList(), schema.ContentPhoto.Table, schema.ContentPhoto.OwnerEmail, schema.ContentPhoto.CreatedAt)

	rows, err := repository.db.Query(context, query, ownerEmail)
	if err != nil {
		return nil, dberr.Wrap(err, "list_photos_by_owner")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) GetPhoto(context context.Context, id resource.ID) (*Photo, error) {
	numericID, err := id.Int64("Photo")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1
	`, columnList(), schema.ContentPhoto.Table, schema.ContentPhoto.ID)

	item, err := scanOne(repository.db.QueryRow(context, query, numericID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Photo")
		}
		return nil, dberr.Wrap(err, "get_photo")
	}
	return item, nil
}

func (repository *PostgresRepository) CreatePhoto(context context.Context, item *Photo) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, 1, NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentPhoto.Table,
		schema.ContentPhoto.OwnerEmail, schema.ContentPhoto.OwnerID, schema.ContentPhoto.Image,
		schema.ContentPhoto.Version, schema.ContentPhoto.CreatedAt,
		schema.ContentPhoto.ID, schema.ContentPhoto.Version, schema.ContentPhoto.CreatedAt,
	)

	var numericID int64
	err := repository.db.QueryRow(context, query,
		item.OwnerEmail, item.OwnerID, item.Image,
	).Scan(&numericID, &item.Version, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_photo")
	}

	item.ID = resource.FromInt64(numericID)
	return nil
}

func (repository *PostgresRepository) UpdatePhoto(context context.Context, item *Photo) error {
	numericID, err := item.ID.Int64("Photo")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3,
		    %s = %s + 1
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.ContentPhoto.Table,
		schema.ContentPhoto.Image,
		schema.ContentPhoto.Version, schema.ContentPhoto.Version,
		schema.ContentPhoto.ID, schema.ContentPhoto.Version,
		schema.ContentPhoto.Version,
	)

	err = repository.db.QueryRow(context, query, numericID, item.Version, item.Image).Scan(&item.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Conflict("Photo was modified concurrently, please retry")
		}
		return dberr.Wrap(err, "update_photo")
	}
	return nil
}

func (repository *PostgresRepository) DeletePhoto(context context.Context, id resource.ID) error {
	numericID, err := id.Int64("Photo")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentPhoto.Table, schema.ContentPhoto.ID)

	cmd, err := repository.db.Exec(context, query, numericID)
	if err != nil {
		return dberr.Wrap(err, "delete_photo")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Photo")
	}
	return nil
}

func columnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		schema.ContentPhoto.ID, schema.ContentPhoto.OwnerEmail, schema.ContentPhoto.OwnerID,
		schema.ContentPhoto.Image, schema.ContentPhoto.Version, schema.ContentPhoto.CreatedAt,
	)
}

func scanOne(row pgx.Row) (*Photo, error) {
	item := &Photo{}
	var numericID int64
	err := row.Scan(
		&numericID, &item.OwnerEmail, &item.OwnerID,
		&item.Image, &item.Version, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ID = resource.FromInt64(numericID)
	return item, nil
}

func scanAll(rows pgx.Rows) ([]*Photo, error) {
	items := []*Photo{}
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_photo")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
