package video

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

func (repository *PostgresRepository) ListVideos(context context.Context) ([]*Video, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY %s DESC
	`, columnList(), schema.ContentVideo.Table, schema.ContentVideo.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_videos")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) ListVideosByOwner(context context.Context, ownerEmail string) ([]*Video, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`, columnList(), schema.ContentVideo.Table, schema.ContentVideo.OwnerEmail, schema.ContentVideo.CreatedAt)

	rows, err := repository.db.Query(context, query, ownerEmail)
	if err != nil {
		return nil, dberr.Wrap(err, "list_videos_by_owner")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) GetVideo(context context.Context, id resource.ID) (*Video, error) {
	numericID, err := id.Int64("Video")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1
	`, columnList(), schema.ContentVideo.Table, schema.ContentVideo.ID)

	item, err := scanOne(repository.db.QueryRow(context, query, numericID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Video")
		}
		return nil, dberr.Wrap(err, "get_video")
	}
	return item, nil
}

func (repository *PostgresRepository) CreateVideo(context context.Context, item *Video) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, 1, NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentVideo.Table,
		schema.ContentVideo.OwnerEmail, schema.ContentVideo.OwnerID,
		schema.ContentVideo.TitleEn, schema.ContentVideo.TitleAr, schema.ContentVideo.TitleFr,
		schema.ContentVideo.YoutubeLink,
		schema.ContentVideo.Version, schema.ContentVideo.CreatedAt,
		schema.ContentVideo.ID, schema.ContentVideo.Version, schema.ContentVideo.CreatedAt,
	)

	var numericID int64
	err := repository.db.QueryRow(context, query,
		item.OwnerEmail, item.OwnerID,
		item.Title.En, item.Title.Ar, item.Title.Fr,
		item.YoutubeLink,
	).Scan(&numericID, &item.Version, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_video")
	}

	item.ID = resource.FromInt64(numericID)
	return nil
}

func (repository *PostgresRepository) UpdateVideo(context context.Context, item *Video) error {
	numericID, err := item.ID.Int64("Video")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5, %s = $6,
		    %s = %s + 1
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.ContentVideo.Table,
		schema.ContentVideo.TitleEn, schema.ContentVideo.TitleAr, schema.ContentVideo.TitleFr,
		schema.ContentVideo.YoutubeLink,
		schema.ContentVideo.Version, schema.ContentVideo.Version,
		schema.ContentVideo.ID, schema.ContentVideo.Version,
		schema.ContentVideo.Version,
	)

	err = repository.db.QueryRow(context, query,
		numericID, item.Version,
		item.Title.En, item.Title.Ar, item.Title.Fr,
		item.YoutubeLink,
	).Scan(&item.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Conflict("Video was modified concurrently, please retry")
		}
		return dberr.Wrap(err, "update_video")
	}
	return nil
}

func (repository *PostgresRepository) DeleteVideo(context context.Context, id resource.ID) error {
	numericID, err := id.Int64("Video")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentVideo.Table, schema.ContentVideo.ID)

	cmd, err := repository.db.Exec(context, query, numericID)
	if err != nil {
		return dberr.Wrap(err, "delete_video")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Video")
	}
	return nil
}

func columnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentVideo.ID, schema.ContentVideo.OwnerEmail, schema.ContentVideo.OwnerID,
		schema.ContentVideo.TitleEn, schema.ContentVideo.TitleAr, schema.ContentVideo.TitleFr,
		schema.ContentVideo.YoutubeLink,
		schema.ContentVideo.Version, schema.ContentVideo.CreatedAt,
	)
}

func scanOne(row pgx.Row) (*Video, error) {
	item := &Video{}
	var numericID int64
	err := row.Scan(
		&numericID, &item.OwnerEmail, &item.OwnerID,
		&item.Title.En, &item.Title.Ar, &item.Title.Fr,
		&item.YoutubeLink,
		&item.Version, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ID = resource.FromInt64(numericID)
	return item, nil
}

func scanAll(rows pgx.Rows) ([]*Video, error) {
	items := []*Video{}
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_video")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
