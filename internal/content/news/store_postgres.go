package news

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

func (repository *PostgresRepository) ListNews(context context.Context) ([]*News, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY %s DESC
	`, columnList(), schema.ContentNews.Table, schema.ContentNews.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_news")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) ListNewsByOwner(context context.Context, ownerEmail string) ([]*News, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`, columnList(), schema.ContentNews.Table, schema.ContentNews.OwnerEmail, schema.ContentNews.CreatedAt)

	rows, err := repository.db.Query(context, query, ownerEmail)
	if err != nil {
		return nil, dberr.Wrap(err, "list_news_by_owner")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) ListFeaturedNews(context context.Context, limit int) ([]*News, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = TRUE ORDER BY %s DESC LIMIT $1
	`, columnList(), schema.ContentNews.Table, schema.ContentNews.IsFeatured, schema.ContentNews.CreatedAt)

	rows, err := repository.db.Query(context, query, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_featured_news")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) GetNews(context context.Context, id resource.ID) (*News, error) {
	numericID, err := id.Int64("News")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1
	`, columnList(), schema.ContentNews.Table, schema.ContentNews.ID)

	item, err := scanOne(repository.db.QueryRow(context, query, numericID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("News")
		}
		return nil, dberr.Wrap(err, "get_news")
	}
	return item, nil
}

func (repository *PostgresRepository) CreateNews(context context.Context, item *News) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentNews.Table,
		schema.ContentNews.OwnerEmail, schema.ContentNews.OwnerID,
		schema.ContentNews.TitleEn, schema.ContentNews.TitleAr, schema.ContentNews.TitleFr,
		schema.ContentNews.ParagraphEn, schema.ContentNews.ParagraphAr, schema.ContentNews.ParagraphFr,
		schema.ContentNews.Image, schema.ContentNews.YoutubeLink, schema.ContentNews.IsFeatured,
		schema.ContentNews.Version, schema.ContentNews.CreatedAt,
		schema.ContentNews.ID, schema.ContentNews.Version, schema.ContentNews.CreatedAt,
	)

	var numericID int64
	err := repository.db.QueryRow(context, query,
		item.OwnerEmail, item.OwnerID,
		item.Title.En, item.Title.Ar, item.Title.Fr,
		item.Paragraph.En, item.Paragraph.Ar, item.Paragraph.Fr,
		item.Image, item.YoutubeLink, item.IsFeatured,
	).Scan(&numericID, &item.Version, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_news")
	}

	item.ID = resource.FromInt64(numericID)
	return nil
}

func (repository *PostgresRepository) UpdateNews(context context.Context, item *News) error {
	numericID, err := item.ID.Int64("News")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5,
		    %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11,
		    %s = %s + 1
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.ContentNews.Table,
		schema.ContentNews.TitleEn, schema.ContentNews.TitleAr, schema.ContentNews.TitleFr,
		schema.ContentNews.ParagraphEn, schema.ContentNews.ParagraphAr, schema.ContentNews.ParagraphFr,
		schema.ContentNews.Image, schema.ContentNews.YoutubeLink, schema.ContentNews.IsFeatured,
		schema.ContentNews.Version, schema.ContentNews.Version,
		schema.ContentNews.ID, schema.ContentNews.Version,
		schema.ContentNews.Version,
	)

	err = repository.db.QueryRow(context, query,
		numericID, item.Version,
		item.Title.En, item.Title.Ar, item.Title.Fr,
		item.Paragraph.En, item.Paragraph.Ar, item.Paragraph.Fr,
		item.Image, item.YoutubeLink, item.IsFeatured,
	).Scan(&item.Version)
	if err != nil {
		// The record was loaded moments ago, so a missing row means the
		// version moved underneath us (or the record was deleted).
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Conflict("News was modified concurrently, please retry")
		}
		return dberr.Wrap(err, "update_news")
	}
	return nil
}

func (repository *PostgresRepository) DeleteNews(context context.Context, id resource.ID) error {
	numericID, err := id.Int64("News")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentNews.Table, schema.ContentNews.ID)

	cmd, err := repository.db.Exec(context, query, numericID)
	if err != nil {
		return dberr.Wrap(err, "delete_news")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("News")
	}
	return nil
}

func columnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentNews.ID, schema.ContentNews.OwnerEmail, schema.ContentNews.OwnerID,
		schema.ContentNews.TitleEn, schema.ContentNews.TitleAr, schema.ContentNews.TitleFr,
		schema.ContentNews.ParagraphEn, schema.ContentNews.ParagraphAr, schema.ContentNews.ParagraphFr,
		schema.ContentNews.Image, schema.ContentNews.YoutubeLink, schema.ContentNews.IsFeatured,
		schema.ContentNews.Version, schema.ContentNews.CreatedAt,
	)
}

func scanOne(row pgx.Row) (*News, error) {
	item := &News{}
	var numericID int64
	err := row.Scan(
		&numericID, &item.OwnerEmail, &item.OwnerID,
		&item.Title.En, &item.Title.Ar, &item.Title.Fr,
		&item.Paragraph.En, &item.Paragraph.Ar, &item.Paragraph.Fr,
		&item.Image, &item.YoutubeLink, &item.IsFeatured,
		&item.Version, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ID = resource.FromInt64(numericID)
	return item, nil
}

func scanAll(rows pgx.Rows) ([]*News, error) {
	items := []*News{}
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_news")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
