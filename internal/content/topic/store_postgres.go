package topic

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

func (repository *PostgresRepository) ListTopics(context context.Context) ([]*Topic, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY %s DESC
	`, columnList(), schema.ContentTopic.Table, schema.ContentTopic.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) ListTopicsByOwner(context context.Context, ownerEmail string) ([]*Topic, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`, columnList(), schema.ContentTopic.Table, schema.ContentTopic.OwnerEmail, schema.ContentTopic.CreatedAt)

	rows, err := repository.db.Query(context, query, ownerEmail)
	if err != nil {
		return nil, dberr.Wrap(err, "list_topics_by_owner")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) GetTopic(context context.Context, id resource.ID) (*Topic, error) {
	numericID, err := id.Int64("Topic")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1
	`, columnList(), schema.ContentTopic.Table, schema.ContentTopic.ID)

	item, err := scanOne(repository.db.QueryRow(context, query, numericID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Topic")
		}
		return nil, dberr.Wrap(err, "get_topic")
	}
	return item, nil
}

func (repository *PostgresRepository) CreateTopic(context context.Context, item *Topic) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, 1, NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentTopic.Table,
		schema.ContentTopic.OwnerEmail, schema.ContentTopic.OwnerID,
		schema.ContentTopic.TitleEn, schema.ContentTopic.TitleAr, schema.ContentTopic.TitleFr,
		schema.ContentTopic.ParagraphEn, schema.ContentTopic.ParagraphAr, schema.ContentTopic.ParagraphFr,
		schema.ContentTopic.Image, schema.ContentTopic.YoutubeLink,
		schema.ContentTopic.Version, schema.ContentTopic.CreatedAt,
		schema.ContentTopic.ID, schema.ContentTopic.Version, schema.ContentTopic.CreatedAt,
	)

	var numericID int64
	err := repository.db.QueryRow(context, query,
		item.OwnerEmail, item.OwnerID,
		item.Title.En, item.Title.Ar, item.Title.Fr,
		item.Paragraph.En, item.Paragraph.Ar, item.Paragraph.Fr,
		item.Image, item.YoutubeLink,
	).Scan(&numericID, &item.Version, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_topic")
	}

	item.ID = resource.FromInt64(numericID)
	return nil
}

func (repository *PostgresRepository) UpdateTopic(context context.Context, item *Topic) error {
	numericID, err := item.ID.Int64("Topic")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4, %s = $5,
		    %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10,
		    %s = %s + 1
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.ContentTopic.Table,
		schema.ContentTopic.TitleEn, schema.ContentTopic.TitleAr, schema.ContentTopic.TitleFr,
		schema.ContentTopic.ParagraphEn, schema.ContentTopic.ParagraphAr, schema.ContentTopic.ParagraphFr,
		schema.ContentTopic.Image, schema.ContentTopic.YoutubeLink,
		schema.ContentTopic.Version, schema.ContentTopic.Version,
		schema.ContentTopic.ID, schema.ContentTopic.Version,
		schema.ContentTopic.Version,
	)

	err = repository.db.QueryRow(context, query,
		numericID, item.Version,
		item.Title.En, item.Title.Ar, item.Title.Fr,
		item.Paragraph.En, item.Paragraph.Ar, item.Paragraph.Fr,
		item.Image, item.YoutubeLink,
	).Scan(&item.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Conflict("Topic was modified concurrently, please retry")
		}
		return dberr.Wrap(err, "update_topic")
	}
	return nil
}

func (repository *PostgresRepository) DeleteTopic(context context.Context, id resource.ID) error {
	numericID, err := id.Int64("Topic")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentTopic.Table, schema.ContentTopic.ID)

	cmd, err := repository.db.Exec(context, query, numericID)
	if err != nil {
		return dberr.Wrap(err, "delete_topic")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Topic")
	}
	return nil
}

func columnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentTopic.ID, schema.ContentTopic.OwnerEmail, schema.ContentTopic.OwnerID,
		schema.ContentTopic.TitleEn, schema.ContentTopic.TitleAr, schema.ContentTopic.TitleFr,
		schema.ContentTopic.ParagraphEn, schema.ContentTopic.ParagraphAr, schema.ContentTopic.ParagraphFr,
		schema.ContentTopic.Image, schema.ContentTopic.YoutubeLink,
		schema.ContentTopic.Version, schema.ContentTopic.CreatedAt,
	)
}

func scanOne(row pgx.Row) (*Topic, error) {
	item := &Topic{}
	var numericID int64
	err := row.Scan(
		&numericID, &item.OwnerEmail, &item.OwnerID,
		&item.Title.En, &item.Title.Ar, &item.Title.Fr,
		&item.Paragraph.En, &item.Paragraph.Ar, &item.Paragraph.Fr,
		&item.Image, &item.YoutubeLink,
		&item.Version, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ID = resource.FromInt64(numericID)
	return item, nil
}

func scanAll(rows pgx.Rows) ([]*Topic, error) {
	items := []*Topic{}
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_topic")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
