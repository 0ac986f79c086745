package partnership

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

func (repository *PostgresRepository) ListPartnerships(context context.Context) ([]*Partnership, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s ORDER BY %s DESC
	`, columnList(), schema.ContentPartnership.Table, schema.ContentPartnership.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_partnerships")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) ListPartnershipsByOwner(context context.Context, ownerEmail string) ([]*Partnership, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC
	`, columnList(), schema.ContentPartnership.Table, schema.ContentPartnership.OwnerEmail, schema.ContentPartnership.CreatedAt)

	rows, err := repository.db.Query(context, query, ownerEmail)
	if err != nil {
		return nil, dberr.Wrap(err, "list_partnerships_by_owner")
	}
	defer rows.Close()

	return scanAll(rows)
}

func (repository *PostgresRepository) GetPartnership(context context.Context, id resource.ID) (*Partnership, error) {
	numericID, err := id.Int64("Partnership")
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1
	`, columnList(), schema.ContentPartnership.Table, schema.ContentPartnership.ID)

	item, err := scanOne(repository.db.QueryRow(context, query, numericID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Partnership")
		}
		return nil, dberr.Wrap(err, "get_partnership")
	}
	return item, nil
}

func (repository *PostgresRepository) CreatePartnership(context context.Context, item *Partnership) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, 1, NOW())
		RETURNING %s, %s, %s
	`,
		schema.ContentPartnership.Table,
		schema.ContentPartnership.OwnerEmail, schema.ContentPartnership.OwnerID,
		schema.ContentPartnership.Image, schema.ContentPartnership.WebsiteURL,
		schema.ContentPartnership.Version, schema.ContentPartnership.CreatedAt,
		schema.ContentPartnership.ID, schema.ContentPartnership.Version, schema.ContentPartnership.CreatedAt,
	)

	var numericID int64
	err := repository.db.QueryRow(context, query,
		item.OwnerEmail, item.OwnerID, item.Image, item.WebsiteURL,
	).Scan(&numericID, &item.Version, &item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_partnership")
	}

	item.ID = resource.FromInt64(numericID)
	return nil
}

func (repository *PostgresRepository) UpdatePartnership(context context.Context, item *Partnership) error {
	numericID, err := item.ID.Int64("Partnership")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $3, %s = $4,
		    %s = %s + 1
		WHERE %s = $1 AND %s = $2
		RETURNING %s
	`,
		schema.ContentPartnership.Table,
		schema.ContentPartnership.Image, schema.ContentPartnership.WebsiteURL,
		schema.ContentPartnership.Version, schema.ContentPartnership.Version,
		schema.ContentPartnership.ID, schema.ContentPartnership.Version,
		schema.ContentPartnership.Version,
	)

	err = repository.db.QueryRow(context, query,
		numericID, item.Version, item.Image, item.WebsiteURL,
	).Scan(&item.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.Conflict("Partnership was modified concurrently, please retry")
		}
		return dberr.Wrap(err, "update_partnership")
	}
	return nil
}

func (repository *PostgresRepository) DeletePartnership(context context.Context, id resource.ID) error {
	numericID, err := id.Int64("Partnership")
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ContentPartnership.Table, schema.ContentPartnership.ID)

	cmd, err := repository.db.Exec(context, query, numericID)
	if err != nil {
		return dberr.Wrap(err, "delete_partnership")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Partnership")
	}
	return nil
}

func columnList() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
		schema.ContentPartnership.ID, schema.ContentPartnership.OwnerEmail, schema.ContentPartnership.OwnerID,
		schema.ContentPartnership.Image, schema.ContentPartnership.WebsiteURL,
		schema.ContentPartnership.Version, schema.ContentPartnership.CreatedAt,
	)
}

func scanOne(row pgx.Row) (*Partnership, error) {
	item := &Partnership{}
	var numericID int64
	err := row.Scan(
		&numericID, &item.OwnerEmail, &item.OwnerID,
		&item.Image, &item.WebsiteURL,
		&item.Version, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	item.ID = resource.FromInt64(numericID)
	return item, nil
}

func scanAll(rows pgx.Rows) ([]*Partnership, error) {
	items := []*Partnership{}
	for rows.Next() {
		item, err := scanOne(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_partnership")
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
