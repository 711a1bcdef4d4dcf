package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing item request data.
type Repository interface {
	Create(ctx context.Context, r *ItemRequest) error
	GetByID(ctx context.Context, id string) (*ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*ItemRequest, error)
	ListOthers(ctx context.Context, requesterID string) ([]*ItemRequest, error)
	ListAnswers(ctx context.Context, requestIDs []string) (map[string][]*Answer, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, req *ItemRequest) error {
	const query = `
		INSERT INTO item_requests (description, requester_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.pool.QueryRow(ctx, query, req.Description, req.RequesterID).
		Scan(&req.ID, &req.CreatedAt); err != nil {
		return fmt.Errorf("create item request failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ItemRequest, error) {
	const query = `
		SELECT id, description, requester_id, created_at
		FROM item_requests
		WHERE id = $1
	`

	var req ItemRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item request failed: %w", err)
	}

	return &req, nil
}

func (r *pgxRepository) ListByRequester(ctx context.Context, requesterID string) ([]*ItemRequest, error) {
	return r.list(ctx, squirrel.Eq{"requester_id": requesterID})
}

func (r *pgxRepository) ListOthers(ctx context.Context, requesterID string) ([]*ItemRequest, error) {
	return r.list(ctx, squirrel.NotEq{"requester_id": requesterID})
}

func (r *pgxRepository) list(ctx context.Context, cond squirrel.Sqlizer) ([]*ItemRequest, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "description", "requester_id", "created_at").
		From("item_requests").
		Where(cond).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list item requests query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query item requests failed: %w", err)
	}
	defer rows.Close()

	var reqs []*ItemRequest
	for rows.Next() {
		var req ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequesterID, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item request failed: %w", err)
		}
		reqs = append(reqs, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate item requests failed: %w", err)
	}

	return reqs, nil
}

func (r *pgxRepository) ListAnswers(ctx context.Context, requestIDs []string) (map[string][]*Answer, error) {
	if len(requestIDs) == 0 {
		return map[string][]*Answer{}, nil
	}

	const query = `
		SELECT id, name, description, available, owner_id, request_id
		FROM items
		WHERE request_id = ANY($1)
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, requestIDs)
	if err != nil {
		return nil, fmt.Errorf("query request answers failed: %w", err)
	}
	defer rows.Close()

	answers := make(map[string][]*Answer)
	for rows.Next() {
		var a Answer
		var requestID string
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Available, &a.OwnerID, &requestID); err != nil {
			return nil, fmt.Errorf("scan request answer failed: %w", err)
		}
		answers[requestID] = append(answers[requestID], &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request answers failed: %w", err)
	}

	return answers, nil
}
