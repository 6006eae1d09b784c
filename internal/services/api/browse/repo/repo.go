// Package repo provides postgres persistence for favorite marks
package repo

import (
	"context"

	"roamly/internal/modkit/repokit"
	perr "roamly/internal/platform/errors"
)

// Repo defines the repository contract for durable favorites. Marks are
// keyed by the scope owner, so a returning host sees them across sessions
type Repo interface {
	Add(ctx context.Context, ownerID, listingID string) error
	Remove(ctx context.Context, ownerID, listingID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]string, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Add(ctx context.Context, ownerID, listingID string) error {
	const sql = `
insert into favorites (owner_id, listing_id)
values ($1, $2)
on conflict (owner_id, listing_id) do nothing
`
	if _, err := r.q.Exec(ctx, sql, ownerID, listingID); err != nil {
		return perr.FromPostgresf(err, "favorites add owner=%s listing=%s", ownerID, listingID)
	}
	return nil
}

func (r *queries) Remove(ctx context.Context, ownerID, listingID string) error {
	const sql = `delete from favorites where owner_id = $1 and listing_id = $2`
	if _, err := r.q.Exec(ctx, sql, ownerID, listingID); err != nil {
		return perr.FromPostgresf(err, "favorites remove owner=%s listing=%s", ownerID, listingID)
	}
	return nil
}

func (r *queries) ListByOwner(ctx context.Context, ownerID string) ([]string, error) {
	const sql = `
select listing_id
from favorites
where owner_id = $1
order by created_at asc
`
	rows, err := r.q.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, perr.FromPostgresf(err, "favorites list owner=%s", ownerID)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
