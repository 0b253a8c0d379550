package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	platformpg "returns-report-service/internal/platform/postgres"
	"returns-report-service/internal/returns/core/domain"
	"returns-report-service/internal/returns/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ReturnRepository struct {
	db DB
}

func NewReturnRepository(db DB) *ReturnRepository {
	return &ReturnRepository{db: db}
}

var _ ports.ReturnRepositoryPort = (*ReturnRepository)(nil)

// The header and its items go in one statement: when the folio already
// exists the CTE yields no row and no item is written.
const insertReturnSQL = `
WITH inserted AS (
    INSERT INTO returns (
        id, folio, customer, address, reason,
        zone, seller_id, status, total, returned_at
    ) VALUES (
        $1, $2, $3, $4, $5,
        $6, $7, $8, $9, $10
    )
    ON CONFLICT (folio) DO NOTHING
    RETURNING id
)
INSERT INTO return_items (return_id, position, name, code, aisle, quantity, unit_price)
SELECT inserted.id, item.position, item.name, item.code, item.aisle, item.quantity, item.unit_price
FROM inserted,
     unnest($11::int[], $12::text[], $13::text[], $14::text[], $15::int[], $16::numeric[])
         AS item(position, name, code, aisle, quantity, unit_price);
`

const updateReturnSQL = `
UPDATE returns SET
    folio = $2, customer = $3, address = $4, reason = $5,
    zone = $6, seller_id = $7, total = $8, returned_at = $9
WHERE id = $1;
`

const deleteItemsSQL = `DELETE FROM return_items WHERE return_id = $1;`

const insertItemsSQL = `
INSERT INTO return_items (return_id, position, name, code, aisle, quantity, unit_price)
SELECT $1::uuid, item.position, item.name, item.code, item.aisle, item.quantity, item.unit_price
FROM unnest($2::int[], $3::text[], $4::text[], $5::text[], $6::int[], $7::numeric[])
    AS item(position, name, code, aisle, quantity, unit_price);
`

const updateStatusSQL = `UPDATE returns SET status = $2 WHERE id = $1;`

const deleteReturnSQL = `DELETE FROM returns WHERE id = $1;`

// The inner query pages over returns, the join then expands their items.
const selectReturnsSQL = `
SELECT
    r.id::text, r.folio, r.customer, r.address, r.reason, r.zone,
    COALESCE(r.seller_id, ''), r.status, r.returned_at,
    i.name, i.code, i.aisle, i.quantity, i.unit_price::text
FROM (
    SELECT * FROM returns
    WHERE %s
    ORDER BY returned_at DESC, folio
    %s
) r
JOIN return_items i ON i.return_id = r.id
ORDER BY r.returned_at DESC, r.folio, i.position`

func (r *ReturnRepository) InsertReturn(ctx context.Context, ret *domain.Return) (bool, error) {
	return insertReturn(ctx, r.db, ret)
}

func (r *ReturnRepository) InsertReturns(ctx context.Context, rets []*domain.Return) (int, error) {
	created := 0
	err := r.db.WithTx(ctx, func(tx platformpg.Querier) error {
		for _, ret := range rets {
			ok, err := insertReturn(ctx, tx, ret)
			if err != nil {
				return err
			}
			if ok {
				created++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func insertReturn(ctx context.Context, q platformpg.Querier, ret *domain.Return) (bool, error) {
	args := []any{
		ret.ID.String(),
		ret.Folio,
		ret.Customer,
		ret.Address,
		ret.Reason,
		ret.Zone,
		nullable(ret.SellerID),
		string(ret.Status),
		ret.Total().StringFixed(2),
		ret.ReturnedAt,
	}
	args = append(args, itemArrays(ret.Items)...)

	res, err := q.ExecContext(ctx, insertReturnSQL, args...)
	if err != nil {
		return false, fmt.Errorf("inserting return %s: %w", ret.Folio, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows > 0  -> items written for a new return
	// rows == 0 -> duplicate folio
	return rows > 0, nil
}

func (r *ReturnRepository) UpdateReturn(ctx context.Context, ret *domain.Return) (bool, error) {
	found := false
	err := r.db.WithTx(ctx, func(tx platformpg.Querier) error {
		res, err := tx.ExecContext(ctx, updateReturnSQL,
			ret.ID.String(),
			ret.Folio,
			ret.Customer,
			ret.Address,
			ret.Reason,
			ret.Zone,
			nullable(ret.SellerID),
			ret.Total().StringFixed(2),
			ret.ReturnedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrFolioTaken
			}
			return fmt.Errorf("updating return %s: %w", ret.ID, err)
		}

		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return nil
		}
		found = true

		if _, err := tx.ExecContext(ctx, deleteItemsSQL, ret.ID.String()); err != nil {
			return fmt.Errorf("clearing items of %s: %w", ret.ID, err)
		}

		args := append([]any{ret.ID.String()}, itemArrays(ret.Items)...)
		if _, err := tx.ExecContext(ctx, insertItemsSQL, args...); err != nil {
			return fmt.Errorf("writing items of %s: %w", ret.ID, err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (r *ReturnRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) (bool, error) {
	return r.execByID(ctx, updateStatusSQL, id.String(), string(status))
}

func (r *ReturnRepository) DeleteReturn(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.execByID(ctx, deleteReturnSQL, id.String())
}

func (r *ReturnRepository) execByID(ctx context.Context, query string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

func (r *ReturnRepository) GetReturn(ctx context.Context, id uuid.UUID) (*domain.Return, error) {
	out, err := r.queryReturns(ctx, fmt.Sprintf(selectReturnsSQL, "id = $1", ""), id.String())
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *ReturnRepository) ListReturns(ctx context.Context, f ports.ListFilter) ([]domain.Return, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if !f.From.IsZero() {
		add("returned_at >= $%d", f.From)
	}
	if !f.To.IsZero() {
		// exclusive upper bound so the whole "to" day is included
		add("returned_at < $%d", f.To.AddDate(0, 0, 1))
	}
	if f.Zone != "" {
		add("zone = $%d", f.Zone)
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}

	cond := "TRUE"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	args = append(args, f.Limit, f.Offset)
	page := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return r.queryReturns(ctx, fmt.Sprintf(selectReturnsSQL, cond, page), args...)
}

// queryReturns folds the one-row-per-item result back into returns. Rows of
// one return are adjacent because of the ORDER BY.
func (r *ReturnRepository) queryReturns(ctx context.Context, query string, args ...any) ([]domain.Return, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying returns: %w", err)
	}
	defer rows.Close()

	var out []domain.Return
	for rows.Next() {
		var (
			id, status string
			ret        domain.Return
			it         domain.Item
			qty        int64
			price      string
			returnedAt time.Time
		)
		if err := rows.Scan(
			&id, &ret.Folio, &ret.Customer, &ret.Address, &ret.Reason, &ret.Zone,
			&ret.SellerID, &status, &returnedAt,
			&it.Name, &it.Code, &it.Aisle, &qty, &price,
		); err != nil {
			return nil, fmt.Errorf("scanning return: %w", err)
		}

		if it.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("reading unit price of %s: %w", id, err)
		}
		it.Quantity = int(qty)

		if n := len(out); n > 0 && out[n-1].ID.String() == id {
			out[n-1].Items = append(out[n-1].Items, it)
			continue
		}

		if ret.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("reading return id %q: %w", id, err)
		}
		ret.Status = domain.Status(status)
		y, m, d := returnedAt.Date()
		ret.ReturnedAt = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		ret.Items = []domain.Item{it}
		out = append(out, ret)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// itemArrays lays the items out column by column for unnest, positions
// starting at 1.
func itemArrays(items []domain.Item) []any {
	n := len(items)
	var (
		positions  = make([]int64, n)
		names      = make([]string, n)
		codes      = make([]string, n)
		aisles     = make([]string, n)
		quantities = make([]int64, n)
		prices     = make([]string, n)
	)
	for i, it := range items {
		positions[i] = int64(i + 1)
		names[i] = it.Name
		codes[i] = it.Code
		aisles[i] = it.Aisle
		quantities[i] = int64(it.Quantity)
		prices[i] = it.UnitPrice.String()
	}

	return []any{
		pq.Array(positions),
		pq.Array(names),
		pq.Array(codes),
		pq.Array(aisles),
		pq.Array(quantities),
		pq.Array(prices),
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
