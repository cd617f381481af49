package readstore

import (
	"context"

	"lendhub/internal/infra"
	"lendhub/internal/usecase/queries"
)

type ReportReadStore struct {
	db infra.DBTX
}

func NewReportReadStore(db infra.DBTX) *ReportReadStore {
	return &ReportReadStore{db: db}
}

func (r *ReportReadStore) PendingCountsAbove(ctx context.Context, threshold int) ([]*queries.OverdueRiskRow, error) {
	const q = `
		SELECT borrower_email, COUNT(*)
		FROM borrow_requests
		WHERE status = 'pending'
		GROUP BY borrower_email
		HAVING COUNT(*) > $1
		ORDER BY COUNT(*) DESC`

	rows, err := r.db.Query(ctx, q, threshold)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute overdue risk report", err)
	}
	defer rows.Close()

	result := make([]*queries.OverdueRiskRow, 0)
	for rows.Next() {
		var row queries.OverdueRiskRow
		if err := rows.Scan(&row.BorrowerEmail, &row.PendingCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue risk row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overdue risk rows", err)
	}
	return result, nil
}

func (r *ReportReadStore) CategoryDistribution(ctx context.Context) ([]*queries.CategoryCount, error) {
	const q = `
		SELECT category, COUNT(*)
		FROM items
		GROUP BY category
		ORDER BY COUNT(*) DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute category distribution", err)
	}
	defer rows.Close()

	result := make([]*queries.CategoryCount, 0)
	for rows.Next() {
		var row queries.CategoryCount
		if err := rows.Scan(&row.Category, &row.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category rows", err)
	}
	return result, nil
}

func (r *ReportReadStore) ListingGrowth(ctx context.Context) ([]*queries.MonthlyListingCount, error) {
	const q = `
		SELECT date_trunc('month', created_at) AS month, COUNT(*)
		FROM items
		GROUP BY month
		ORDER BY month`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute listing growth", err)
	}
	defer rows.Close()

	result := make([]*queries.MonthlyListingCount, 0)
	for rows.Next() {
		var row queries.MonthlyListingCount
		if err := rows.Scan(&row.Month, &row.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing growth row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing growth rows", err)
	}
	return result, nil
}
