package queries

import "context"

// OverdueRiskThreshold: borrowers with more than this many pending
// outgoing requests are surfaced as a security signal.
const OverdueRiskThreshold = 2

type ReportReadStore interface {
	PendingCountsAbove(ctx context.Context, threshold int) ([]*OverdueRiskRow, error)
	CategoryDistribution(ctx context.Context) ([]*CategoryCount, error)
	ListingGrowth(ctx context.Context) ([]*MonthlyListingCount, error)
}

type ReportQueries interface {
	OverdueRisk(ctx context.Context) ([]*OverdueRiskRow, error)
	CategoryDistribution(ctx context.Context) ([]*CategoryCount, error)
	ListingGrowth(ctx context.Context) ([]*MonthlyListingCount, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) OverdueRisk(ctx context.Context) ([]*OverdueRiskRow, error) {
	return q.store.PendingCountsAbove(ctx, OverdueRiskThreshold)
}

func (q *reportQueriesImpl) CategoryDistribution(ctx context.Context) ([]*CategoryCount, error) {
	return q.store.CategoryDistribution(ctx)
}

func (q *reportQueriesImpl) ListingGrowth(ctx context.Context) ([]*MonthlyListingCount, error) {
	return q.store.ListingGrowth(ctx)
}
