package response

import (
	"time"

	"lendhub/internal/usecase/queries"
)

type OverdueRiskResponse struct {
	BorrowerEmail string `json:"borrowerEmail"`
	PendingCount  int    `json:"pendingCount"`
}

type CategoryCountResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type ListingGrowthResponse struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

func FromOverdueRiskRows(rows []*queries.OverdueRiskRow) []*OverdueRiskResponse {
	result := make([]*OverdueRiskResponse, len(rows))
	for i, row := range rows {
		result[i] = &OverdueRiskResponse{BorrowerEmail: row.BorrowerEmail, PendingCount: row.PendingCount}
	}
	return result
}

func FromCategoryCounts(rows []*queries.CategoryCount) []*CategoryCountResponse {
	result := make([]*CategoryCountResponse, len(rows))
	for i, row := range rows {
		result[i] = &CategoryCountResponse{Category: row.Category, Count: row.Count}
	}
	return result
}

func FromListingGrowth(rows []*queries.MonthlyListingCount) []*ListingGrowthResponse {
	result := make([]*ListingGrowthResponse, len(rows))
	for i, row := range rows {
		result[i] = &ListingGrowthResponse{Month: row.Month, Count: row.Count}
	}
	return result
}
