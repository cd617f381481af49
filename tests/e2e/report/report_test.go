//go:build e2e

package report_test

import (
	"context"
	"testing"

	"lendhub/internal/infra"
	"lendhub/internal/infra/readstore"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
	"lendhub/tests/common/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"lendhub/tests/e2e"
)

type ReportSuite struct {
	suite.Suite
	engine  *e2e.Engine
	reports queries.ReportQueries
}

func (s *ReportSuite) SetupSuite() {
	s.engine = e2e.SetupEngine(s.T())
	var db infra.DBTX = s.engine.Pool
	s.reports = queries.NewReportQueries(readstore.NewReportReadStore(db))
}

func (s *ReportSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.engine.Pool))
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportSuite))
}

func (s *ReportSuite) TestOverdueRiskFlagsHeavyBorrowers() {
	t := s.T()
	ctx := context.Background()

	lender := "lender@example.com"
	heavy := "heavy@example.com"
	light := "light@example.com"
	dbtest.CreateTestUser(t, s.engine.Pool, lender, "Sam Lender", "member")
	dbtest.CreateTestUser(t, s.engine.Pool, heavy, "Heavy", "member")
	dbtest.CreateTestUser(t, s.engine.Pool, light, "Light", "member")

	// threshold is 2: three pending requests flags, one does not
	for range 3 {
		itemID := dbtest.CreateTestItem(t, s.engine.Pool, lender, "Item", "Tools")
		_, err := s.engine.Requests.Create(ctx, commands.CreateRequestParams{
			ItemID: itemID, BorrowerEmail: heavy,
		})
		require.NoError(t, err)
	}
	itemID := dbtest.CreateTestItem(t, s.engine.Pool, lender, "Item", "Tools")
	_, err := s.engine.Requests.Create(ctx, commands.CreateRequestParams{
		ItemID: itemID, BorrowerEmail: light,
	})
	require.NoError(t, err)

	rows, err := s.reports.OverdueRisk(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, heavy, rows[0].BorrowerEmail)
	assert.Equal(t, 3, rows[0].PendingCount)
}

func (s *ReportSuite) TestCategoryDistribution() {
	t := s.T()
	ctx := context.Background()

	lender := "lender@example.com"
	dbtest.CreateTestUser(t, s.engine.Pool, lender, "Sam Lender", "member")
	dbtest.CreateTestItem(t, s.engine.Pool, lender, "Drill", "Tools")
	dbtest.CreateTestItem(t, s.engine.Pool, lender, "Saw", "Tools")
	dbtest.CreateTestItem(t, s.engine.Pool, lender, "Novel", "Books")

	rows, err := s.reports.CategoryDistribution(ctx)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	assert.Equal(t, 2, counts["Tools"])
	assert.Equal(t, 1, counts["Books"])
}
