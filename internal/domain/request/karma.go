package request

import (
	"fmt"
	"time"
)

const (
	// BaseBorrowerKarma is awarded for an on-time return.
	BaseBorrowerKarma = 10
	// MinBorrowerKarma is the floor even for arbitrarily late returns.
	MinBorrowerKarma = 2
	// LatePenaltyPerHour is deducted per full hour past the due time.
	LatePenaltyPerHour = 2
	// LenderKarma is the flat award for the lender, independent of lateness.
	LenderKarma = 15

	OnTimeLabel = "On Time"
)

// Settlement is the outcome of closing out a borrow request.
type Settlement struct {
	Label         string
	BorrowerKarma int
}

// Settle computes the borrower's reward from the due and completion
// instants. Completion at or before the due time earns the full base
// reward; any lateness, however small, counts as at least one hour.
func Settle(due, completed time.Time) Settlement {
	if !completed.After(due) {
		return Settlement{Label: OnTimeLabel, BorrowerKarma: BaseBorrowerKarma}
	}

	elapsed := completed.Sub(due)

	hoursLate := int(elapsed.Hours())
	if hoursLate < 1 {
		hoursLate = 1
	}
	daysLate := int(elapsed.Hours() / 24)

	label := fmt.Sprintf("%d hours late", hoursLate)
	if daysLate > 0 {
		label = fmt.Sprintf("%d days late", daysLate)
	}

	karma := BaseBorrowerKarma - LatePenaltyPerHour*hoursLate
	if karma < MinBorrowerKarma {
		karma = MinBorrowerKarma
	}

	return Settlement{Label: label, BorrowerKarma: karma}
}
