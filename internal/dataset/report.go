package dataset

import (
	"fmt"

	"github.com/takasapp/takas-admin-api/internal/models"
)

var reportStatusWeights = []weightedChoice[models.ReportStatus]{
	{Weight: 55, Value: models.ReportOpen},
	{Weight: 25, Value: models.ReportInReview},
	{Weight: 12, Value: models.ReportResolved},
	{Weight: 8, Value: models.ReportRejected},
}

// generateReports draws the target user and target product independently,
// so a report may reference both, either, or neither.
func (gen *generator) generateReports() {
	if len(gen.snap.Users) == 0 {
		return
	}

	reports := make([]models.ReportItem, 0, gen.opts.Reports)

	for i := 0; i < gen.opts.Reports; i++ {
		category := pickOne(gen.g, reportCategories)
		reporter := pickOne(gen.g, gen.snap.Users)

		var targetUserID models.ID
		if len(gen.snap.Users) > 1 && gen.g.chance(0.55) {
			targetUserID = gen.pickUserExcept(reporter.ID).ID
		}

		var targetProductID models.ID
		if len(gen.snap.Products) > 0 && gen.g.chance(0.45) {
			targetProductID = pickOne(gen.g, gen.snap.Products).ID
		}

		// Suggestions draw from their own corpus; every other category
		// shares the complaint pool.
		message := pickOne(gen.g, turkishReportMessages)
		if category == models.ReportSuggestion {
			message = pickOne(gen.g, turkishSuggestionMessages)
		}

		reports = append(reports, models.ReportItem{
			ID:              models.ID(fmt.Sprintf("r_%d", i+1)),
			Category:        category,
			Message:         message,
			CreatedAt:       gen.randomDaysAgo(0, 40),
			ReporterUserID:  reporter.ID,
			TargetUserID:    targetUserID,
			TargetProductID: targetProductID,
			Status:          weightedPick(gen.g, reportStatusWeights),
		})
	}

	gen.snap.Reports = reports
}
