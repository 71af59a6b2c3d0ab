package cli

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/activity"
	appconfig "github.com/kubera-apps/canoe-capital-activity-export/internal/config"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderActivityPDF generates a PDF capital-activity statement from the
// sorted records and saves it to the given path.
func renderActivityPDF(orgName string, records []activity.Record, dateAfter time.Time, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, orgName, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Capital activity after %s", dateAfter.Format(appconfig.DateLayout)), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Column header row
	m.AddRow(7,
		text.NewCol(4, "Client", props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}),
		text.NewCol(3, "Asset", props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}),
		text.NewCol(1, "Date", props.Text{Style: fontstyle.Bold, Size: 9, Color: &pdfHeaderColor}),
		text.NewCol(2, "Cash In", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &pdfHeaderColor}),
		text.NewCol(2, "Cash Out", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: &pdfHeaderColor}),
	)
	m.AddRow(2, line.NewCol(12, props.Line{Color: &pdfLineColor}))

	var totalIn, totalOut float64
	for _, r := range records {
		totalIn += r.CashIn
		totalOut += r.CashOut
		m.AddRow(6,
			text.NewCol(4, r.ClientNameOrEmail, props.Text{Size: 8}),
			text.NewCol(3, r.AssetName, props.Text{Size: 8}),
			text.NewCol(1, r.Date, props.Text{Size: 8}),
			text.NewCol(2, activity.FormatAmount(r.CashIn), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, activity.FormatAmount(r.CashOut), props.Text{Size: 8, Align: align.Right}),
		)
	}

	// Totals footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(8, "Total", props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(2, activity.FormatAmount(totalIn), props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(2, activity.FormatAmount(totalOut), props.Text{
			Style: fontstyle.Bold,
			Size:  10,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}
