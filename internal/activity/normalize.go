package activity

import (
	"fmt"
	"time"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/canoe"
)

const dateLayout = "2006-01-02"

// RecordParseError reports a document whose validated data could not be
// normalized. These are per-record: the document is skipped and the rest of
// the export proceeds.
type RecordParseError struct {
	DocumentName string
	Reason       string
}

func (e *RecordParseError) Error() string {
	name := e.DocumentName
	if name == "" {
		name = "(unnamed document)"
	}
	return fmt.Sprintf("skipping document '%s': %s", name, e.Reason)
}

// Normalize turns documents of one kind into records, keeping only activity
// strictly after dateAfter. A document with no allocations or an unparsable
// activity date is skipped and reported through warn rather than failing the
// run; one malformed notice must not erase an otherwise valid export.
func Normalize(docs []canoe.Document, kind Kind, dateAfter time.Time, warn func(*RecordParseError)) []Record {
	if warn == nil {
		warn = func(*RecordParseError) {}
	}

	var records []Record
	for _, doc := range docs {
		if len(doc.Allocations) == 0 {
			warn(&RecordParseError{DocumentName: doc.Name, Reason: "document has no allocations"})
			continue
		}
		vd := doc.Allocations[0].ValidatedData

		var date string
		var cashIn, cashOut float64
		if kind == KindCall {
			date = vd.DueDate
			cashIn, _ = vd.CapitalCall.Float64()
		} else {
			date = vd.DistributionDate
			cashOut, _ = vd.Distribution.Float64()
		}

		activityDate, err := time.Parse(dateLayout, date)
		if err != nil {
			warn(&RecordParseError{
				DocumentName: doc.Name,
				Reason:       fmt.Sprintf("unparsable %s date %q", kind, date),
			})
			continue
		}
		if !activityDate.After(dateAfter) {
			continue
		}

		records = append(records, Record{
			ClientNameOrEmail: vd.Entity,
			AssetName:         vd.FundName,
			Date:              date,
			CashIn:            cashIn,
			CashOut:           cashOut,
		})
	}
	return records
}
