package activity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/canoe"
)

func callDoc(name, dueDate, amount, entity, fundName string) canoe.Document {
	return canoe.Document{
		Name:         name,
		DocumentType: canoe.TypeCapitalCall,
		Allocations: []canoe.Allocation{{
			ValidatedData: canoe.ValidatedData{
				DueDate:     dueDate,
				CapitalCall: json.Number(amount),
				Entity:      entity,
				FundName:    fundName,
			},
		}},
	}
}

func distributionDoc(name, distDate, amount, entity, fundName string) canoe.Document {
	return canoe.Document{
		Name:         name,
		DocumentType: canoe.TypeCapitalDistribution,
		Allocations: []canoe.Allocation{{
			ValidatedData: canoe.ValidatedData{
				DistributionDate: distDate,
				Distribution:     json.Number(amount),
				Entity:           entity,
				FundName:         fundName,
			},
		}},
	}
}

func cutoff(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNormalizeCall(t *testing.T) {
	docs := []canoe.Document{callDoc("call-1.pdf", "2024-03-01", "5000", "Acme LP", "Fund I")}

	records := Normalize(docs, KindCall, cutoff("2000-01-01"), nil)

	require.Len(t, records, 1)
	assert.Equal(t, Record{
		ClientNameOrEmail: "Acme LP",
		AssetName:         "Fund I",
		Date:              "2024-03-01",
		CashIn:            5000,
		CashOut:           0,
	}, records[0])
}

func TestNormalizeDistribution(t *testing.T) {
	docs := []canoe.Document{distributionDoc("dist-1.pdf", "2024-02-10", "1200.50", "Beta LP", "Fund II")}

	records := Normalize(docs, KindDistribution, cutoff("2000-01-01"), nil)

	require.Len(t, records, 1)
	assert.Equal(t, "2024-02-10", records[0].Date)
	assert.Equal(t, 1200.50, records[0].CashOut)
	assert.Zero(t, records[0].CashIn)
}

func TestNormalizeMutualExclusivity(t *testing.T) {
	calls := Normalize([]canoe.Document{callDoc("c.pdf", "2024-03-01", "5000", "A", "F")}, KindCall, cutoff("2000-01-01"), nil)
	dists := Normalize([]canoe.Document{distributionDoc("d.pdf", "2024-03-01", "900", "A", "F")}, KindDistribution, cutoff("2000-01-01"), nil)

	for _, r := range append(calls, dists...) {
		inSet := r.CashIn != 0
		outSet := r.CashOut != 0
		assert.True(t, inSet != outSet, "exactly one of cashIn/cashOut must be non-zero: %+v", r)
	}
}

func TestNormalizeBelowThresholdExcluded(t *testing.T) {
	docs := []canoe.Document{callDoc("call-1.pdf", "2024-03-01", "5000", "Acme LP", "Fund I")}

	records := Normalize(docs, KindCall, cutoff("2024-06-01"), nil)

	assert.Empty(t, records)
}

func TestNormalizeThresholdIsStrict(t *testing.T) {
	docs := []canoe.Document{callDoc("call-1.pdf", "2024-03-01", "5000", "Acme LP", "Fund I")}

	// A record dated exactly on the cutoff is not included.
	records := Normalize(docs, KindCall, cutoff("2024-03-01"), nil)
	assert.Empty(t, records)

	records = Normalize(docs, KindCall, cutoff("2024-02-29"), nil)
	assert.Len(t, records, 1)
}

func TestNormalizeMissingFieldsDefault(t *testing.T) {
	docs := []canoe.Document{{
		DocumentType: canoe.TypeCapitalCall,
		Allocations: []canoe.Allocation{{
			ValidatedData: canoe.ValidatedData{DueDate: "2024-03-01"},
		}},
	}}

	records := Normalize(docs, KindCall, cutoff("2000-01-01"), nil)

	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].ClientNameOrEmail)
	assert.Equal(t, "", records[0].AssetName)
	assert.Zero(t, records[0].CashIn)
}

func TestNormalizeUnparsableDateSkipsWithWarning(t *testing.T) {
	docs := []canoe.Document{
		callDoc("bad.pdf", "", "5000", "Acme LP", "Fund I"),
		callDoc("good.pdf", "2024-03-01", "100", "Acme LP", "Fund I"),
	}

	var warned []*RecordParseError
	records := Normalize(docs, KindCall, cutoff("2000-01-01"), func(e *RecordParseError) {
		warned = append(warned, e)
	})

	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-01", records[0].Date)

	require.Len(t, warned, 1)
	assert.Equal(t, "bad.pdf", warned[0].DocumentName)
	assert.Contains(t, warned[0].Error(), "unparsable")
}

func TestNormalizeNoAllocationsSkipsWithWarning(t *testing.T) {
	docs := []canoe.Document{{Name: "empty.pdf", DocumentType: canoe.TypeCapitalCall}}

	var warned []*RecordParseError
	records := Normalize(docs, KindCall, cutoff("2000-01-01"), func(e *RecordParseError) {
		warned = append(warned, e)
	})

	assert.Empty(t, records)
	require.Len(t, warned, 1)
	assert.Contains(t, warned[0].Error(), "no allocations")
}

func TestNormalizeNilWarnDoesNotPanic(t *testing.T) {
	docs := []canoe.Document{callDoc("bad.pdf", "not-a-date", "5000", "A", "F")}

	assert.NotPanics(t, func() {
		Normalize(docs, KindCall, cutoff("2000-01-01"), nil)
	})
}
