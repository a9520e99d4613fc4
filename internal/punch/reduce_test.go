package punch

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func scanAt(employeeID string, hour, minute int) rawScan {
	return rawScan{
		EmployeeID: employeeID,
		ScannedAt:  time.Date(2026, time.September, 14, hour, minute, 0, 0, time.UTC),
	}
}

func TestReduceScans_EarliestInLatestOut(t *testing.T) {
	employeeID := uuid.NewString()
	days := reduceScans([]rawScan{
		scanAt(employeeID, 12, 30),
		scanAt(employeeID, 8, 55),
		scanAt(employeeID, 18, 5),
		scanAt(employeeID, 13, 1),
	})

	assert.Len(t, days, 1)
	d := days[0]
	assert.Equal(t, StatusPresent, d.Status)
	assert.Equal(t, "08:55", d.PunchIn.Format("15:04"))
	assert.NotNil(t, d.PunchOut)
	assert.Equal(t, "18:05", d.PunchOut.Format("15:04"))
}

func TestReduceScans_SingleScanIsMissedPunchOut(t *testing.T) {
	employeeID := uuid.NewString()
	days := reduceScans([]rawScan{scanAt(employeeID, 9, 2)})

	assert.Len(t, days, 1)
	assert.Equal(t, StatusMissedPunchOut, days[0].Status)
	assert.Nil(t, days[0].PunchOut)
}

func TestReduceScans_DuplicateInstantsCollapse(t *testing.T) {
	employeeID := uuid.NewString()
	days := reduceScans([]rawScan{
		scanAt(employeeID, 9, 0),
		scanAt(employeeID, 9, 0),
		scanAt(employeeID, 9, 0),
	})

	assert.Len(t, days, 1)
	assert.Equal(t, StatusMissedPunchOut, days[0].Status)
}

func TestReduceScans_GroupsByEmployeeAndDate(t *testing.T) {
	a := uuid.NewString()
	b := uuid.NewString()

	nextDay := rawScan{
		EmployeeID: a,
		ScannedAt:  time.Date(2026, time.September, 15, 9, 0, 0, 0, time.UTC),
	}
	days := reduceScans([]rawScan{
		scanAt(a, 9, 0),
		scanAt(a, 17, 30),
		scanAt(b, 8, 45),
		nextDay,
	})

	assert.Len(t, days, 3)
	// Deterministic ordering: date first, then employee id.
	assert.Equal(t, "2026-09-14", days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-09-14", days[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-09-15", days[2].Date.Format("2006-01-02"))
	assert.True(t, days[0].EmployeeID < days[1].EmployeeID)
}

func TestReduceScans_NoScansNoRows(t *testing.T) {
	assert.Empty(t, reduceScans(nil))
}
