package report

import (
	"context"
	"time"

	"go-attendance/internal/employee"
	"go-attendance/internal/holiday"
	"go-attendance/internal/leavepolicy"
	"go-attendance/internal/leaverecord"
	"go-attendance/internal/punch"
	"go-attendance/internal/shift"
	"go-attendance/internal/tenant"
	"go-attendance/internal/weekoff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock

// SnapshotRepository loads everything one reconciliation run needs in
// company-scoped reads. The engine itself never touches the database.
type SnapshotRepository interface {
	LoadSnapshot(ctx context.Context, companyID uuid.UUID, year int, month time.Month) (Snapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) LoadSnapshot(ctx context.Context, companyID uuid.UUID, year int, month time.Month) (Snapshot, error) {
	snap := Snapshot{CompanyID: companyID, Year: year, Month: month}
	scoped := func() *gorm.DB {
		return r.db.WithContext(ctx).Scopes(tenant.Scope(companyID.String()))
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	var employees []employee.Employee
	if err := scoped().Order("code ASC").Find(&employees).Error; err != nil {
		return Snapshot{}, err
	}
	for _, e := range employees {
		snap.Roster = append(snap.Roster, RosterEntry{
			EmployeeID:  e.ID,
			Code:        e.Code,
			FullName:    e.FullName,
			Department:  e.Department,
			BasicSalary: e.BasicSalary,
		})
	}

	var weekOffGroups []weekoff.Group
	if err := scoped().Preload("Members").Find(&weekOffGroups).Error; err != nil {
		return Snapshot{}, err
	}
	for _, g := range weekOffGroups {
		policy := WeekOffPolicy{GroupID: g.ID, Weekdays: g.Days}
		for _, m := range g.Members {
			policy.Members = append(policy.Members, m.EmployeeID)
		}
		snap.WeekOffPolicies = append(snap.WeekOffPolicies, policy)
	}

	var holidayGroups []holiday.Group
	if err := scoped().Preload("Entries").Preload("Members").Find(&holidayGroups).Error; err != nil {
		return Snapshot{}, err
	}
	for _, g := range holidayGroups {
		policy := HolidayPolicy{GroupID: g.ID}
		for _, entry := range g.Entries {
			policy.Dates = append(policy.Dates, HolidayDate{Date: entry.HolidayDate, Label: entry.Label})
		}
		for _, m := range g.Members {
			policy.Members = append(policy.Members, m.EmployeeID)
		}
		snap.HolidayPolicies = append(snap.HolidayPolicies, policy)
	}

	var leaveGroups []leavepolicy.Group
	if err := scoped().Preload("Members").Find(&leaveGroups).Error; err != nil {
		return Snapshot{}, err
	}
	for _, g := range leaveGroups {
		policy := LeavePolicy{GroupID: g.ID, MonthlyAllowance: g.MonthlyAllowance}
		for _, m := range g.Members {
			policy.Members = append(policy.Members, m.EmployeeID)
		}
		snap.LeavePolicies = append(snap.LeavePolicies, policy)
	}

	var shiftGroups []shift.Group
	if err := scoped().Preload("Members").Find(&shiftGroups).Error; err != nil {
		return Snapshot{}, err
	}
	for _, g := range shiftGroups {
		policy := ShiftPolicy{GroupID: g.ID, StartMinute: g.StartMinute, EndMinute: g.EndMinute}
		for _, m := range g.Members {
			policy.Members = append(policy.Members, m.EmployeeID)
		}
		snap.ShiftPolicies = append(snap.ShiftPolicies, policy)
	}

	var rotations []shift.Rotation
	if err := scoped().
		Where("start_date <= ? AND end_date >= ?", to, from).
		Find(&rotations).Error; err != nil {
		return Snapshot{}, err
	}
	for _, rot := range rotations {
		snap.ShiftOverrides = append(snap.ShiftOverrides, ShiftOverride{
			RotationID:   rot.ID,
			EmployeeID:   rot.EmployeeID,
			ShiftGroupID: rot.ShiftGroupID,
			StartDate:    rot.StartDate,
			EndDate:      rot.EndDate,
		})
	}

	var leaveRecords []leaverecord.LeaveRecord
	if err := scoped().
		Where("leave_date >= ? AND leave_date <= ?", from, to).
		Order("leave_date ASC, employee_id ASC").
		Find(&leaveRecords).Error; err != nil {
		return Snapshot{}, err
	}
	for _, rec := range leaveRecords {
		snap.LeaveEntries = append(snap.LeaveEntries, LeaveEntry{
			RecordID:             rec.ID,
			EmployeeID:           rec.EmployeeID,
			Date:                 rec.LeaveDate,
			SubstituteEmployeeID: rec.SubstituteEmployeeID,
		})
	}

	var punches []punch.ProcessedPunch
	if err := scoped().
		Where("punch_date >= ? AND punch_date <= ?", from, to).
		Order("punch_date ASC, employee_id ASC").
		Find(&punches).Error; err != nil {
		return Snapshot{}, err
	}
	for _, p := range punches {
		snap.Punches = append(snap.Punches, PunchEntry{
			EmployeeID: p.EmployeeID,
			Date:       p.PunchDate,
			PunchIn:    p.PunchIn,
			PunchOut:   p.PunchOut,
			Status:     p.Status,
		})
	}

	return snap, nil
}
