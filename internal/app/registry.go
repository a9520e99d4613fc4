package app

import (
	"database/sql"

	"go-attendance/internal/employee"
	"go-attendance/internal/holiday"
	"go-attendance/internal/leavepolicy"
	"go-attendance/internal/leaverecord"
	"go-attendance/internal/ledger"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/punch"
	"go-attendance/internal/report"
	"go-attendance/internal/shift"
	"go-attendance/internal/weekoff"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// registerModules wires every feature: repo → service → handler →
// routes, all under /api/v1.
func registerModules(router *gin.Engine, gormDB *gorm.DB, sqlDB *sql.DB, rdb *redis.Client) {
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID(), middleware.RateLimitByIP(50, 100))

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	employeeRepo := employee.NewRepository(gormDB)
	employeeService := employee.NewService(sqlDB, employeeRepo)
	employee.RegisterRoutes(api, employee.NewHandler(employeeService))

	weekOffRepo := weekoff.NewRepository(gormDB)
	weekOffService := weekoff.NewService(sqlDB, weekOffRepo)
	weekoff.RegisterRoutes(api, weekoff.NewHandler(weekOffService))

	holidayRepo := holiday.NewRepository(gormDB)
	holidayService := holiday.NewService(sqlDB, holidayRepo)
	holiday.RegisterRoutes(api, holiday.NewHandler(holidayService))

	leavePolicyRepo := leavepolicy.NewRepository(gormDB)
	leavePolicyService := leavepolicy.NewService(sqlDB, leavePolicyRepo)
	leavepolicy.RegisterRoutes(api, leavepolicy.NewHandler(leavePolicyService))

	shiftRepo := shift.NewRepository(gormDB)
	shiftService := shift.NewService(sqlDB, shiftRepo)
	shift.RegisterRoutes(api, shift.NewHandler(shiftService))

	leaveRecordRepo := leaverecord.NewRepository(gormDB)
	leaveRecordService := leaverecord.NewService(sqlDB, leaveRecordRepo, employeeRepo)
	leaverecord.RegisterRoutes(api, leaverecord.NewHandler(leaveRecordService))

	punchRepo := punch.NewRepository(gormDB)
	punchService := punch.NewService(sqlDB, punchRepo, employeeRepo)
	punch.RegisterRoutes(api, punch.NewHandler(punchService))

	snapshotRepo := report.NewSnapshotRepository(gormDB)
	reportService := report.NewService(sqlDB, snapshotRepo, outboxRepo)
	report.RegisterRoutes(api, report.NewHandler(reportService))

	ledgerRepo := ledger.NewRepository(sqlDB)
	ledgerService := ledger.NewService(sqlDB, ledgerRepo, employeeRepo, outboxRepo)
	ledger.RegisterRoutes(api, ledger.NewHandler(ledgerService, rdb), rdb)
}
