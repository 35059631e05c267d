package app

import (
	"github.com/miguelF21/Facepay/internal/accessattempt"
	"github.com/miguelF21/Facepay/internal/address"
	"github.com/miguelF21/Facepay/internal/attendance"
	"github.com/miguelF21/Facepay/internal/auditlog"
	"github.com/miguelF21/Facepay/internal/auth"
	"github.com/miguelF21/Facepay/internal/authtoken"
	"github.com/miguelF21/Facepay/internal/biometric"
	"github.com/miguelF21/Facepay/internal/concept"
	"github.com/miguelF21/Facepay/internal/contact"
	"github.com/miguelF21/Facepay/internal/employee"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/metrics"
	"github.com/miguelF21/Facepay/internal/middleware"
	"github.com/miguelF21/Facepay/internal/payroll"
	"github.com/miguelF21/Facepay/internal/receipt"
	"github.com/miguelF21/Facepay/internal/recognition"
	"github.com/miguelF21/Facepay/internal/report"
	"github.com/miguelF21/Facepay/internal/sysconfig"
	"github.com/miguelF21/Facepay/internal/terminal"
	"github.com/miguelF21/Facepay/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Models lists every persisted type in foreign key order: a parent always
// precedes the tables that reference it.
func Models() []any {
	return []any{
		&user.User{},
		&contact.Contact{},
		&address.Address{},
		&employee.Employee{},
		&terminal.Terminal{},
		&biometric.BiometricData{},
		&accessattempt.AccessAttempt{},
		&recognition.RecognitionResult{},
		&attendance.Attendance{},
		&payroll.Payroll{},
		&concept.Concept{},
		&receipt.PayReceipt{},
		&report.Report{},
		&sysconfig.SystemConfig{},
		&auditlog.AuditLog{},
		&authtoken.AuthToken{},
		&kafka.OutboxEvent{},
	}
}

// AutoMigrate creates the schema through gorm instead of the SQL migrations.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func registerModules(api *gin.RouterGroup, deps Dependencies, m *metrics.Metrics) {
	db := deps.DB
	logger := deps.Logger

	// --- Repositories ---
	outboxRepo := kafka.NewOutboxRepository(db)
	userRepo := user.NewRepository(db)
	contactRepo := contact.NewRepository(db)
	addressRepo := address.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	terminalRepo := terminal.NewRepository(db)
	biometricRepo := biometric.NewRepository(db)
	accessAttemptRepo := accessattempt.NewRepository(db)
	recognitionRepo := recognition.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)
	conceptRepo := concept.NewRepository(db)
	receiptRepo := receipt.NewRepository(db)
	reportRepo := report.NewRepository(db)
	sysconfigRepo := sysconfig.NewRepository(db)
	auditLogRepo := auditlog.NewRepository(db)
	authTokenRepo := authtoken.NewRepository(db)
	authRepo := auth.NewRepository(db)

	// --- Services ---
	userService := user.NewServiceWithOutbox(db, userRepo, outboxRepo, logger)
	contactService := contact.NewServiceWithOutbox(db, contactRepo, outboxRepo, logger)
	addressService := address.NewServiceWithOutbox(db, addressRepo, outboxRepo, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, logger)
	terminalService := terminal.NewServiceWithOutbox(db, terminalRepo, outboxRepo, logger)
	biometricService := biometric.NewServiceWithOutbox(db, biometricRepo, outboxRepo, logger)
	accessAttemptService := accessattempt.NewServiceWithOutbox(db, accessAttemptRepo, outboxRepo, logger)
	recognitionService := recognition.NewServiceWithOutbox(db, recognitionRepo, outboxRepo, logger)
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo, logger)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo, logger)
	conceptService := concept.NewServiceWithOutbox(db, conceptRepo, outboxRepo, logger)
	receiptService := receipt.NewServiceWithOutbox(db, receiptRepo, outboxRepo, logger)
	reportService := report.NewServiceWithOutbox(db, reportRepo, outboxRepo, logger)
	sysconfigService := sysconfig.NewServiceWithOutbox(db, sysconfigRepo, outboxRepo, logger)
	auditLogService := auditlog.NewService(db, auditLogRepo, logger)
	authTokenService := authtoken.NewServiceWithOutbox(db, authTokenRepo, outboxRepo, logger)
	authService := auth.NewService(authRepo, logger)

	// --- Routes Registration ---
	auth.RegisterRoutes(api, auth.NewHandler(authService, logger), m)

	resources := api.Group("")
	if deps.Config.Auth.Required {
		resources.Use(middleware.RequireIdentity(m))
	}
	{
		user.RegisterRoutes(resources, user.NewHandler(userService, logger))
		contact.RegisterRoutes(resources, contact.NewHandler(contactService, logger))
		address.RegisterRoutes(resources, address.NewHandler(addressService, logger))
		employee.RegisterRoutes(resources, employee.NewHandler(employeeService, logger))
		terminal.RegisterRoutes(resources, terminal.NewHandler(terminalService, logger))
		biometric.RegisterRoutes(resources, biometric.NewHandler(biometricService, logger))
		accessattempt.RegisterRoutes(resources, accessattempt.NewHandler(accessAttemptService, logger))
		recognition.RegisterRoutes(resources, recognition.NewHandler(recognitionService, logger))
		attendance.RegisterRoutes(resources, attendance.NewHandler(attendanceService, logger))
		payroll.RegisterRoutes(resources, payroll.NewHandler(payrollService, logger))
		concept.RegisterRoutes(resources, concept.NewHandler(conceptService, logger))
		receipt.RegisterRoutes(resources, receipt.NewHandler(receiptService, logger))
		report.RegisterRoutes(resources, report.NewHandler(reportService, logger))
		sysconfig.RegisterRoutes(resources, sysconfig.NewHandler(sysconfigService, logger))
		auditlog.RegisterRoutes(resources, auditlog.NewHandler(auditLogService, logger))
		authtoken.RegisterRoutes(resources, authtoken.NewHandler(authTokenService, logger))
	}
}
