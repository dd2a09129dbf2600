package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ecetin/hrmslite/internal/app/models"
	appRepos "github.com/ecetin/hrmslite/internal/app/repositories"
	"github.com/ecetin/hrmslite/internal/pkg/helpers"
)

// demoEmployees are inserted when demo seeding is enabled and the directory
// is still empty
var demoEmployees = []appModels.Employee{
	{EmployeeID: "EMP-001", FullName: "Ayse Yilmaz", Email: "ayse.yilmaz@example.com", Department: "Engineering"},
	{EmployeeID: "EMP-002", FullName: "Mehmet Demir", Email: "mehmet.demir@example.com", Department: "Engineering"},
	{EmployeeID: "EMP-003", FullName: "Elif Kaya", Email: "elif.kaya@example.com", Department: "Human Resources"},
	{EmployeeID: "EMP-004", FullName: "Can Arslan", Email: "can.arslan@example.com", Department: "Finance"},
}

// CreateDemoData inserts a handful of employees with today's attendance so a
// fresh install has something to show on the dashboard. No-op when the
// directory already has employees.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	employeeRepo := appRepos.NewEmployeeRepository(dbPool)
	attendanceRepo := appRepos.NewAttendanceRepository(dbPool)

	count, err := employeeRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("employees", count).Msg("Employee directory not empty, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo employees and attendance...")
	today := helpers.DateOnly(time.Now())

	for i := range demoEmployees {
		employee := demoEmployees[i]
		if err := employeeRepo.Create(ctx, &employee); err != nil {
			lgr.Error().Err(err).Str("employeeId", employee.EmployeeID).Msg("Error creating demo employee")
			continue
		}

		status := appModels.StatusPresent
		if i%4 == 3 {
			status = appModels.StatusAbsent
		}
		record := &appModels.Attendance{
			EmployeeID: employee.EmployeeID,
			Date:       today,
			Status:     status,
		}
		if err := attendanceRepo.Create(ctx, record); err != nil {
			lgr.Error().Err(err).Str("employeeId", employee.EmployeeID).Msg("Error creating demo attendance")
		}
	}

	return nil
}
