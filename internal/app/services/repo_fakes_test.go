package services

import (
	"context"
	"time"

	"github.com/ecetin/hrmslite/internal/app/models"
	"github.com/ecetin/hrmslite/internal/app/repositories"
)

// In-memory repository fakes. They mirror the contract of the pgx
// implementations: lookups return (nil, nil) when nothing matches, and
// missing rows on delete/update surface the repository sentinels.

type fakeEmployeeRepo struct {
	employees []*models.Employee
	nextID    int64

	// createErr, when set, is returned by Create instead of inserting.
	// Simulates store-level failures such as constraint violations.
	createErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{nextID: 1}
}

func (r *fakeEmployeeRepo) GetAll(_ context.Context) ([]*models.Employee, error) {
	out := make([]*models.Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

func (r *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *models.Employee) error {
	if r.createErr != nil {
		return r.createErr
	}
	employee.ID = r.nextID
	r.nextID++
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	r.employees = append(r.employees, employee)
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) error {
	for i, e := range r.employees {
		if e.EmployeeID == employeeID {
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return nil
		}
	}
	return repositories.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.employees)), nil
}

type fakeAttendanceRepo struct {
	records []*models.Attendance
	nextID  int64

	// createErrFor maps employee IDs to errors returned by Create for them
	createErrFor map[string]error
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{nextID: 1, createErrFor: make(map[string]error)}
}

func matchesFilter(a *models.Attendance, filter models.AttendanceFilter) bool {
	if len(filter.EmployeeIDs) > 0 {
		found := false
		for _, id := range filter.EmployeeIDs {
			if a.EmployeeID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.DateFrom != nil && a.Date.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && a.Date.After(*filter.DateTo) {
		return false
	}
	if filter.Status != nil && a.Status != *filter.Status {
		return false
	}
	return true
}

func (r *fakeAttendanceRepo) GetAll(_ context.Context, filter models.AttendanceFilter) ([]*models.Attendance, error) {
	out := make([]*models.Attendance, 0)
	for _, a := range r.records {
		if matchesFilter(a, filter) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetSummary(_ context.Context, filter models.AttendanceFilter) (models.AttendanceSummary, error) {
	var summary models.AttendanceSummary
	for _, a := range r.records {
		if !matchesFilter(a, filter) {
			continue
		}
		switch a.Status {
		case models.StatusPresent:
			summary.Present++
		case models.StatusAbsent:
			summary.Absent++
		}
	}
	return summary, nil
}

func (r *fakeAttendanceRepo) GetByID(_ context.Context, id int64) (*models.Attendance, error) {
	for _, a := range r.records {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeID(_ context.Context, employeeID string) ([]*models.Attendance, error) {
	out := make([]*models.Attendance, 0)
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*models.Attendance, error) {
	for _, a := range r.records {
		if a.EmployeeID == employeeID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Create(_ context.Context, attendance *models.Attendance) error {
	if err := r.createErrFor[attendance.EmployeeID]; err != nil {
		return err
	}
	attendance.ID = r.nextID
	r.nextID++
	attendance.CreatedAt = time.Now()
	r.records = append(r.records, attendance)
	return nil
}

func (r *fakeAttendanceRepo) UpdateStatus(_ context.Context, id int64, status models.AttendanceStatus) (*models.Attendance, error) {
	for _, a := range r.records {
		if a.ID == id {
			a.Status = status
			updated := *a
			updated.EmployeeName = nil
			return &updated, nil
		}
	}
	return nil, repositories.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) CountByDateAndStatus(_ context.Context, date time.Time, status models.AttendanceStatus) (int64, error) {
	var count int64
	for _, a := range r.records {
		if a.Date.Equal(date) && a.Status == status {
			count++
		}
	}
	return count, nil
}
