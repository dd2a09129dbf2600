package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "unique violation",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("error creating employee: %w", &pgconn.PgError{Code: "23505"}),
			want: true,
		},
		{
			name: "foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueViolation(tt.err); got != tt.want {
				t.Errorf("IsUniqueViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	emailViolation := &pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{"matching constraint", emailViolation, "uq_employees_email", true},
		{"wrapped matching constraint", fmt.Errorf("insert: %w", emailViolation), "uq_employees_email", true},
		{"different constraint", emailViolation, "uq_employees_employee_id", false},
		{"not a unique violation", &pgconn.PgError{Code: "23503", ConstraintName: "uq_employees_email"}, "uq_employees_email", false},
		{"plain error", errors.New("boom"), "uq_employees_email", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUniqueConstraintViolation(tt.err, tt.constraint); got != tt.want {
				t.Errorf("IsUniqueConstraintViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}
