package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"carrental-backend/internal/config"
	"carrental-backend/internal/domain"
)

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendSettlementReceipt(ctx context.Context, email, name string, plate string, summary *domain.SettlementSummary) error {
	args := m.Called(ctx, email, name, plate, summary)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, email, name, plate string, expectedReturn time.Time) error {
	args := m.Called(ctx, email, name, plate, expectedReturn)
	return args.Error(0)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestJobRunner_OverdueRentals(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	jr := NewJobRunner(db, &Services{}, &config.Config{})
	ctx := context.Background()
	today := date(2026, 3, 10)

	t.Run("IncludesWalkInRentals", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "plate", "customer_id", "expected_return_date"}).
			AddRow(1, "AAA1111", "cust-1", date(2026, 3, 7)).
			AddRow(2, "BBB2222", nil, date(2026, 3, 8))

		dbMock.ExpectQuery("SELECT r.id, r.plate, r.customer_id").
			WithArgs("2026-03-10").
			WillReturnRows(rows)

		overdue, err := jr.overdueRentals(ctx, today)
		assert.NoError(t, err)
		assert.Len(t, overdue, 2)
		assert.Equal(t, "cust-1", overdue[0].CustomerID)
		assert.Equal(t, "BBB2222", overdue[1].Plate)
		assert.Equal(t, "", overdue[1].CustomerID)
	})

	t.Run("QueryFailure", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT r.id, r.plate, r.customer_id").
			WillReturnError(errors.New("db down"))

		_, err := jr.overdueRentals(ctx, today)
		assert.Error(t, err)
	})

	t.Run("JobSurvivesFailure", func(t *testing.T) {
		dbMock.ExpectQuery("SELECT r.id, r.plate, r.customer_id").
			WillReturnError(errors.New("db down"))

		assert.NotPanics(t, jr.MarkOverdueRentals)
	})
}

func TestJobRunner_SendReturnReminders(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	emailSvc := new(MockEmailService)
	jr := NewJobRunner(db, &Services{Email: emailSvc}, &config.Config{})

	dueDate := date(2026, 3, 11)
	rows := sqlmock.NewRows([]string{"plate", "expected_return_date", "name", "email"}).
		AddRow("AAA1111", dueDate, "Ana", "ana@example.com").
		AddRow("BBB2222", dueDate, "Bruno", "bruno@example.com")

	dbMock.ExpectQuery("SELECT r.plate, r.expected_return_date").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	emailSvc.On("SendReturnReminder", mock.Anything, "ana@example.com", "Ana", "AAA1111", dueDate).
		Return(nil)
	// One failed send must not stop the sweep.
	emailSvc.On("SendReturnReminder", mock.Anything, "bruno@example.com", "Bruno", "BBB2222", dueDate).
		Return(errors.New("sendgrid down"))

	jr.SendReturnReminders()

	emailSvc.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}
