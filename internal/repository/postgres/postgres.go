package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RentalRepository
	repository.VehicleRepository
	repository.PaymentRepository
	repository.CustomerRepository
	repository.HistoryRepository
	repository.ReportRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		RentalRepository:   NewRentalRepository(db),
		VehicleRepository:  NewVehicleRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		HistoryRepository:  NewHistoryRepository(db),
		ReportRepository:   NewReportRepository(db),
	}
}
