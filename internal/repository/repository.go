package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/steelbridge/fabshop/internal/apperr"
	"gorm.io/gorm"
)

// Repositories is the full set of data-access objects. Each repository is
// stateless over a shared *gorm.DB; concurrent use is safe at this level.
type Repositories struct {
	Customer    *CustomerRepository
	Employee    *EmployeeRepository
	Job         *JobRepository
	Invoice     *InvoiceRepository
	Material    *MaterialRepository
	JobMaterial *JobMaterialRepository
	Vendor      *VendorRepository
	Purchase    *PurchaseRepository
	Photo       *PhotoRepository
	WorkLog     *WorkLogRepository
	Note        *NoteRepository
	Shipment    *ShipmentRepository
	Report      *ReportRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customer:    NewCustomerRepository(db),
		Employee:    NewEmployeeRepository(db),
		Job:         NewJobRepository(db),
		Invoice:     NewInvoiceRepository(db),
		Material:    NewMaterialRepository(db),
		JobMaterial: NewJobMaterialRepository(db),
		Vendor:      NewVendorRepository(db),
		Purchase:    NewPurchaseRepository(db),
		Photo:       NewPhotoRepository(db),
		WorkLog:     NewWorkLogRepository(db),
		Note:        NewNoteRepository(db),
		Shipment:    NewShipmentRepository(db),
		Report:      NewReportRepository(db),
	}
}

// storeErr maps a raw store error onto the apperr taxonomy, keeping the
// original text for the logs while callers branch on the sentinel.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	case isConstraintErr(err):
		return fmt.Errorf("%s: %v: %w", op, err, apperr.ErrConstraint)
	default:
		return fmt.Errorf("%s: %v: %w", op, err, apperr.ErrUnavailable)
	}
}

// isConstraintErr matches referential-integrity rejections across the
// dialects we run on (postgres 23503, sqlite FOREIGN KEY constraint).
func isConstraintErr(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key") ||
		strings.Contains(msg, "constraint") ||
		strings.Contains(msg, "23503")
}

// likePattern wraps a search term for a case-insensitive contains match.
func likePattern(term string) string {
	return "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
}
