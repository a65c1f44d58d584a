package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/models"
)

// InvoiceRepository is the gorm-backed persistence gateway for invoices.
// Values are always bound through gorm placeholders, never concatenated.
type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert appends a new invoice row with a generated id. The insert is a
// single statement: it succeeds or fails atomically.
func (r *InvoiceRepository) Insert(ctx context.Context, customerID string, amountCents int64, status string, date time.Time) (*models.Invoice, error) {
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id %q: %w", customerID, err)
	}

	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: cid,
		Amount:     amountCents,
		Status:     status,
		Date:       date,
	}
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update rewrites the mutable fields of the matching row and reports how many
// rows matched. Zero rows is not an error here; the caller decides.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID string, amountCents int64, status string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amountCents,
			"status":      status,
		})
	return res.RowsAffected, res.Error
}

// Delete removes the matching row and reports how many rows matched.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Invoice{})
	return res.RowsAffected, res.Error
}

// GetByID fetches a single invoice, used to prefill the edit form.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}
