package actions

import (
	"context"
	"time"

	"go.uber.org/zap"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/forms"
	"invoice-dashboard-backend/internal/models"
)

// InvoicesPath is the list route every mutation invalidates and where
// create/update land afterwards.
const InvoicesPath = "/dashboard/invoices"

// Messages surfaced when persistence fails or a row is missing.
const (
	MsgInvalidInput  = "Invalid input present"
	MsgCreateFailed  = "Failed to Create Invoice."
	MsgUpdateFailed  = "Failed to Update Invoice."
	MsgDeleteFailed  = "Failed to Delete Invoice."
	MsgInvoiceAbsent = "Invoice not found."
)

// InvoiceStore is the persistence gateway as seen by the actions. All
// implementations must bind parameters, never concatenate values into SQL.
// Update and Delete report the number of rows affected; the policy for zero
// rows lives up here, not in the gateway.
type InvoiceStore interface {
	Insert(ctx context.Context, customerID string, amountCents int64, status string, date time.Time) (*models.Invoice, error)
	Update(ctx context.Context, id, customerID string, amountCents int64, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// InvoiceActions sequences validation, persistence, cache invalidation and
// navigation for the invoice form.
type InvoiceActions struct {
	store  InvoiceStore
	routes cache.RouteCache
	logger *zap.Logger

	// StrictNotFound turns an update/delete of a missing id into a reported
	// "Invoice not found." state instead of a silent no-op.
	StrictNotFound bool

	now func() time.Time
}

func NewInvoiceActions(store InvoiceStore, routes cache.RouteCache, logger *zap.Logger) *InvoiceActions {
	return &InvoiceActions{
		store:  store,
		routes: routes,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the submitted form, inserts the invoice with a
// server-stamped date, invalidates the list route and redirects to it.
// Validation failures and persistence failures come back as renderable states
// and never reach persistence or navigation.
func (a *InvoiceActions) Create(ctx context.Context, form map[string]string) Outcome {
	draft, fieldErrs := forms.ParseInvoiceForm(form)
	if fieldErrs != nil {
		return Render(&State{Errors: fieldErrs, Message: MsgInvalidInput})
	}

	date := a.today()
	if _, err := a.store.Insert(ctx, draft.CustomerID, draft.AmountCents, draft.Status, date); err != nil {
		a.logger.Error("failed to create invoice",
			zap.String("customer_id", draft.CustomerID), zap.Error(err))
		return Render(&State{Message: MsgCreateFailed})
	}

	a.invalidateInvoices(ctx)
	return Redirect(InvoicesPath)
}

// Update rewrites the mutable fields of the invoice with the given id.
// Validation failures return field errors exactly like Create does.
func (a *InvoiceActions) Update(ctx context.Context, id string, form map[string]string) Outcome {
	draft, fieldErrs := forms.ParseInvoiceForm(form)
	if fieldErrs != nil {
		return Render(&State{Errors: fieldErrs, Message: MsgInvalidInput})
	}

	affected, err := a.store.Update(ctx, id, draft.CustomerID, draft.AmountCents, draft.Status)
	if err != nil {
		a.logger.Error("failed to update invoice", zap.String("invoice_id", id), zap.Error(err))
		return Render(&State{Message: MsgUpdateFailed})
	}
	if affected == 0 && a.StrictNotFound {
		return Render(&State{Message: MsgInvoiceAbsent})
	}

	a.invalidateInvoices(ctx)
	return Redirect(InvoicesPath)
}

// Delete removes the invoice with the given id and invalidates the list
// route. There is no redirect: the caller stays on the current view. Deleting
// a missing id is a no-op unless StrictNotFound is set.
func (a *InvoiceActions) Delete(ctx context.Context, id string) Outcome {
	affected, err := a.store.Delete(ctx, id)
	if err != nil {
		a.logger.Error("failed to delete invoice", zap.String("invoice_id", id), zap.Error(err))
		return Render(&State{Message: MsgDeleteFailed})
	}
	if affected == 0 && a.StrictNotFound {
		return Render(&State{Message: MsgInvoiceAbsent})
	}

	a.invalidateInvoices(ctx)
	return Render(&State{})
}

// invalidateInvoices is side-effect only: a failed invalidation leaves the
// cache stale until the next natural refresh, it never fails the mutation.
func (a *InvoiceActions) invalidateInvoices(ctx context.Context) {
	if err := a.routes.Invalidate(ctx, InvoicesPath); err != nil {
		a.logger.Warn("failed to invalidate route cache",
			zap.String("route", InvoicesPath), zap.Error(err))
	}
}

func (a *InvoiceActions) today() time.Time {
	t := a.now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
