package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-dashboard-backend/internal/actions"
	"invoice-dashboard-backend/internal/repository"
)

// InvoiceHandler exposes the invoice form actions over HTTP. Each endpoint
// collects the posted fields, runs the action and either redirects or returns
// the renderable state.
type InvoiceHandler struct {
	actions   *actions.InvoiceActions
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
}

func NewInvoiceHandler(a *actions.InvoiceActions, invoices *repository.InvoiceRepository, customers *repository.CustomerRepository) *InvoiceHandler {
	return &InvoiceHandler{actions: a, invoices: invoices, customers: customers}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	out := h.actions.Create(c.Request.Context(), invoiceFormValues(c))
	respond(c, out)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	out := h.actions.Update(c.Request.Context(), c.Param("id"), invoiceFormValues(c))
	respond(c, out)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	out := h.actions.Delete(c.Request.Context(), c.Param("id"))
	respond(c, out)
}

// Edit prefills the edit form: the invoice plus the customer options.
func (h *InvoiceHandler) Edit(c *gin.Context) {
	invoice, err := h.invoices.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoice": invoice, "customers": customers})
}

// CustomerOptions feeds the customer select on the create form.
func (h *InvoiceHandler) CustomerOptions(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// invoiceFormValues collects the invoice form fields. Absent fields stay
// absent so validation reports them.
func invoiceFormValues(c *gin.Context) map[string]string {
	return map[string]string{
		"customerId": c.PostForm("customerId"),
		"amount":     c.PostForm("amount"),
		"status":     c.PostForm("status"),
	}
}

// respond maps an action outcome to HTTP: redirects become 303 See Other,
// validation states 422, missing rows 404, persistence failures 500.
func respond(c *gin.Context, out actions.Outcome) {
	if out.IsRedirect() {
		c.Redirect(http.StatusSeeOther, out.RedirectTo)
		return
	}

	state := out.State
	switch {
	case len(state.Errors) > 0:
		c.JSON(http.StatusUnprocessableEntity, state)
	case state.Message == actions.MsgInvoiceAbsent:
		c.JSON(http.StatusNotFound, state)
	case state.Message != "":
		c.JSON(http.StatusInternalServerError, state)
	default:
		c.JSON(http.StatusOK, state)
	}
}
