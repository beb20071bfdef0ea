package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gallegosdmz/pos-front-sub000/internal/cart"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
	"github.com/gallegosdmz/pos-front-sub000/internal/worker"
)

const (
	// defaultCustomerName is the sentinel recorded when no customer name is given.
	defaultCustomerName = "General customer"

	// maxFieldLen caps the client and method fields of a sale submission.
	maxFieldLen = 150

	sessionIdleTimeout = 30 * time.Minute
	sweepInterval      = 5 * time.Minute
)

// CatalogSource supplies the sellable catalog for a business.
// Satisfied by the cache-backed catalog source wired in at the root.
type CatalogSource interface {
	Products(ctx context.Context, token string, businessID int64) ([]model.Product, error)
}

// SaleSubmitter records a completed sale upstream. Satisfied by *upstream.Client.
type SaleSubmitter interface {
	CreateSale(ctx context.Context, token string, req model.SaleRequest) (*model.SaleRecord, error)
}

// ReceiptDispatcher enqueues the async receipt job. Satisfied by *worker.Dispatcher.
type ReceiptDispatcher interface {
	EnqueueReceipt(ctx context.Context, payload interface{}) error
}

// Service owns all live checkout sessions.
type Service struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	catalog    CatalogSource
	sales      SaleSubmitter
	dispatcher ReceiptDispatcher // nil disables receipt jobs (tests)

	now func() time.Time
}

func NewService(catalog CatalogSource, sales SaleSubmitter, dispatcher ReceiptDispatcher) *Service {
	return &Service{
		sessions:   make(map[uuid.UUID]*Session),
		catalog:    catalog,
		sales:      sales,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// StartSession fetches the business catalog and opens a new empty-cart session.
func (s *Service) StartSession(ctx context.Context, token string, businessID int64) (View, error) {
	products, err := s.catalog.Products(ctx, token, businessID)
	if err != nil {
		return View{}, err
	}

	sess := &Session{
		ID:         uuid.New(),
		BusinessID: businessID,
		Catalog:    products,
		lastActive: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess.view(), nil
}

// EndSession drops a session and its cart — the "navigation away" path.
// Unknown ids are a no-op.
func (s *Service) EndSession(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Service) session(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Snapshot returns the current cart, totals and dialog state.
func (s *Service) Snapshot(id uuid.UUID) (View, error) {
	sess, err := s.session(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.view(), nil
}

// AddByCode resolves a scanned or typed code against the session catalog and
// adds one unit of the match. Scan input and manual input share this path.
func (s *Service) AddByCode(id uuid.UUID, code string) (model.Product, View, error) {
	sess, err := s.session(id)
	if err != nil {
		return model.Product{}, View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	p, err := cart.Lookup(code, sess.Catalog)
	if err != nil {
		return model.Product{}, sess.view(), err
	}
	if err := sess.Cart.AddProduct(p); err != nil {
		return p, sess.view(), err
	}
	return p, sess.view(), nil
}

// AddProduct adds one unit of the catalog product with the given id.
func (s *Service) AddProduct(id uuid.UUID, productID int64) (View, error) {
	sess, err := s.session(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	p, err := cart.FindByID(productID, sess.Catalog)
	if err != nil {
		return sess.view(), err
	}
	if err := sess.Cart.AddProduct(p); err != nil {
		return sess.view(), err
	}
	return sess.view(), nil
}

// UpdateQuantity sets the cart quantity for a product; below 1 removes the line.
func (s *Service) UpdateQuantity(id uuid.UUID, productID int64, quantity int) (View, error) {
	sess, err := s.session(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	p, err := cart.FindByID(productID, sess.Catalog)
	if err != nil {
		return sess.view(), err
	}
	if err := sess.Cart.UpdateQuantity(p, quantity); err != nil {
		return sess.view(), err
	}
	return sess.view(), nil
}

// Remove drops a product line; absent lines are a no-op.
func (s *Service) Remove(id uuid.UUID, productID int64) (View, error) {
	sess, err := s.session(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	sess.Cart.Remove(productID)
	return sess.view(), nil
}

// OpenPayment opens the payment dialog. Refused while a submission runs and
// for an empty cart.
func (s *Service) OpenPayment(id uuid.UUID) (View, error) {
	sess, err := s.session(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	if sess.Dialog == DialogSubmitting {
		return sess.view(), ErrSubmissionInFlight
	}
	if sess.Cart.IsEmpty() {
		return sess.view(), ErrEmptyCart
	}
	sess.Dialog = DialogOpen
	return sess.view(), nil
}

// ClosePayment cancels the dialog and clears its transient state. The cart
// is kept.
func (s *Service) ClosePayment(id uuid.UUID) (View, error) {
	sess, err := s.session(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastActive = s.now()

	if sess.Dialog == DialogSubmitting {
		return sess.view(), ErrSubmissionInFlight
	}
	sess.Dialog = DialogClosed
	sess.Payment = PaymentState{}
	return sess.view(), nil
}

// SubmitInput is the confirmed payment dialog content.
type SubmitInput struct {
	Method        string
	CashReceived  decimal.Decimal
	CustomerName  string
	CustomerEmail string
}

// SubmitResult is returned to the caller for display after a successful sale.
type SubmitResult struct {
	Sale   *model.SaleRecord
	Change decimal.Decimal
}

// Submit validates the payment, builds the SaleRequest from the cart and
// sends it upstream. The cart is cleared only on success; on any failure it
// is left untouched and the dialog reopens so the cashier can retry.
func (s *Service) Submit(ctx context.Context, token string, id uuid.UUID, input SubmitInput) (*SubmitResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.lastActive = s.now()

	if sess.Dialog == DialogSubmitting {
		sess.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if sess.Dialog != DialogOpen {
		sess.mu.Unlock()
		return nil, ErrPaymentNotOpen
	}
	if sess.Cart.IsEmpty() {
		sess.mu.Unlock()
		return nil, ErrEmptyCart
	}

	totals := cart.Compute(&sess.Cart)
	if input.Method == "cash" && input.CashReceived.LessThan(totals.Total) {
		sess.mu.Unlock()
		return nil, ErrInsufficientPayment
	}

	client := strings.TrimSpace(input.CustomerName)
	if client == "" {
		client = defaultCustomerName
	}
	client = truncate(client, maxFieldLen)
	method := truncate(input.Method, maxFieldLen)

	req := model.SaleRequest{
		DateSale: s.now().UTC(),
		Total:    totals.Total,
		Details:  sess.Cart.Details(),
		Client:   client,
		Method:   method,
	}
	receipt := buildReceipt(&sess.Cart, totals, req)

	sess.Dialog = DialogSubmitting
	sess.Payment = PaymentState{
		Method:        input.Method,
		CashReceived:  input.CashReceived,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
	}
	sess.mu.Unlock()

	record, err := s.sales.CreateSale(ctx, token, req)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err != nil {
		// Cart and dialog state retained for correction.
		sess.Dialog = DialogOpen
		return nil, err
	}

	sess.Cart.Clear()
	sess.Dialog = DialogClosed
	sess.Payment = PaymentState{}

	if s.dispatcher != nil {
		receipt.SaleID = record.ID
		payload := worker.ReceiptJobPayload{Receipt: receipt, CustomerEmail: input.CustomerEmail}
		if err := s.dispatcher.EnqueueReceipt(ctx, payload); err != nil {
			// Best effort — the sale is already recorded upstream.
			log.Error().Err(err).Int64("sale_id", record.ID).Msg("failed to enqueue receipt job")
		}
	}

	change := decimal.Zero
	if input.Method == "cash" {
		change = cart.Change(totals, input.CashReceived)
	}
	return &SubmitResult{Sale: record, Change: change}, nil
}

func buildReceipt(c *cart.Cart, totals cart.Totals, req model.SaleRequest) model.Receipt {
	items := make([]model.ReceiptItem, 0, c.Len())
	for _, l := range c.Lines() {
		items = append(items, model.ReceiptItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	return model.Receipt{
		DateSale: req.DateSale,
		Client:   req.Client,
		Method:   req.Method,
		Items:    items,
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
}

// truncate caps s at max characters, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// StartSweeper expires sessions idle longer than sessionIdleTimeout.
// The original flow dropped the cart on navigation away; a server process
// has no navigation event, so idle expiry stands in for it.
func (s *Service) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep()
			}
		}
	}()
}

func (s *Service) sweep() {
	cutoff := s.now().Add(-sessionIdleTimeout)

	s.mu.Lock()
	defer s.mu.Unlock()
	expired := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastActive.Before(cutoff) && sess.Dialog != DialogSubmitting
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			expired++
		}
	}
	if expired > 0 {
		log.Debug().Int("expired", expired).Int("remaining", len(s.sessions)).Msg("checkout sessions swept")
	}
}
