package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gallegosdmz/pos-front-sub000/internal/cart"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// DialogState tracks the payment dialog: closed → open → submitting, back to
// open on a failed submission, back to closed (cart cleared) on success.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogSubmitting
)

func (s DialogState) String() string {
	switch s {
	case DialogClosed:
		return "closed"
	case DialogOpen:
		return "open"
	case DialogSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// PaymentState is the transient payment dialog input. Reset when the dialog
// closes after a successful sale; retained across a failed submission so the
// cashier can correct and retry.
type PaymentState struct {
	Method        string
	CashReceived  decimal.Decimal
	CustomerName  string
	CustomerEmail string
}

// Session is one in-progress checkout: the cart, a catalog snapshot taken at
// session start (prices and stock are read-only for the session's lifetime),
// and the payment dialog state.
//
// mu serializes every mutation — the original flow ran on a single UI thread,
// here the lock provides the same "no interleaved cart mutations" guarantee.
type Session struct {
	ID         uuid.UUID
	BusinessID int64
	Cart       cart.Cart
	Catalog    []model.Product
	Dialog     DialogState
	Payment    PaymentState

	mu         sync.Mutex
	lastActive time.Time
}

// View is an immutable snapshot of a session for handlers to render.
type View struct {
	ID         uuid.UUID
	BusinessID int64
	Lines      []cart.Line
	Totals     cart.Totals
	Dialog     DialogState
}

func (s *Session) view() View {
	return View{
		ID:         s.ID,
		BusinessID: s.BusinessID,
		Lines:      s.Cart.Lines(),
		Totals:     cart.Compute(&s.Cart),
		Dialog:     s.Dialog,
	}
}
