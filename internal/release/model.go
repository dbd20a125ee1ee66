package release

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "release not found")

const DateLayout = "2006-01-02"

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentPix        PaymentMethod = "pix"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentTransfer   PaymentMethod = "transfer"
)

// Release is a ledger entry: money in or out of the club.
type Release struct {
	ID            string
	Type          Type
	Category      string
	Description   string
	Amount        float64
	Date          time.Time
	PaymentMethod PaymentMethod
	Status        Status
	CreatedAt     time.Time
}

// Filter defines parameters for listing and summarizing releases.
// From and To are inclusive.
type Filter struct {
	Type      Type
	Status    Status
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
	SortOrder string
}

// Summary aggregates the releases matched by a Filter.
type Summary struct {
	Income  float64
	Expense float64
	Balance float64
	Count   int
}
