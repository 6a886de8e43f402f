package main

import "time"

// Transaction types. Exactly one of TotalAmount/AmountPaid is non-zero per
// row, determined by the type.
const (
	TransactionTypeSale    = "sale"
	TransactionTypePayment = "payment"
)

// Transaction represents one ledger entry for a customer: a sale extends
// credit, a payment reduces it.
type Transaction struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customer_id"`
	ShopID          string    `json:"shop_id"`
	TransactionType string    `json:"transaction_type"`
	TotalAmount     float64   `json:"total_amount"`
	AmountPaid      float64   `json:"amount_paid"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

// Customer represents a khata customer. DueAmount is maintained by the
// store on every transaction insert/delete and is never recomputed here.
type Customer struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address"`
	ImageURL  *string   `json:"image_url"`
	DueAmount float64   `json:"due_amount"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CashEntry is a quick cash-book ("chillar khata") line, not tied to a
// registered customer.
type CashEntry struct {
	ID           string    `json:"id"`
	ShopID       string    `json:"shop_id"`
	CustomerName string    `json:"customer_name"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// Product represents a price-list item.
type Product struct {
	ID           string    `json:"id"`
	ShopID       string    `json:"shop_id"`
	Name         string    `json:"name"`
	Unit         string    `json:"unit"`
	SellingPrice float64   `json:"selling_price"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StatementPage is a contiguous run of a customer's transactions closed by
// a payment (the last page may still be open). PreviousDue carries the net
// of all earlier pages so a single page prints as a complete statement.
type StatementPage struct {
	Transactions []Transaction `json:"transactions"`
	PageTotal    float64       `json:"page_total"`
	PreviousDue  float64       `json:"previous_due"`
	CurrentDue   float64       `json:"current_due"`
	Closed       bool          `json:"closed"`
}

// StatementMessage is the WhatsApp-ready rendering of the latest statement
// page.
type StatementMessage struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// SeriesPoint is one calendar-day bucket of the analytics time series.
// Date is the ISO key the aggregation matched on; Label is the display
// form ("02 Jan").
type SeriesPoint struct {
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Credit    float64 `json:"credit"`
	Collected float64 `json:"collected"`
	Count     int     `json:"count"`
}

// WeekdayCount is one bucket of the Sun..Sat histogram.
type WeekdayCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Debtor is a customer ranked by outstanding due.
type Debtor struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	DueAmount float64 `json:"due_amount"`
}

// SlowPayer is a customer ranked by the age of their oldest sale still on
// the books.
type SlowPayer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	DueAmount   float64 `json:"due_amount"`
	DaysOverdue int     `json:"days_overdue"`
}

// DueSlice is one slice of the dues-distribution breakdown (top customers
// individually, the rest folded into "Others").
type DueSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AnalyticsResult bundles everything the analytics dashboard renders for
// one shop and range.
type AnalyticsResult struct {
	Range             string         `json:"range"`
	TotalDue          float64        `json:"total_due"`
	TotalCustomers    int            `json:"total_customers"`
	TotalCollected    float64        `json:"total_collected"`
	TotalCredit       float64        `json:"total_credit"`
	AverageOrderValue float64        `json:"average_order_value"`
	DebtRatio         float64        `json:"debt_ratio"`
	HighestDebtors    []Debtor       `json:"highest_debtors"`
	SlowestPayers     []SlowPayer    `json:"slowest_payers"`
	DailySeries       []SeriesPoint  `json:"daily_series"`
	BusyDays          []WeekdayCount `json:"busy_days"`
	DuesDistribution  []DueSlice     `json:"dues_distribution"`
}

// DashboardSummary is the landing-page snapshot.
type DashboardSummary struct {
	TotalCustomers   int     `json:"total_customers"`
	TotalDue         float64 `json:"total_due"`
	TodaysCollection float64 `json:"todays_collection"`
}
