package report

// MonthlyReport summarizes workshop activity and billing for a single month.
type MonthlyReport struct {
	Month            int                `json:"month"`
	Year             int                `json:"year"`
	ServiceCount     int64              `json:"serviceCount"`
	CompletedCount   int64              `json:"completedCount"`
	CancelledCount   int64              `json:"cancelledCount"`
	InvoicedTotal    float64            `json:"invoicedTotal"`
	CollectedTotal   float64            `json:"collectedTotal"`
	OutstandingTotal float64            `json:"outstandingTotal"`
	PaymentsByMethod map[string]float64 `json:"paymentsByMethod"`
}

// YearlyReport aggregates twelve months of invoicing and collections.
type YearlyReport struct {
	Year           int                `json:"year"`
	ServiceCount   int64              `json:"serviceCount"`
	TotalInvoiced  float64            `json:"totalInvoiced"`
	TotalCollected float64            `json:"totalCollected"`
	Months         []MonthlyBreakdown `json:"months"`
}

type MonthlyBreakdown struct {
	Month     int     `json:"month"`
	Invoiced  float64 `json:"invoiced"`
	Collected float64 `json:"collected"`
}
