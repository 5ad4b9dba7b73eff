package request

// ListTransactionsRequest represents query parameters for the transaction log
type ListTransactionsRequest struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
	Range   string `form:"range"`
}

// ReportPeriodRequest represents query parameters selecting a calendar month
type ReportPeriodRequest struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}
