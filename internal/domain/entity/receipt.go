package entity

// ReceiptHeader holds the shop header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
// Amounts are pre-formatted yen strings.
type ReceiptItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Total     string `json:"total"`
}

// Receipt is a value object handed to the print collaborator. It is not a
// database entity; it is composed from transaction data at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	InvoiceNo     string        `json:"invoice_no"`
	Date          string        `json:"date"`
	Cashier       string        `json:"cashier,omitempty"`
	Customer      string        `json:"customer,omitempty"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      string        `json:"sub_total"`
	Total         string        `json:"total"`
	Cash          string        `json:"cash,omitempty"`
	Change        string        `json:"change,omitempty"`
}
