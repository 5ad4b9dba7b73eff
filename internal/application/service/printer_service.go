package service

import (
	"context"

	"github.com/ayumu-dev/regi-api/internal/config"
	"github.com/ayumu-dev/regi-api/internal/domain/entity"
	"github.com/ayumu-dev/regi-api/pkg/currency"
	"github.com/ayumu-dev/regi-api/pkg/printer"
	"github.com/google/uuid"
)

// PrinterStatus reports the receipt printer's configuration and reachability.
type PrinterStatus struct {
	Type      string `json:"type"`
	Connected bool   `json:"connected"`
}

// PrinterService composes receipts from transactions and drives the thermal
// printer. All monetary fields are formatted as yen before they leave the
// service.
type PrinterService struct {
	printer printer.Printer
	history *HistoryService
	shop    config.ShopConfig
	cfg     config.PrinterConfig
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, history *HistoryService, shop config.ShopConfig, cfg config.PrinterConfig) *PrinterService {
	return &PrinterService{
		printer: p,
		history: history,
		shop:    shop,
		cfg:     cfg,
	}
}

// Status returns the printer type and connectivity.
func (s *PrinterService) Status() *PrinterStatus {
	return &PrinterStatus{
		Type:      s.cfg.Type,
		Connected: s.printer.IsConnected(),
	}
}

// BuildReceipt composes the printable receipt for a transaction.
func (s *PrinterService) BuildReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	txn, err := s.history.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return s.composeReceipt(txn), nil
}

// PrintReceipt composes and prints the receipt for a transaction. The
// composed receipt is returned even when physical printing is disabled.
func (s *PrinterService) PrintReceipt(ctx context.Context, transactionID uuid.UUID) (*entity.Receipt, error) {
	txn, err := s.history.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	receipt := s.composeReceipt(txn)
	if err := s.printer.Print(s.render(receipt)); err != nil {
		return nil, err
	}
	return receipt, nil
}

// TestPrint sends a short diagnostic page to the printer.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.cfg.Width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(s.shop.Name).
		SetBold(false).
		Text("Printer test OK").
		FeedLines(3).
		PartialCut()
	return s.printer.Print(doc.Bytes())
}

func (s *PrinterService) composeReceipt(txn *entity.Transaction) *entity.Receipt {
	items := make([]entity.ReceiptItem, 0, len(txn.Items))
	var subTotal int64
	for _, item := range txn.Items {
		subTotal += item.Total
		items = append(items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: currency.FormatYen(item.Price),
			Total:     currency.FormatYen(item.Total),
		})
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: s.shop.Name,
			Address:  s.shop.Address,
			Phone:    s.shop.Phone,
		},
		InvoiceNo:     txn.InvoiceNo,
		Date:          txn.Timestamp.Local().Format("2006/01/02 15:04"),
		Cashier:       txn.CashierName,
		PaymentMethod: txn.PaymentMethod.String(),
		Items:         items,
		SubTotal:      currency.FormatYen(subTotal),
		Total:         currency.FormatYen(txn.Total),
	}
	if txn.CustomerName != nil {
		receipt.Customer = *txn.CustomerName
	}
	if txn.CashAmount != nil {
		receipt.Cash = currency.FormatYen(*txn.CashAmount)
	}
	if txn.ChangeAmount != nil {
		receipt.Change = currency.FormatYen(*txn.ChangeAmount)
	}
	return receipt
}

func (s *PrinterService) render(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.cfg.Width)

	doc.SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal)
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Invoice", r.InvoiceNo).
		KeyValue("Date", r.Date)
	if r.Cashier != "" {
		doc.KeyValue("Cashier", r.Cashier)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer", r.Customer)
	}
	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Total)
	}

	doc.Separator('-').
		KeyValue("Subtotal", r.SubTotal).
		SetBold(true).
		KeyValue("Total", r.Total).
		SetBold(false)
	if r.Cash != "" {
		doc.KeyValue("Cash", r.Cash).
			KeyValue("Change", r.Change)
	}
	doc.KeyValue("Payment", r.PaymentMethod)

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you!").
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
