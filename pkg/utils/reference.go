package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateInvoiceNo generates a unique invoice number, e.g. "TXN-3F9A1C02".
func GenerateInvoiceNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateProductCode generates a unique product code.
func GenerateProductCode() string {
	return "PRD-" + strings.ToUpper(uuid.New().String()[:8])
}
