package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusKnown(t *testing.T) {
	for _, status := range []InvoiceStatus{
		InvoiceStatusPaid,
		InvoiceStatusPartiallyPaid,
		InvoiceStatusUnpaid,
		InvoiceStatusOverdue,
	} {
		assert.True(t, status.Known(), string(status))
	}

	assert.False(t, InvoiceStatus("disputed").Known())
	assert.False(t, InvoiceStatus("").Known())
	assert.False(t, InvoiceStatus("PAID").Known(), "status comparison is case sensitive")
}
