package models

import "errors"

var (
	// ErrDuplicateInvoice возвращается при повторной обработке инвойса
	// с уже существующим id
	ErrDuplicateInvoice = errors.New("invoice has already been processed")

	// ErrInvoiceNotFound возвращается, когда инвойс не найден в хранилище
	ErrInvoiceNotFound = errors.New("invoice not found")
)
