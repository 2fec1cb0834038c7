package domain

import "errors"

var ErrDuplicateTransactionID = errors.New("Transaction id already used")
var ErrUnknownTransaction = errors.New("Unknown transaction id")
var ErrInvalidTransition = errors.New("Invalid dispute transition")
var ErrInsufficientFunds = errors.New("Insufficient available funds")
var ErrInsufficientHeldFunds = errors.New("Insufficient held funds")
var ErrOverflow = errors.New("Amount overflow")
var ErrAccountLocked = errors.New("Account is locked")
