package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("there is no resource for the ID you specified in the reference to another resource")
)

// Bank errors
var (
	ErrBankNameNotUnique   = errors.New("the bank name must be unique for the owner")
	ErrBankBalanceNegative = errors.New("the balance of a bank must not be negative")
)

// Goal errors
var (
	ErrGoalNameNotUnique     = errors.New("the goal name must be unique for the owner")
	ErrGoalTargetNotPositive = errors.New("goal target amounts must be larger than zero")
)

// Allocation errors
var (
	ErrAllocationNotUnique      = errors.New("there can only be one allocation per goal and bank")
	ErrAllocationAmountNegative = errors.New("allocation amounts must not be negative")
	ErrAllocationExceedsBalance = errors.New("the sum of all allocations of a bank must not exceed its balance")
)

// Transaction errors
var (
	ErrTransactionAmountZero = errors.New("transaction amounts must not be zero")
)
