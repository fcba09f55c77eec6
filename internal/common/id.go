// Package common holds the small value types shared by every order-book
// package: order/account identifiers, side, status and time-in-force.
package common

import "github.com/google/uuid"

// OrderID uniquely identifies an order for its entire lifetime.
type OrderID = uuid.UUID

// AccountID identifies the owner of an order.
type AccountID = uuid.UUID

// NewOrderID generates a fresh random order id.
func NewOrderID() OrderID { return uuid.New() }
