package request

import "errors"

// ErrMismatchType is returned by Request.Order when called on a Delete
// request, which carries no order to translate.
var ErrMismatchType = errors.New("request: mismatched type, expected create")

// ErrUnknownSide is returned when a wire record's side field is not one of
// BUY, SELL, BID, or ASK.
var ErrUnknownSide = errors.New("request: unknown side")

// ErrUnknownTypeOp is returned when a wire record's type_op field is not
// CREATE or DELETE.
var ErrUnknownTypeOp = errors.New("request: unknown type_op")
