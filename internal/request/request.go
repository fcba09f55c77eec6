// Package request implements the wire model for incoming instructions:
// newline-delimited JSON records discriminated by type_op, and the
// translation from a decoded record into an order the matching engine can
// act on.
package request

import (
	json "github.com/goccy/go-json"

	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/types"
)

// Kind discriminates the two request variants.
type Kind int

const (
	Create Kind = iota
	Delete
)

// Request is a single decoded wire instruction. Create carries enough to
// build a GTC limit order; Delete carries only the id to remove.
type Request struct {
	Kind Kind

	// Create fields.
	Pair       string
	OrderID    common.OrderID
	AccountID  common.AccountID
	Side       common.Side
	LimitPrice types.Price
	Quantity   types.Quantity

	// Delete fields.
	DeleteID common.OrderID
}

type wireRecord struct {
	TypeOp     string          `json:"type_op"`
	Pair       string          `json:"pair"`
	OrderID    json.RawMessage `json:"order_id"`
	AccountID  json.RawMessage `json:"account_id"`
	Side       string          `json:"side"`
	LimitPrice json.RawMessage `json:"limit_price"`
	Amount     json.RawMessage `json:"amount"`
}

// Decode parses a single newline-delimited JSON record. Unknown fields are
// ignored, matching the wire format's forward-compatibility contract.
func Decode(line []byte) (Request, error) {
	var w wireRecord
	if err := json.Unmarshal(line, &w); err != nil {
		return Request{}, err
	}

	switch w.TypeOp {
	case "CREATE":
		return decodeCreate(w)
	case "DELETE":
		return decodeDelete(w)
	default:
		return Request{}, ErrUnknownTypeOp
	}
}

func decodeCreate(w wireRecord) (Request, error) {
	side, err := parseSide(w.Side)
	if err != nil {
		return Request{}, err
	}

	orderID, err := parseID(w.OrderID)
	if err != nil {
		return Request{}, err
	}

	var accountID common.AccountID
	if len(w.AccountID) > 0 {
		accountID, err = parseID(w.AccountID)
		if err != nil {
			return Request{}, err
		}
	}

	priceLiteral, err := decimalLiteral(w.LimitPrice)
	if err != nil {
		return Request{}, err
	}
	price, err := types.ParsePrice(priceLiteral)
	if err != nil {
		return Request{}, err
	}

	amountLiteral, err := decimalLiteral(w.Amount)
	if err != nil {
		return Request{}, err
	}
	quantity, err := types.ParseQuantity(amountLiteral)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Kind:       Create,
		Pair:       w.Pair,
		OrderID:    orderID,
		AccountID:  accountID,
		Side:       side,
		LimitPrice: price,
		Quantity:   quantity,
	}, nil
}

func decodeDelete(w wireRecord) (Request, error) {
	id, err := parseID(w.OrderID)
	if err != nil {
		return Request{}, err
	}
	return Request{Kind: Delete, DeleteID: id}, nil
}

// Order translates a Create request into a GTC limit Order. It returns
// ErrMismatchType for a Delete request.
func (r Request) Order() (*order.Order, error) {
	if r.Kind != Create {
		return nil, ErrMismatchType
	}
	typ := order.NewLimit(r.LimitPrice, common.DefaultTimeInForce(), r.Quantity)
	return order.New(r.OrderID, r.Side, typ), nil
}
