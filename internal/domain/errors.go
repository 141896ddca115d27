package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrOutOfStock indicates the requested amount exceeds the available stock.
	ErrOutOfStock = errors.New("requested quantity out of stock")
	// ErrAdd marks a failed add-to-cart.
	ErrAdd = errors.New("failed to add product")
	// ErrRemoval marks a failed removal from the cart.
	ErrRemoval = errors.New("failed to remove product")
	// ErrAmend marks a failed quantity change.
	ErrAmend = errors.New("failed to change product amount")
)

// Message returns the text shown to the user for a failed cart operation.
// Out-of-stock takes precedence over the operation-level errors.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrOutOfStock):
		return ErrOutOfStock.Error()
	case errors.Is(err, ErrAdd):
		return ErrAdd.Error()
	case errors.Is(err, ErrRemoval):
		return ErrRemoval.Error()
	case errors.Is(err, ErrAmend):
		return ErrAmend.Error()
	case errors.Is(err, ErrNotFound):
		return "product not found"
	default:
		return "unexpected error, please try again"
	}
}
