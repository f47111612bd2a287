package shared

import "errors"

var (
	ErrInvalidFormat       = errors.New("invalid seat code")
	ErrInvalidRow          = errors.New("invalid row number")
	ErrInvalidReference    = errors.New("invalid booking reference")
	ErrSeatOutOfRange      = errors.New("seat position out of range")
	ErrSeatAlreadyReserved = errors.New("seat is already reserved")
	ErrSeatNotBookable     = errors.New("seat cannot be booked")
	ErrSeatNotReserved     = errors.New("seat is not reserved")
	ErrReferenceExhausted  = errors.New("could not generate a unique booking reference")
)
