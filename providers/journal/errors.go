package journal

import (
	"errors"
)

var (
	ErrorInvalidMessageSize = errors.New("invalid size of the journal message")
	ErrorMessageTooLarge    = errors.New("journal message is too large")
)
