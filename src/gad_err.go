package osmocore

import (
	"errors"
	"fmt"
)

// Decode failure classification.  Match with errors.Is; the concrete
// *GadDecodeError carries the diagnostic detail.
var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInvalidLength  = errors.New("invalid length")
	ErrReservedBitSet = errors.New("reserved bit set")
	ErrNotSupported   = errors.New("GAD type not supported")
)

// GadDecodeError describes why a GAD PDU could not be decoded.  Type
// carries the shape discriminator when it was readable from the input;
// HasType is false for failures before the first byte.
type GadDecodeError struct {
	Err     error // one of the sentinels above
	Type    GadType
	HasType bool
	Detail  string
}

func (e *GadDecodeError) Error() string {
	if e.HasType {
		return fmt.Sprintf("Error decoding GAD %s: %s", GadTypeName(e.Type), e.Detail)
	}

	return fmt.Sprintf("Error decoding GAD: %s", e.Detail)
}

func (e *GadDecodeError) Unwrap() error {
	return e.Err
}

func gadDecErr(sentinel error, gadType GadType, format string, args ...any) *GadDecodeError {
	return &GadDecodeError{
		Err:     sentinel,
		Type:    gadType,
		HasType: true,
		Detail:  fmt.Sprintf(format, args...),
	}
}

func gadDecErrNoType(sentinel error, format string, args ...any) *GadDecodeError {
	return &GadDecodeError{
		Err:    sentinel,
		Detail: fmt.Sprintf(format, args...),
	}
}
