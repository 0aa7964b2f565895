package cartstore

import "errors"

var (
	ErrStoreUnavailable = errors.New("cartstore: redis unavailable")
	ErrEncodeCart       = errors.New("cartstore: failed to encode cart")
)
