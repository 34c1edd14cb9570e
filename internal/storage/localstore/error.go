package localstore

import "errors"

var ErrQuotaExceeded = errors.New("store quota exceeded")
