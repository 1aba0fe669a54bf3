package utils

import (
	"errors"
	"io"
)

var ErrReadLimitExceeded = errors.New("upload exceeds the size limit")

// ReadAllLimit drains r into memory, failing once more than max bytes have
// been read. It reads max+1 bytes so an exactly-max payload still passes.
func ReadAllLimit(r io.Reader, max int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, ErrReadLimitExceeded
	}
	return b, nil
}
