// Package probing reads kernel pseudo-files and applies the read timeout policy.
package probing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrOpen marks a pseudo-file that could not be opened.
	ErrOpen = errors.New("open failed")
	// ErrRead marks a pseudo-file that opened but could not be read.
	ErrRead = errors.New("read failed")
)

func GetTimestamp() int64 {
	return time.Now().UnixNano()
}

// File reads at most limit bytes from path. The descriptor is closed before
// returning on every path.
func File(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return data, nil
}

// LeadingInt parses the integer at the start of s the way atoi does: leading
// whitespace, an optional sign, then digits. Anything after the digits is
// ignored. ok is false when no digit was found.
func LeadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WithTimeout runs fn under the read timeout policy. A zero timeout calls fn
// inline and waits for as long as fn blocks. A positive timeout runs fn on a
// helper goroutine and gives up with context.DeadlineExceeded once it expires;
// the abandoned call finishes in the background and its result is dropped.
func WithTimeout[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if timeout <= 0 {
		return fn()
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{v, err}
	}()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
