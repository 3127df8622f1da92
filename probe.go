// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb

import (
	"errors"
	"io"

	"code.hybscloud.com/iox"
)

// NotSupported reports whether err marks an unsupported operation rather
// than a data failure. [code.hybscloud.com/iox.ErrWouldBlock] counts: a
// non-blocking stream that cannot answer now has nothing to report to a
// synchronous capability probe.
func NotSupported(err error) bool {
	return errors.Is(err, errors.ErrUnsupported) || errors.Is(err, iox.ErrWouldBlock)
}

// Try lifts a conventional (value, error) return into an option,
// discarding the error. Use it for probes where any failure simply
// means "no answer".
func Try[T any](v T, err error) Option[T] {
	if err != nil {
		return None[T]()
	}
	return Some(v)
}

// SeekLen probes the total length of s without consuming it: seek to the
// end, then restore the prior position. Returns (None, nil) when seeking
// is unsupported — callers never see the refusal — and propagates only
// genuine seek failures.
func SeekLen(s io.Seeker) (Option[int64], error) {
	cur, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return refusal[int64](err)
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return refusal[int64](err)
	}
	if _, err := s.Seek(cur, io.SeekStart); err != nil {
		return refusal[int64](err)
	}
	return Some(end), nil
}

// SeekPos probes the current position of s. Returns (None, nil) when
// seeking is unsupported, propagating only genuine seek failures.
func SeekPos(s io.Seeker) (Option[int64], error) {
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return refusal[int64](err)
	}
	return Some(pos), nil
}

// refusal translates capability refusals into a silent None and passes
// other errors through.
func refusal[T any](err error) (Option[T], error) {
	if NotSupported(err) {
		return None[T](), nil
	}
	return None[T](), err
}
