// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package orb provides algebraic value types and lazy sequence combinators
// for expressing optional and alternative values without null sentinels.
//
// The core type [EitherOrBoth] is a tri-state union: a value of the left
// type, a value of the right type, or both at once. Dispatch over the
// closed variant set is always exhaustive.
//
// # Value Types
//
//   - [EitherOrBoth]: tri-state union. Factories [Left], [Right], [Both];
//     dispatch via [Match] (value-returning) and [EitherOrBoth.Do]
//     (side-effecting); structural [Equal] and tag-dispatched [Hash].
//   - [Option]: present or absent. [Some], [None], [MatchOption],
//     [MapOption], [BindOption]. The zero value is None.
//   - [Result]: value or error. [Ok], [Err], [Of], [MatchResult].
//     Bridges to [code.hybscloud.com/kont.Either] via [Result.Either]
//     and [ResultOf]. Error annotation uses github.com/pkg/errors.
//   - [Reader]: pure environment-injection delegate. [Ask], [MapReader],
//     [BindReader], [Local].
//
// # Combining Optionals
//
// [MatchPair] dispatches exhaustively over a pair of independent options
// (left, right, leftAndRight, none). [FromOptions] builds an optional
// [EitherOrBoth] from two options through the union's own factories.
//
// # Sequence Combinators
//
//   - [Interleave] and [InterleaveAll]: round-robin merge of N lazy
//     sequences. Pull-based, each source consumed at its own pace,
//     terminating when all are exhausted. Every opened cursor is released
//     on every exit path, including early abandonment by the consumer.
//   - [Unfold]: lazy sequence generation from a seed state.
//
// # Retry Timing and Probing
//
//   - [Linear]: linear-backoff delay schedule for retry loops; [Retry]
//     drives an operation with an injected sleep.
//   - [Try], [SeekLen], [SeekPos], [NotSupported]: stream capability
//     probes that translate unsupported operations (including
//     [code.hybscloud.com/iox.ErrWouldBlock]) into empty options.
//
// # Zero Values
//
// The zero [EitherOrBoth] is Uninitialized: a value that bypassed all
// three factories. Every dispatch operation on it panics; only equality
// treats it as a regular (self-equal) state. All other types in the
// package have useful zero values.
package orb
