// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package orb_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/orb"
)

type env struct {
	prefix string
	base   int
}

func TestAsk(t *testing.T) {
	e := env{prefix: "p", base: 3}
	if got := orb.Ask[env]().Run(e); got != e {
		t.Fatalf("Ask().Run(e) = %v", got)
	}
}

func TestMapReader(t *testing.T) {
	base := orb.MapReader(orb.Ask[env](), func(e env) int { return e.base })
	doubled := orb.MapReader(base, func(n int) int { return 2 * n })
	if got := doubled.Run(env{base: 21}); got != 42 {
		t.Fatalf("doubled.Run = %d", got)
	}
}

func TestBindReaderSharesEnvironment(t *testing.T) {
	labelled := orb.BindReader(
		orb.MapReader(orb.Ask[env](), func(e env) int { return e.base }),
		func(n int) orb.Reader[env, string] {
			return func(e env) string {
				return fmt.Sprintf("%s:%d", e.prefix, n)
			}
		},
	)
	if got := labelled.Run(env{prefix: "v", base: 7}); got != "v:7" {
		t.Fatalf("labelled.Run = %q", got)
	}
}

func TestLocal(t *testing.T) {
	base := orb.MapReader(orb.Ask[env](), func(e env) int { return e.base })
	shifted := orb.Local(base, func(e env) env {
		e.base += 10
		return e
	})
	e := env{base: 5}
	if got := shifted.Run(e); got != 15 {
		t.Fatalf("shifted.Run = %d", got)
	}
	// Local must not leak the transformed environment to the caller.
	if e.base != 5 {
		t.Fatalf("caller environment mutated: %v", e)
	}
}
