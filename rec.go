// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive session computation.
// step returns Left(nextState) to continue or Right(result) to finish.
// The loop short-circuits as a whole when any iteration fails.
func Loop[S, A any](initial S, step func(S) Comp[kont.Either[S, A]]) Comp[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) Comp[A] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		done, _ := e.GetRight()
		return kont.Pure(done)
	})
}
