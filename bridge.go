// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world session computation to Expr-world.
// The resulting Expr can be evaluated with RunExpr or RunEitherExpr.
func Reify[A any](m Comp[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world session computation to Cont-world.
// The resulting Comp can be evaluated with Run or RunEither.
func Reflect[A any](m kont.Expr[A]) Comp[A] {
	return kont.Reflect(m)
}
