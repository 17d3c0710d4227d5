// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interp

import (
	"fmt"
	"strings"

	"code.hybscloud.com/kont"
)

// parsedOptions carries ParseFlags output between fused steps.
type parsedOptions struct {
	next         Flags
	unrecognized []string
}

// SetOptions applies backend option strings on top of the session's
// current configuration.
//
// The backend parses the options against the current flags (a pure step);
// if it reports any of them unrecognized, the computation fails with
// *UnknownError whose detail names the entire original input list, not
// only the unrecognized subset — callers relying on the exact message
// format get the full list joined by spaces. Otherwise the new
// configuration is installed into the engine.
func SetOptions(options ...string) Comp[struct{}] {
	return kont.Bind(ReadState(func(st *SessionState) Engine { return st.engine }), func(eng Engine) Comp[struct{}] {
		return kont.Bind(LiftEffect(func() parsedOptions {
			next, unrecognized := eng.ParseFlags(eng.Flags(), options)
			return parsedOptions{next: next, unrecognized: unrecognized}
		}), func(p parsedOptions) Comp[struct{}] {
			if len(p.unrecognized) > 0 {
				detail := fmt.Sprintf("flag: '%s' not recognized", strings.Join(options, " "))
				return Fail[struct{}](&UnknownError{Detail: detail})
			}
			return LiftEffect(func() struct{} {
				eng.SetFlags(p.next)
				return struct{}{}
			})
		})
	})
}

// SetOption is SetOptions for a single option string.
func SetOption(option string) Comp[struct{}] {
	return SetOptions(option)
}

// CurrentFlags reads the session's current backend configuration.
func CurrentFlags() Comp[Flags] {
	return WithEngine(func(eng Engine) Flags { return eng.Flags() })
}
