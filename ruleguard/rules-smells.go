package gorules

import "github.com/quasilyte/go-ruleguard/dsl"

func smells(m dsl.Matcher) {
	// 1) Dos "guard if" seguidos con el mismo return => combinables con ||
	m.Match(`if $c1 { return $ret }; if $c2 { return $ret }`).
		Report(`two consecutive guards return the same value; consider merging conditions with ||`).
		Suggest(`if $c1 || $c2 { return $ret }`)

	// 2) Errores envueltos sin %w pierden errors.Is en los handlers
	m.Match(`fmt.Errorf($msg, $err.Error())`).
		Where(m["err"].Type.Implements(`error`)).
		Report(`wrap with %w instead of interpolating err.Error(); errors.Is needs the chain`)

	// 3) time.Now() dentro de loops de request es señal de medición mal ubicada
	m.Match(`for $*_ { $*_; time.Since($t); $*_ }`).
		Report(`latency measured inside a loop; hoist the timer or record per-iteration explicitly`)
}
