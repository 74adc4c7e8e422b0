package recurrence

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Logger is where this package writes its "log and drop" (lenient parsing,
// RuleError downgrades, type-mismatch coercions) and debug-level exclusion
// notices. It defaults to a no-op sink; a host process wires a real zerolog
// logger the same way jpfluger-alibs-slim's atime package does.
var Logger = zerolog.Nop()

// excludedLogSample only emits one debug line per N exclusions, counted
// across every compound iterator in the process (the counter is shared), so
// a long DAILY expansion with a busy EXDATE list doesn't flood the sink.
const excludedLogSample = 64

var excludedLogCounter uint64

func logExcluded(occ Occurrence) {
	n := atomic.AddUint64(&excludedLogCounter, 1)
	if n%excludedLogSample != 1 {
		return
	}
	Logger.Debug().
		Time("occurrence", occ.Value).
		Int("type", int(occ.Type)).
		Msg("compound iterator dropped an excluded occurrence")
}

func logLeniencyDrop(kind string, err error) {
	Logger.Warn().Err(err).Str("kind", kind).Msg("lenient mode: dropping malformed declaration")
}

func logTypeCoercion(field string, from, to ValueType) {
	Logger.Debug().
		Str("field", field).
		Int("from", int(from)).
		Int("to", int(to)).
		Msg("coerced until/dtstart type mismatch")
}
