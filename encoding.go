package jon

import (
	"github.com/jonfmt/jon/internal/escape"
	"go4.org/mem"
)

// Quote escapes s for inclusion between quote marks in dumped text, using
// the format's escape set rather than JSON's (notably \xHH for other
// control bytes and no \/ escape).
func Quote(s string) string {
	return string(escape.Quote(mem.S(s)))
}
