package passage

import (
	"github.com/heartmarshall/interlinear/internal/domain"
	"github.com/heartmarshall/interlinear/internal/format"
)

// suggest recommends turning on every insensitivity flag when one is off,
// more than half the compared verses share fewer than three words, and both
// translations are in the same language.
func suggest(stats alignStats, params format.Params, sameLanguage bool) domain.Suggestions {
	allOn := params.IgnoreCase && params.IgnoreDiacritics && params.IgnorePunctuation
	if allOn || !sameLanguage || stats.compared == 0 || 2*stats.lowOverlap <= stats.compared {
		return domain.Suggestions{}
	}
	return domain.Suggestions{
		IgnoreCase:        true,
		IgnoreDiacritics:  true,
		IgnorePunctuation: true,
	}
}
