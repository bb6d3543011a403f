package service

import (
	"collabtime-api/core/constants"
	"collabtime-api/modules/scheduler/entity"
)

// ScoreSlot maps a slot's participant breakdown to a 0-100 score and a
// quality tier. The base score is the covered share of participants; each
// flex-hour consumed across all flexing members costs a flat penalty, so a
// single 2h flex is as expensive as two separate 1h flexes.
func ScoreSlot(available, flexing, unavailable, totalFlexHours int) (int, entity.Quality) {
	total := available + flexing + unavailable
	if total == 0 {
		return 0, entity.QualityPoor
	}

	score := (100*(available+flexing))/total - constants.FlexHourPenalty*totalFlexHours
	if score < 0 {
		score = 0
	}

	// A slot covering exactly half the team (score 50) is a coin flip, not
	// a fair result; the fair tier starts strictly above it.
	var quality entity.Quality
	switch {
	case flexing == 0 && unavailable == 0:
		quality = entity.QualityExcellent
	case score >= 75 && unavailable == 0:
		quality = entity.QualityGood
	case score > 50:
		quality = entity.QualityFair
	default:
		quality = entity.QualityPoor
	}

	return score, quality
}
