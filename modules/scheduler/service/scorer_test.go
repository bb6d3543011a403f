package service

import (
	"testing"

	"collabtime-api/modules/scheduler/entity"

	"github.com/matryer/is"
)

func TestScoreSlot(t *testing.T) {
	tests := []struct {
		name        string
		available   int
		flexing     int
		unavailable int
		flexHours   int
		wantScore   int
		wantQuality entity.Quality
	}{
		{"all available", 2, 0, 0, 0, 100, entity.QualityExcellent},
		{"single member", 1, 0, 0, 0, 100, entity.QualityExcellent},
		{"one flexing one hour", 1, 1, 0, 1, 95, entity.QualityGood},
		{"one flexing two hours", 1, 1, 0, 2, 90, entity.QualityGood},
		{"two flexing four hours", 1, 2, 0, 4, 80, entity.QualityGood},
		{"one of three unavailable", 2, 0, 1, 0, 66, entity.QualityFair},
		{"half covered is poor", 1, 0, 1, 0, 50, entity.QualityPoor},
		{"flex penalty drops below fair", 0, 1, 1, 2, 40, entity.QualityPoor},
		{"nobody available", 0, 0, 2, 0, 0, entity.QualityPoor},
		{"penalty floors at zero", 0, 1, 20, 12, 0, entity.QualityPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			score, quality := ScoreSlot(tt.available, tt.flexing, tt.unavailable, tt.flexHours)
			is.Equal(score, tt.wantScore)
			is.Equal(quality, tt.wantQuality)
		})
	}
}

func TestScoreSlotEmpty(t *testing.T) {
	is := is.New(t)
	score, quality := ScoreSlot(0, 0, 0, 0)
	is.Equal(score, 0)
	is.Equal(quality, entity.QualityPoor)
}
