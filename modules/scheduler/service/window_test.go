package service

import (
	"testing"

	"collabtime-api/modules/scheduler/entity"

	"github.com/matryer/is"
)

func TestIsWithinWindow(t *testing.T) {
	tests := []struct {
		name  string
		hour  int
		start int
		end   int
		want  bool
	}{
		{"inside normal window", 10, 9, 17, true},
		{"at start", 9, 9, 17, true},
		{"at end is outside", 17, 9, 17, false},
		{"before start", 8, 9, 17, false},
		{"wrap late evening", 23, 22, 6, true},
		{"wrap early morning", 3, 22, 6, true},
		{"wrap at start", 22, 22, 6, true},
		{"wrap at end is outside", 6, 22, 6, false},
		{"wrap midday outside", 10, 22, 6, false},
		{"equal bounds always available", 4, 12, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(IsWithinWindow(tt.hour, tt.start, tt.end), tt.want)
		})
	}
}

func TestTryFlex(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		start    int
		end      int
		maxShift int
		want     *entity.Flex
	}{
		{"one hour after end flexes late", 17, 9, 17, 2, &entity.Flex{Direction: entity.FlexLate, Hours: 1}},
		{"two hours after end flexes late", 18, 9, 17, 2, &entity.Flex{Direction: entity.FlexLate, Hours: 2}},
		{"one hour before start flexes early", 8, 9, 17, 2, &entity.Flex{Direction: entity.FlexEarly, Hours: 1}},
		{"two hours before start flexes early", 7, 9, 17, 2, &entity.Flex{Direction: entity.FlexEarly, Hours: 2}},
		{"beyond budget", 20, 9, 17, 2, nil},
		{"far outside window", 2, 9, 17, 2, nil},
		{"wrap window flexes late", 6, 22, 6, 1, &entity.Flex{Direction: entity.FlexLate, Hours: 1}},
		{"wrap window flexes early", 21, 22, 6, 1, &entity.Flex{Direction: entity.FlexEarly, Hours: 1}},
		// Near-full-day window: at shift 1 both directions cover hour 0,
		// the documented tie-break picks late.
		{"tie prefers late", 0, 1, 0, 2, &entity.Flex{Direction: entity.FlexLate, Hours: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got := TryFlex(tt.hour, tt.start, tt.end, tt.maxShift)
			if tt.want == nil {
				is.True(got == nil)
				return
			}
			is.True(got != nil)
			is.Equal(got.Direction, tt.want.Direction)
			is.Equal(got.Hours, tt.want.Hours)
		})
	}
}

func TestTryFlexWindowWholeRange(t *testing.T) {
	is := is.New(t)

	// Meeting hours 16..18 against a 9-17 window need a 2h late shift to
	// cover hour 18; a 1h shift only reaches 17.
	got := tryFlexWindow([]int{16, 17, 18}, 9, 17, 2)
	is.True(got != nil)
	is.Equal(got.Direction, entity.FlexLate)
	is.Equal(got.Hours, 2)

	// One hour out of budget on the early side.
	is.True(tryFlexWindow([]int{5, 6, 7}, 9, 17, 2) == nil)
}
