package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func activitiesWithCalories(calories ...int) []*Activity {
	out := make([]*Activity, 0, len(calories))
	for _, c := range calories {
		out = append(out, &Activity{Calories: c})
	}
	return out
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		calories []int
		want     Totals
	}{
		{
			name: "empty set yields zeros",
			want: Totals{},
		},
		{
			name:     "two activities",
			calories: []int{300, 450},
			want:     Totals{TotalActivities: 2, TotalCalories: 750, TotalPoints: 950},
		},
		{
			name:     "zero calorie activities still score",
			calories: []int{0, 0, 0},
			want:     Totals{TotalActivities: 3, TotalCalories: 0, TotalPoints: 300},
		},
		{
			name:     "single activity",
			calories: []int{1234},
			want:     Totals{TotalActivities: 1, TotalCalories: 1234, TotalPoints: 1334},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotals(activitiesWithCalories(tt.calories...)))
		})
	}
}

func TestComputeTotals_PointsFormula(t *testing.T) {
	// Проверяем формулу на последовательностях разной длины
	for n := 0; n < 20; n++ {
		calories := make([]int, n)
		sum := 0
		for i := range calories {
			calories[i] = (i*37 + 11) % 900
			sum += calories[i]
		}

		got := ComputeTotals(activitiesWithCalories(calories...))

		assert.Equal(t, n, got.TotalActivities)
		assert.Equal(t, sum, got.TotalCalories)
		assert.Equal(t, sum+PointsPerActivity*n, got.TotalPoints)
	}
}

func TestUserFilter_OrderField(t *testing.T) {
	tests := []struct {
		orderBy   string
		wantField string
		wantDesc  bool
	}{
		{"", "name", false},
		{"name", "name", false},
		{"-email", "email", true},
		{"created_at", "created_at", false},
		{"-password", "name", false},
		{"-", "name", false},
	}

	for _, tt := range tests {
		t.Run(tt.orderBy, func(t *testing.T) {
			field, desc := UserFilter{OrderBy: tt.orderBy}.OrderField()
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantDesc, desc)
		})
	}
}
