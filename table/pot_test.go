package table

import (
	"reflect"
	"testing"
)

func TestPotLadder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		contributions []int
		folded        []bool
		want          []Pot
	}{
		{
			name:          "no contributions",
			contributions: []int{0, 0, 0},
			folded:        []bool{false, false, false},
			want:          nil,
		},
		{
			name:          "equal contributions form one pot",
			contributions: []int{100, 100, 100},
			folded:        []bool{false, false, false},
			want: []Pot{
				{Amount: 300, Eligible: []int{0, 1, 2}},
			},
		},
		{
			name:          "short all-in carves a side pot",
			contributions: []int{100, 300, 300},
			folded:        []bool{false, false, false},
			want: []Pot{
				{Amount: 300, Eligible: []int{0, 1, 2}},
				{Amount: 400, Eligible: []int{1, 2}},
			},
		},
		{
			name:          "two all-ins ladder three pots",
			contributions: []int{30, 70, 100, 100},
			folded:        []bool{false, false, false, false},
			want: []Pot{
				{Amount: 120, Eligible: []int{0, 1, 2, 3}},
				{Amount: 120, Eligible: []int{1, 2, 3}},
				{Amount: 60, Eligible: []int{2, 3}},
			},
		},
		{
			name:          "folded chips count but never qualify",
			contributions: []int{50, 100, 100},
			folded:        []bool{true, false, false},
			want: []Pot{
				{Amount: 250, Eligible: []int{1, 2}},
			},
		},
		{
			name:          "folded surplus lands in the deepest tier",
			contributions: []int{200, 100, 300},
			folded:        []bool{true, false, false},
			want: []Pot{
				{Amount: 300, Eligible: []int{1, 2}},
				{Amount: 300, Eligible: []int{2}},
			},
		},
		{
			name:          "unmatched remainder forms a single eligible pot",
			contributions: []int{100, 300},
			folded:        []bool{false, false},
			want: []Pot{
				{Amount: 200, Eligible: []int{0, 1}},
				{Amount: 200, Eligible: []int{1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := potLadder(tt.contributions, tt.folded)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("potLadder mismatch:\nwant %v\n got %v", tt.want, got)
			}
		})
	}
}

func TestPotLadderConservesChips(t *testing.T) {
	t.Parallel()

	contributions := []int{17, 250, 99, 250, 3, 0}
	folded := []bool{true, false, true, false, true, false}

	total := 0
	for _, c := range contributions {
		total += c
	}
	potted := 0
	for _, pot := range potLadder(contributions, folded) {
		potted += pot.Amount
	}
	if potted != total {
		t.Fatalf("pots hold %d chips, want %d", potted, total)
	}
}
