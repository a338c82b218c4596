package ranking

import (
	"reflect"
	"testing"
)

func TestCenter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "empty input",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "single element unchanged",
			input: []string{"a"},
			want:  []string{"a"},
		},
		{
			name:  "two elements",
			input: []string{"a", "b"},
			want:  []string{"b", "a"},
		},
		{
			name:  "three elements alternate right left right",
			input: []string{"a", "b", "c"},
			want:  []string{"b", "a", "c"},
		},
		{
			name:  "five elements cluster largest near middle",
			input: []string{"1", "2", "3", "4", "5"},
			want:  []string{"4", "2", "1", "3", "5"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Center(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Center(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCenterKeepsSequencesAligned(t *testing.T) {
	t.Parallel()

	values := []string{"rock", "metal", "heavy"}
	counts := []int{5, 5, 2}

	centeredValues := Center(values)
	centeredCounts := Center(counts)

	if len(centeredValues) != len(values) {
		t.Fatalf("Center changed length: got %d, want %d", len(centeredValues), len(values))
	}

	// The transformation is positional, so index i in one centered
	// sequence must correspond to index i in the other.
	byValue := map[string]int{"rock": 5, "metal": 5, "heavy": 2}
	for i, v := range centeredValues {
		if centeredCounts[i] != byValue[v] {
			t.Errorf("index %d: value %q paired with count %d, want %d", i, v, centeredCounts[i], byValue[v])
		}
	}
}

func TestCenterDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	input := []int{3, 2, 1}
	Center(input)
	if !reflect.DeepEqual(input, []int{3, 2, 1}) {
		t.Errorf("Center modified its input: %v", input)
	}
}
