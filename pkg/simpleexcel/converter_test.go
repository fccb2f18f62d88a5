package simpleexcel

import (
	"reflect"
	"testing"
)

func TestFlattenRecords_ShouldExpandMaps(t *testing.T) {
	type Employee struct {
		ID       int                `json:"id"`
		Name     string             `json:"name"`
		Salaries map[string]float64 `json:"salaries"`
		Note     string
		Secret   string `json:"-"`
	}
	testCases := map[string]struct {
		input  interface{}
		output []map[string]interface{}
	}{
		"struct with map": {
			input: Employee{
				ID:       1,
				Name:     "John Doe",
				Salaries: map[string]float64{"2024-11": 60000, "2024-12": 62000},
				Note:     "n",
				Secret:   "s",
			},
			output: []map[string]interface{}{
				{
					"id":               1,
					"name":             "John Doe",
					"salaries.2024-11": 60000.0,
					"salaries.2024-12": 62000.0,
					"Note":             "n",
				},
			},
		},
		"slice of struct pointers with nil map": {
			input: []*Employee{
				{ID: 2, Name: "Jane Smith"},
			},
			output: []map[string]interface{}{
				{"id": 2, "name": "Jane Smith", "Note": ""},
			},
		},
		"empty slice": {
			input:  []Employee{},
			output: []map[string]interface{}{},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := FlattenRecords(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.output) {
				t.Errorf("expected %v, got %v", tc.output, got)
			}
		})
	}
}

func TestFlattenRecords_RejectsScalars(t *testing.T) {
	if _, err := FlattenRecords(42); err == nil {
		t.Error("expected error for int input")
	}
	if _, err := FlattenRecords([]int{1, 2}); err == nil {
		t.Error("expected error for slice of ints")
	}
}
