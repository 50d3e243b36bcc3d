package utils

import (
	"reflect"
	"testing"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{"even", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"larger than input", []int{1, 2}, 25, [][]int{{1, 2}}},
		{"empty", nil, 3, nil},
		{"invalid size", []int{1}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Chunk(tt.items, tt.size); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunk = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChunkAppendDoesNotClobber(t *testing.T) {
	items := []int{1, 2, 3, 4}
	chunks := Chunk(items, 2)
	_ = append(chunks[0], 99)
	if items[2] != 3 {
		t.Errorf("append to a chunk overwrote the next chunk: %v", items)
	}
}

func TestSerializeToJSON(t *testing.T) {
	data, err := SerializeToJSON(map[string]int{"a": 1})
	if err != nil || string(data) != `{"a":1}` {
		t.Errorf("SerializeToJSON = %s, %v", data, err)
	}
	if _, err := SerializeToJSON(make(chan int)); err == nil {
		t.Error("expected an error for an unsupported type")
	}
	data, err = SerializeToIndentedJSON([]int{1})
	if err != nil || string(data) != "[\n  1\n]" {
		t.Errorf("SerializeToIndentedJSON = %q, %v", data, err)
	}
}
