package skiplist

import (
	"reflect"
	"testing"
)

func TestIterator_Forward(t *testing.T) {
	t.Parallel()
	list := mustNewList[int](t)

	for _, k := range []int64{3, 1, 2} {
		list.Put(k, int(k)*10)
	}

	it := list.Iterator()
	if it.Valid() {
		t.Errorf("expected false")
	}

	var keys []int64
	var values []int
	for it.Next() {
		keys = append(keys, it.Key())
		values = append(values, it.Value())
	}

	if !reflect.DeepEqual([]int64{1, 2, 3}, keys) {
		t.Errorf("expected %v, got %v", []int64{1, 2, 3}, keys)
	}
	if !reflect.DeepEqual([]int{10, 20, 30}, values) {
		t.Errorf("expected %v, got %v", []int{10, 20, 30}, values)
	}
	if it.Valid() {
		t.Errorf("expected false")
	}
}

func TestIterator_EmptyList(t *testing.T) {
	t.Parallel()
	list := mustNewList[int](t)

	it := list.Iterator()
	if it.Next() {
		t.Errorf("expected false")
	}
	if it.Valid() {
		t.Errorf("expected false")
	}
	if it.Key() != 0 {
		t.Errorf("expected zero, got %v", it.Key())
	}
	if it.Value() != 0 {
		t.Errorf("expected zero, got %v", it.Value())
	}
}

func TestIterator_AfterDelete(t *testing.T) {
	t.Parallel()
	list := mustNewList[int](t)

	for i := int64(1); i <= 4; i++ {
		list.Put(i, int(i))
	}
	if _, ok := list.Delete(2); !ok {
		t.Errorf("expected present")
	}

	var keys []int64
	it := list.Iterator()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	if !reflect.DeepEqual([]int64{1, 3, 4}, keys) {
		t.Errorf("expected %v, got %v", []int64{1, 3, 4}, keys)
	}
}

func TestIterator_NilSafety(t *testing.T) {
	t.Parallel()

	var it *Iterator[int]
	if it.Valid() {
		t.Errorf("expected false")
	}
	if it.Next() {
		t.Errorf("expected false")
	}
	if it.Key() != 0 {
		t.Errorf("expected zero, got %v", it.Key())
	}
	if it.Value() != 0 {
		t.Errorf("expected zero, got %v", it.Value())
	}
}
