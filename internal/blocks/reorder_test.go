package blocks

import (
	"testing"

	"github.com/maison-next/internal/models"
)

func componentsWithPositions(positions ...int) []models.PageComponent {
	components := make([]models.PageComponent, 0, len(positions))
	for index, position := range positions {
		components = append(components, models.PageComponent{
			ID:       uint(index + 1),
			Type:     "hero",
			Position: position,
		})
	}
	return components
}

func assertContiguousPositions(t *testing.T, components []models.PageComponent) {
	t.Helper()
	for index, component := range components {
		if component.Position != index {
			t.Fatalf("expected position %d at index %d, got %d", index, index, component.Position)
		}
	}
}

func TestReorderAllPairsYieldContiguousPositions(t *testing.T) {
	for from := 0; from < 5; from++ {
		for to := 0; to < 5; to++ {
			original := componentsWithPositions(0, 1, 2, 3, 4)
			result, changed := Reorder(original, from, to)

			if from == to {
				if changed {
					t.Fatalf("from==to (%d) must be a no-op", from)
				}
				continue
			}
			if !changed {
				t.Fatalf("expected change for from=%d to=%d", from, to)
			}
			if len(result) != len(original) {
				t.Fatalf("length must be preserved")
			}
			assertContiguousPositions(t, result)
			if result[to].ID != original[from].ID {
				t.Fatalf("moved component must land at index %d", to)
			}
		}
	}
}

func TestReorderEliminatesPriorGaps(t *testing.T) {
	// 删除操作不重排号，历史数据可能带洞（0,2,5）；重排后必须收敛为 0..N-1
	result, changed := Reorder(componentsWithPositions(0, 2, 5), 2, 0)
	if !changed {
		t.Fatalf("expected change")
	}
	assertContiguousPositions(t, result)
	if result[0].ID != 3 {
		t.Fatalf("expected last component moved to front, got id=%d", result[0].ID)
	}
}

func TestReorderBoundaries(t *testing.T) {
	first, changed := Reorder(componentsWithPositions(0, 1, 2), 2, 0)
	if !changed || first[0].ID != 3 || first[2].ID != 2 {
		t.Fatalf("move to front failed: %+v", first)
	}
	assertContiguousPositions(t, first)

	last, changed := Reorder(componentsWithPositions(0, 1, 2), 0, 2)
	if !changed || last[2].ID != 1 || last[0].ID != 2 {
		t.Fatalf("move to back failed: %+v", last)
	}
	assertContiguousPositions(t, last)
}

func TestReorderOutOfRangeIsNoOp(t *testing.T) {
	original := componentsWithPositions(0, 1, 2)
	for _, indices := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, changed := Reorder(original, indices[0], indices[1])
		if changed {
			t.Fatalf("indices %v must be a no-op", indices)
		}
	}

	_, changed := Reorder(nil, 0, 0)
	if changed {
		t.Fatalf("empty sequence must be a no-op")
	}
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	original := componentsWithPositions(0, 2, 5)
	_, _ = Reorder(original, 0, 2)

	for index, position := range []int{0, 2, 5} {
		if original[index].Position != position {
			t.Fatalf("input slice was mutated at index %d", index)
		}
	}
}
