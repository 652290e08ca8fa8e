package blocks

import (
	"reflect"
	"testing"

	"github.com/maison-next/internal/models"
)

func TestDefaultsForUnknownTypeReturnsEmpty(t *testing.T) {
	got := DefaultsFor("carousel")
	if got == nil {
		t.Fatalf("expected empty map, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map for unknown type, got %v", got)
	}
}

func TestDefaultsForReturnsCopy(t *testing.T) {
	first := DefaultsFor("hero")
	first["title"] = "mutated"

	second := DefaultsFor("hero")
	if second["title"] != "ELEGANCE REDEFINED" {
		t.Fatalf("mutating a returned map must not affect the defaults table, got %q", second["title"])
	}
}

func TestDefaultsForKnownTypes(t *testing.T) {
	for _, componentType := range Types() {
		if !IsValidType(componentType) {
			t.Fatalf("type %q should be valid", componentType)
		}
		if len(DefaultsFor(componentType)) == 0 {
			t.Fatalf("type %q should have defaults", componentType)
		}
	}
	if IsValidType("sidebar") {
		t.Fatalf("unexpected valid type")
	}
}

func TestMergeConfigStoredWins(t *testing.T) {
	stored := models.JSON{
		"title":  "SUMMER DROP",
		"custom": "kept",
	}
	merged := MergeConfig("hero", stored)

	if merged["title"] != "SUMMER DROP" {
		t.Fatalf("stored value must win on collision, got %v", merged["title"])
	}
	if merged["subtitle"] != "The new collection has arrived." {
		t.Fatalf("missing field must come from defaults, got %v", merged["subtitle"])
	}
	if merged["custom"] != "kept" {
		t.Fatalf("unrecognized stored field must survive the merge")
	}
	// 后续新增的默认字段对历史配置自动生效
	if _, ok := merged["overlayOpacity"]; !ok {
		t.Fatalf("expected schema-evolution field to appear with its default")
	}
}

func TestMergeConfigIdempotent(t *testing.T) {
	stored := models.JSON{"title": "A", "titleColor": "#ff0000"}
	once := MergeConfig("hero", stored)
	twice := MergeConfig("hero", once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge must be idempotent:\nonce=%v\ntwice=%v", once, twice)
	}
}

func TestInstanceConfigStampsVariant(t *testing.T) {
	config := InstanceConfig("hero", "split_left", map[string]interface{}{
		"title": "NEW SEASON",
	})

	if config["variant"] != "split_left" {
		t.Fatalf("expected variant stamp, got %v", config["variant"])
	}
	if config["title"] != "NEW SEASON" {
		t.Fatalf("override must win over defaults, got %v", config["title"])
	}
	if config["textAlign"] != "left" {
		t.Fatalf("variant preset must apply, got %v", config["textAlign"])
	}
	if config["subtitle"] != "The new collection has arrived." {
		t.Fatalf("untouched fields must come from defaults")
	}
}

func TestInstanceConfigEmptyVariantFallsBackToDefault(t *testing.T) {
	config := InstanceConfig("footer", "", nil)
	if config["variant"] != "default" {
		t.Fatalf("expected default variant stamp, got %v", config["variant"])
	}
	if config["copyrightText"] == "" {
		t.Fatalf("expected footer defaults to be present")
	}
}

func TestVariantsForAlwaysIncludesDefault(t *testing.T) {
	for _, componentType := range Types() {
		variants := VariantsFor(componentType)
		found := false
		for _, name := range variants {
			if name == "default" {
				found = true
			}
		}
		if !found {
			t.Fatalf("type %q missing default variant", componentType)
		}
	}
}

func TestRecognizedKeysCoverDefaultsAndPresets(t *testing.T) {
	keys := RecognizedKeys("hero")
	for _, expected := range []string{"variant", "title", "overlayOpacity", "textAlign"} {
		if !keys[expected] {
			t.Fatalf("expected %q to be recognized for hero", expected)
		}
	}
	if keys["nonsense"] {
		t.Fatalf("unexpected recognized key")
	}
}
