package detrand

import "testing"

func TestHash32_Deterministic(t *testing.T) {
	key := "TechCrunch|ai|https://techcrunch.com/x"

	first := Hash32(key)
	second := Hash32(key)

	if first != second {
		t.Errorf("Hash32 returned %d then %d for the same key", first, second)
	}
}

func TestHash32_DistinctKeys(t *testing.T) {
	if Hash32("bbc|news|a") == Hash32("bbc|news|b") {
		t.Error("Hash32 returned the same value for distinct keys")
	}
}

func TestUnit_Range(t *testing.T) {
	keys := []string{"", "a", "TechCrunch", "BBC News|iphone|https://bbc.co.uk/1"}

	for _, key := range keys {
		v := Unit(key)
		if v < 0 || v >= 1 {
			t.Errorf("Unit(%q) = %v, want value in [0, 1)", key, v)
		}
	}
}

func TestInRange_Bounds(t *testing.T) {
	keys := []string{"x", "y", "z", "The Verge|crypto|https://theverge.com/2"}

	for _, key := range keys {
		v := InRange(key, 0.50, 0.60)
		if v < 0.50 || v >= 0.60 {
			t.Errorf("InRange(%q, 0.50, 0.60) = %v, out of bounds", key, v)
		}
	}
}

func TestInRange_Deterministic(t *testing.T) {
	first := InRange("source|kw|url", 0.35, 0.38)
	second := InRange("source|kw|url", 0.35, 0.38)

	if first != second {
		t.Errorf("InRange returned %v then %v for the same key", first, second)
	}
}

func TestInRange_SaltChangesValue(t *testing.T) {
	plain := InRange("source|kw|url", 0, 1)
	salted := InRange("source|kw|url|drop", 0, 1)

	if plain == salted {
		t.Error("salted key should map to a different value")
	}
}
