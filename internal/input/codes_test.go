package input

import "testing"

func TestNamedKeysAreValid(t *testing.T) {
	for k, name := range keyNames {
		if !k.Valid() {
			t.Errorf("key %s (%d) reported invalid", name, k)
		}
		if got, ok := KeyByName(name); !ok || got != k {
			t.Errorf("KeyByName(%q) = %v, %v, want %v", name, got, ok, k)
		}
	}
}

func TestKeyValid(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyUnknown, false},
		{1, false},
		{3, false},
		{KeyA, true},
		{164, true},
		{165, false},
		{175, false},
		{176, true},
		{221, true},
		{222, false},
		{KeyLeftCtrl, true},
		{KeyRightAlt, true},
		{232, false},
		{256, false},
		{257, true},
		{290, true},
		{291, false},
		{KeyCount - 1, false},
		{KeyCount, false},
	}

	for _, tt := range tests {
		if got := tt.key.Valid(); got != tt.want {
			t.Errorf("Key(%d).Valid() = %v, want %v", tt.key, got, tt.want)
		}
	}
}
