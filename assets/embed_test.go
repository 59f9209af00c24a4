package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"adventurer.png", "images/adventurer.png"},
		{"images/adventurer.png", "images/adventurer.png"},
		{"assets/images/adventurer.png", "images/adventurer.png"},
		{"/home/dev/adventurer/assets/images/adventurer.png", "images/adventurer.png"},
		{"/tmp/adventurer.png", "images/adventurer.png"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := cleanAssetPath(tc.in); got != tc.want {
				t.Fatalf("cleanAssetPath(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDecodeAdventurerSheet(t *testing.T) {
	img, err := DecodeImage("adventurer.png")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 6*48 || b.Dy() != 10*48 {
		t.Fatalf("expected 288x480 sheet, got %dx%d", b.Dx(), b.Dy())
	}
	if _, err := DecodeImage("missing.png"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
