package blend

import "testing"

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  [4]byte
		dst  [4]byte
		want [4]byte
	}{
		{"opaque replaces", [4]byte{255, 0, 0, 255}, [4]byte{0, 0, 255, 255}, [4]byte{255, 0, 0, 255}},
		{"transparent keeps", [4]byte{0, 0, 0, 0}, [4]byte{10, 20, 30, 40}, [4]byte{10, 20, 30, 40}},
		{"half red over white", [4]byte{128, 0, 0, 128}, [4]byte{255, 255, 255, 255}, [4]byte{255, 127, 127, 255}},
		{"half over empty", [4]byte{0, 64, 0, 64}, [4]byte{0, 0, 0, 0}, [4]byte{0, 64, 0, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SourceOver(tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			if got := [4]byte{r, g, b, a}; got != tt.want {
				t.Errorf("SourceOver = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoverage(t *testing.T) {
	r, g, b, a := Coverage(255, 128, 0, 255, 255)
	if r != 255 || g != 128 || b != 0 || a != 255 {
		t.Errorf("full coverage changed color: %d %d %d %d", r, g, b, a)
	}

	r, g, b, a = Coverage(255, 128, 0, 255, 128)
	if r != 128 || g != 64 || b != 0 || a != 128 {
		t.Errorf("half coverage = %d %d %d %d, want 128 64 0 128", r, g, b, a)
	}

	_, _, _, a = Coverage(255, 255, 255, 255, 0)
	if a != 0 {
		t.Errorf("zero coverage alpha = %d, want 0", a)
	}
}
