package shade

import (
	"image/color"
	"math"
	"testing"
)

func approx(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps
}

func TestOverlay(t *testing.T) {
	tests := []struct {
		name        string
		base, light Color
		want        Color
	}{
		{"white light keeps white", White, White, White},
		{"black light makes black", RGB(200, 100, 50), Black, Black},
		{"half light keeps black", RGB(0, 0, 0), RGB(127.5, 127.5, 127.5), RGB(0, 0, 0)},
		{"dark light darkens", RGB(255, 255, 255), RGB(51, 51, 51), RGB(102, 102, 102)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlay(tt.base, tt.light); !approx(got, tt.want) {
				t.Errorf("Overlay(%v, %v) = %v, want %v", tt.base, tt.light, got, tt.want)
			}
		})
	}
}

func TestOverlayThreshold(t *testing.T) {
	// b >= 0.5 uses the screen branch: 1 - 2(1-a)(1-b).
	got := Overlay(RGB(51, 51, 51), RGB(204, 204, 204))
	want := (1 - 2*(1-0.2)*(1-0.8)) * 255
	if math.Abs(got.R-want) > 1e-9 {
		t.Errorf("Overlay screen branch = %v, want %v", got.R, want)
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB(200, 10, 0), RGB(100, 20, 0), RGB(10, 10, 10))
	if got != RGB(255, 40, 10) {
		t.Errorf("Add() = %v, want (255, 40, 10)", got)
	}
}

func TestLerpFloorsAndUsesAbs(t *testing.T) {
	got := Black.Lerp(RGB(100, 255, 7), 0.5)
	if got != RGB(50, 127, 3) {
		t.Errorf("Lerp(0.5) = %v, want (50, 127, 3)", got)
	}
	if got := Black.Lerp(White, -2); got != White {
		t.Errorf("Lerp(-2) = %v, want clamped white", got)
	}
}

func TestMultiplyScreen(t *testing.T) {
	if got := Multiply(White, RGB(51, 102, 0)); !approx(got, RGB(51, 102, 0)) {
		t.Errorf("Multiply(white, c) = %v, want c", got)
	}
	if got := Screen(Black, RGB(51, 102, 0)); !approx(got, RGB(51, 102, 0)) {
		t.Errorf("Screen(black, c) = %v, want c", got)
	}
}

func TestSquash(t *testing.T) {
	got := Squash(RGB(0, 255, 128), RGB(10, 10, 10))
	want := RGB(10, 255, 10+245*128.0/255)
	if !approx(got, want) {
		t.Errorf("Squash() = %v, want %v", got, want)
	}
	if got := Squash(RGB(40, 80, 120), Black); !approx(got, RGB(40, 80, 120)) {
		t.Errorf("Squash(c, black) = %v, want c", got)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(RGB(0, 10, 20), RGB(10, 20, 30)); got != RGB(5, 15, 25) {
		t.Errorf("Average() = %v, want (5, 15, 25)", got)
	}
	if got := Average(); got != Black {
		t.Errorf("Average() of nothing = %v, want black", got)
	}
}

func TestRGBAConversion(t *testing.T) {
	c := RGB(300, -5, 128.9).RGBA()
	if c != (color.RGBA{255, 0, 128, 255}) {
		t.Errorf("RGBA() = %v", c)
	}
	if got := FromRGBA(color.RGBA{10, 20, 30, 255}); got != RGB(10, 20, 30) {
		t.Errorf("FromRGBA() = %v", got)
	}
}
