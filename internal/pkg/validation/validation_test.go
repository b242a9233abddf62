package validation

import (
	"math"
	"strings"
	"testing"
)

type priced struct {
	Price *float64 `validate:"required,finite,gt=0"`
}

type imaged struct {
	Image string `validate:"required,imageref"`
}

func ptr(f float64) *float64 { return &f }

func TestFinite(t *testing.T) {
	v := New()

	cases := []struct {
		name  string
		price *float64
		ok    bool
	}{
		{"positive", ptr(9.99), true},
		{"zero", ptr(0), false},
		{"negative", ptr(-1), false},
		{"nan", ptr(math.NaN()), false},
		{"inf", ptr(math.Inf(1)), false},
		{"neg inf", ptr(math.Inf(-1)), false},
		{"missing", nil, false},
	}

	for _, tc := range cases {
		err := v.Struct(priced{Price: tc.price})
		if (err == nil) != tc.ok {
			t.Errorf("%s: expected ok=%v, got err=%v", tc.name, tc.ok, err)
		}
	}
}

func TestImageRef(t *testing.T) {
	v := New()

	cases := []struct {
		image string
		ok    bool
	}{
		{"https://x/y.png", true},
		{"https://images.unsplash.com/photo-1?w=500&q=80", true},
		{"/uploads/1700000000000-abc.webp", true},
		{"/uploads/PHOTO.JPG", true},
		{"/uploads/file.txt", false},
		{"uploads/file.png", false},
		{"not a url", false},
		{"", false},
	}

	for _, tc := range cases {
		err := v.Struct(imaged{Image: tc.image})
		if (err == nil) != tc.ok {
			t.Errorf("image=%q: expected ok=%v, got err=%v", tc.image, tc.ok, err)
		}
	}
}

func TestFirstError(t *testing.T) {
	v := New()

	field, msg, ok := FirstError(v.Struct(priced{Price: ptr(-5)}))
	if !ok {
		t.Fatal("expected validator error")
	}
	if field != "price" {
		t.Errorf("expected field price, got %q", field)
	}
	if !strings.Contains(msg, "greater than 0") {
		t.Errorf("unexpected message %q", msg)
	}
}
