package domain

import "testing"

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Text != "版权所有" {
		t.Errorf("unexpected default text: %q", opts.Text)
	}
	if opts.FontSize != 40 {
		t.Errorf("expected font size 40, got %d", opts.FontSize)
	}
	if opts.Opacity != 0.5 {
		t.Errorf("expected opacity 0.5, got %v", opts.Opacity)
	}
	if opts.Padding != 20 {
		t.Errorf("expected padding 20, got %d", opts.Padding)
	}
	if opts.DownsizeTo != 0 {
		t.Errorf("expected downsizing disabled, got %d", opts.DownsizeTo)
	}
	if opts.Shadow.OffsetX != 3 || opts.Shadow.OffsetY != 3 {
		t.Errorf("expected shadow offset (3, 3), got (%d, %d)", opts.Shadow.OffsetX, opts.Shadow.OffsetY)
	}
	if opts.Shadow.Blur != 3 {
		t.Errorf("expected shadow blur 3, got %v", opts.Shadow.Blur)
	}
	if opts.Shadow.Opacity != 0.7 {
		t.Errorf("expected shadow opacity 0.7, got %v", opts.Shadow.Opacity)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*WatermarkOptions)
		wantErr bool
	}{
		{"defaults", func(o *WatermarkOptions) {}, false},
		{"opacity too high", func(o *WatermarkOptions) { o.Opacity = 1.5 }, true},
		{"opacity negative", func(o *WatermarkOptions) { o.Opacity = -0.1 }, true},
		{"shadow opacity too high", func(o *WatermarkOptions) { o.Shadow.Opacity = 2 }, true},
		{"negative padding", func(o *WatermarkOptions) { o.Padding = -1 }, true},
		{"negative blur", func(o *WatermarkOptions) { o.Shadow.Blur = -1 }, true},
		{"opacity bounds inclusive", func(o *WatermarkOptions) { o.Opacity = 0; o.Shadow.Opacity = 1 }, false},
		{"degenerate text and font size pass", func(o *WatermarkOptions) { o.Text = ""; o.FontSize = 0 }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)

			err := opts.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
