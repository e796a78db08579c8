package displayer

import "testing"

func TestParseCompositeOp(t *testing.T) {
	tests := []struct {
		in      string
		want    CompositeOp
		wantErr bool
	}{
		{"Over", OpOver, false},
		{"copy", OpOver, false},
		{"dest_over", OpDestOver, false},
		{"DestOver", OpDestOver, false},
		{"color-dodge", OpColorDodge, false},
		{"Hsl_luminosity", OpHSLLuminosity, false},
		{"12", OpXor, false},
		{" 3 ", OpOver, false},
		{"99", OpNone, true},
		{"-1", OpNone, true},
		{"sparkle", OpNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCompositeOp(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCompositeOp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCompositeOp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompositeOpStringParses(t *testing.T) {
	for op := OpNone; op < opCount; op++ {
		got, err := ParseCompositeOp(op.String())
		if err != nil || got != op {
			t.Errorf("ParseCompositeOp(%q) = %v, %v; want %v", op.String(), got, err, op)
		}
	}
	if got := CompositeOp(200).String(); got != "CompositeOp(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestIsPorterDuff(t *testing.T) {
	if !OpXor.IsPorterDuff() || !OpSaturate.IsPorterDuff() {
		t.Error("Xor and Saturate are Porter-Duff operators")
	}
	if OpMultiply.IsPorterDuff() || OpNone.IsPorterDuff() {
		t.Error("Multiply and None are not Porter-Duff operators")
	}
}
