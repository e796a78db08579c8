package units

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }

func TestFactor(t *testing.T) {
	tests := []struct {
		from, to Unit
		want     float64
	}{
		{Inches, Points, 72},
		{Feet, Inches, 12},
		{Yards, Feet, 3},
		{Meters, Centimeters, 100},
		{Centimeters, Millimeters, 10},
		{Inches, Millimeters, 25.4},
		{Inches, SvgPoints, 90},
		{Inches, CSSPoints, 96},
		{Pixels, CSSPoints, 1},
		{Points, Points, 1},
		{Inches, Unit(77), 1},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			if got := Factor(tt.from, tt.to); !near(got, tt.want) {
				t.Errorf("Factor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	if got := Convert(2, Inches, Centimeters); !near(got, 5.08) {
		t.Errorf("2in = %vcm", got)
	}
	got, err := Default().ConvertNamed(36, "pt", "Inches")
	if err != nil || !near(got, .5) {
		t.Errorf("36pt = %v in, err %v", got, err)
	}
	if _, err := Default().ConvertNamed(1, "furlong", "in"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("unknown unit error = %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Unit
	}{
		{"in", Inches},
		{"INCH", Inches},
		{"inches", Inches},
		{"pt", Points},
		{" mm ", Millimeters},
		{"Meters", Meters},
		{"svgpt", SvgPoints},
		{"px", Pixels},
		{"em", Em},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			if err != nil || got != tt.want {
				t.Errorf("Parse = %v, %v; want %v", got, err, tt.want)
			}
		})
	}
	if _, err := Parse("parsec"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Parse(parsec) error = %v", err)
	}
}

func TestString(t *testing.T) {
	if s := Points.String(); s != "pt" {
		t.Errorf("Points = %q", s)
	}
	if s := None.String(); s != "none" {
		t.Errorf("None = %q", s)
	}
	if s := Unit(5000).String(); s != "Unit(5000)" {
		t.Errorf("unknown = %q", s)
	}
}

func TestTableAdd(t *testing.T) {
	tab := NewTable()
	furlong, err := tab.Add("fur", 201.168, "furlong", "furlongs")
	if err != nil {
		t.Fatal(err)
	}
	if furlong < FirstCustom {
		t.Errorf("custom id %d below FirstCustom", furlong)
	}
	if got, ok := tab.Lookup("FURLONG"); !ok || got != furlong {
		t.Errorf("Lookup = %v, %v", got, ok)
	}
	if got := tab.Factor(furlong, Yards); !near(got, 220) {
		t.Errorf("yards per furlong = %v", got)
	}
	if _, ok := Default().Lookup("furlong"); ok {
		t.Error("custom unit leaked into the default table")
	}

	second, err := tab.Add("league", 4828.032)
	if err != nil || second != furlong+1 {
		t.Errorf("second custom = %v, %v", second, err)
	}

	tests := []struct {
		name  string
		scale float64
		want  error
	}{
		{"in", 1, ErrDuplicateName},
		{"Furlongs", 1, ErrDuplicateName},
		{"zero", 0, ErrInvalidScale},
		{"nan", math.NaN(), ErrInvalidScale},
		{"", 1, ErrUnknownUnit},
	}
	for _, tt := range tests {
		if _, err := tab.Add(tt.name, tt.scale); !errors.Is(err, tt.want) {
			t.Errorf("Add(%q, %v) error = %v, want %v", tt.name, tt.scale, err, tt.want)
		}
	}
}

func TestTableInfo(t *testing.T) {
	tab := NewTable()
	if got := tab.Names(Feet); len(got) != 3 || got[0] != "ft" || got[2] != "feet" {
		t.Errorf("Names(Feet) = %v", got)
	}
	if got := tab.Label(Points); got != "72 ppi" {
		t.Errorf("Label(Points) = %q", got)
	}
	if n := len(tab.Units()); n != len(builtins) {
		t.Errorf("len(Units) = %d", n)
	}
	if tab.Default() != Inches {
		t.Errorf("default = %v", tab.Default())
	}
	if err := tab.SetDefault(Unit(999)); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("SetDefault error = %v", err)
	}
}

func TestSetPixelSize(t *testing.T) {
	tab := NewTable()
	if err := tab.SetPixelSize(1.0/300, None); err != nil {
		t.Fatal(err)
	}
	if got := tab.Factor(Inches, Pixels); !near(got, 300) {
		t.Errorf("px per inch = %v", got)
	}
	if err := tab.SetPixelSize(.5, Millimeters); err != nil {
		t.Fatal(err)
	}
	if got := tab.Convert(10, Pixels, Millimeters); !near(got, 5) {
		t.Errorf("10px = %vmm", got)
	}
	if err := tab.SetPixelSize(-1, Inches); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("negative size error = %v", err)
	}
	if got := Factor(Inches, Pixels); !near(got, 96) {
		t.Errorf("default table changed: %v", got)
	}
}

func TestZeroTable(t *testing.T) {
	var tab Table
	if _, ok := tab.Lookup("in"); ok {
		t.Error("zero table has units")
	}
	u, err := tab.Add("step", .75)
	if err != nil || tab.Scale(u) != .75 {
		t.Errorf("Add on zero table = %v, %v", u, err)
	}
}
