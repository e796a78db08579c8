package main

import (
	"fmt"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/units"
)

// space is the real coordinate range shown by the demo.
const space = 10

// setupView turns and zooms the view about the centre of the screen.
func setupView(d *displayer.Displayer, cfg *Config) {
	w, h := d.Backend().Size()
	center := displayer.Pt(float64(w)/2, float64(h)/2)
	if cfg.Rotate != 0 {
		old := d.SetDegrees(true)
		d.Rotate(cfg.Rotate, center)
		d.SetDegrees(old)
	}
	if cfg.Zoom != 1 {
		d.ZoomAt(cfg.Zoom, center)
	}
}

// drawScene draws the demo picture: axes, a fan of ellipses, shapes, a
// grid of things, text and a scale bar.
func drawScene(d *displayer.Displayer, cfg *Config) error {
	d.ClearWindow()
	d.SetFontSize(cfg.FontSize)

	d.SetForeground(displayer.RGB(.7, .7, .7))
	d.Axes(space)

	// Ellipse fan.
	d.SetLineWidth(.05)
	old := d.SetDegrees(true)
	for i := 0; i < 12; i++ {
		t := float64(i) / 12
		d.PushAxes()
		d.Rotate(15*float64(i), d.RealToScreen(displayer.Pt(0, 0)))
		d.SetForeground(displayer.RGB(t, .3, 1-t))
		d.Ellipse(displayer.Pt(0, 0), 4, 1, 0, 0, displayer.StrokeOnly)
		d.PopAxes()
	}
	d.SetDegrees(old)

	d.SetLineWidthScreen(2)
	d.SetForeground(displayer.Black)
	d.SetBackground(displayer.RGB(1, .85, .3))
	d.Rectangle(-9, 5, 3, 3, displayer.FillThenStroke)
	d.SetBackground(displayer.RGB(.5, .8, 1))
	d.Circle(displayer.Pt(7.5, 6.5), 1.5, displayer.FillThenStroke)
	d.Arrow(displayer.Pt(-8, -8), displayer.Pt(1, 1), 0, 4, displayer.RealLength, displayer.HeadRight)

	d.SetDash([]float64{6, 3}, 0)
	d.BezierPath([]displayer.Point{
		{X: -9, Y: -2}, {X: -7, Y: 2}, {X: -5, Y: -4}, {X: -3, Y: 0},
	}, false, displayer.StrokeOnly)
	d.SetDash(nil, 0)

	things := displayer.Things()
	d.SetBackground(displayer.RGB(.9, .95, .9))
	for i, t := range things {
		col, row := i%8, i/8
		p := displayer.Pt(2+float64(col)*.9, -3-float64(row)*.9)
		d.Thing(p, .35, .35, t, displayer.FillThenStroke)
	}

	d.SetForeground(displayer.Black)
	d.TextOut(displayer.Pt(0, space-.5), "Laxkit displayer", displayer.AlignHCenter|displayer.AlignTop)

	return scaleBar(d, cfg.Units)
}

// scaleBar draws a bar one unit long in the lower left corner of the
// screen, at 96 pixels per inch.
func scaleBar(d *displayer.Displayer, name string) error {
	u, err := units.Parse(name)
	if err != nil {
		return err
	}
	px := units.Convert(1, u, units.Pixels)
	_, h := d.Backend().Size()

	old := d.SetRealCoordinates(false)
	defer d.SetRealCoordinates(old)
	y := float64(h) - 20
	d.SetLineWidth(3)
	d.Line(displayer.Pt(20, y), displayer.Pt(20+px, y))
	d.TextOut(displayer.Pt(20, y-6), fmt.Sprintf("1 %s", units.Default().Name(u)), displayer.AlignLeft|displayer.AlignBottom)
	return nil
}
