package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/laxkit/displayer"
)

var blendClear = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorZero,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorZero,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Darken and Lighten pick per channel and keep source-over alpha. This is
// exact for opaque colours.
var (
	blendDarken = ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationMin,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
	blendLighten = ebiten.Blend{
		BlendFactorSourceRGB:        ebiten.BlendFactorOne,
		BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
		BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
		BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
		BlendOperationRGB:           ebiten.BlendOperationMax,
		BlendOperationAlpha:         ebiten.BlendOperationAdd,
	}
)

// blendFor maps op to an ebiten blend. ok is false when the GPU blend
// cannot express op and source-over is returned instead.
func blendFor(op displayer.CompositeOp) (b ebiten.Blend, ok bool) {
	switch op {
	case displayer.OpNone, displayer.OpOver:
		return ebiten.BlendSourceOver, true
	case displayer.OpClear:
		return blendClear, true
	case displayer.OpSource:
		return ebiten.BlendCopy, true
	case displayer.OpIn:
		return ebiten.BlendSourceIn, true
	case displayer.OpOut:
		return ebiten.BlendSourceOut, true
	case displayer.OpAtop:
		return ebiten.BlendSourceAtop, true
	case displayer.OpDest:
		return ebiten.BlendDestination, true
	case displayer.OpDestOver:
		return ebiten.BlendDestinationOver, true
	case displayer.OpDestIn:
		return ebiten.BlendDestinationIn, true
	case displayer.OpDestOut:
		return ebiten.BlendDestinationOut, true
	case displayer.OpDestAtop:
		return ebiten.BlendDestinationAtop, true
	case displayer.OpXor:
		return ebiten.BlendXor, true
	case displayer.OpAdd:
		return ebiten.BlendLighter, true
	case displayer.OpDarken:
		return blendDarken, true
	case displayer.OpLighten:
		return blendLighten, true
	}
	return ebiten.BlendSourceOver, false
}
