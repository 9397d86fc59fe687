package x11

import (
	"github.com/jezek/xgb/xproto"
	"github.com/mj1618/xtree/internal/model"
)

// attributeFields copies the public GetWindowAttributes reply fields.
// Framing fields (sequence, length) are left out.
func attributeFields(r *xproto.GetWindowAttributesReply) model.Fields {
	return model.Fields{
		"backing_store":         r.BackingStore,
		"visual":                uint32(r.Visual),
		"class":                 r.Class,
		"bit_gravity":           r.BitGravity,
		"win_gravity":           r.WinGravity,
		"backing_planes":        r.BackingPlanes,
		"backing_pixel":         r.BackingPixel,
		"save_under":            r.SaveUnder,
		"map_is_installed":      r.MapIsInstalled,
		"map_state":             r.MapState,
		"override_redirect":     r.OverrideRedirect,
		"colormap":              uint32(r.Colormap),
		"all_event_masks":       r.AllEventMasks,
		"your_event_mask":       r.YourEventMask,
		"do_not_propagate_mask": r.DoNotPropagateMask,
	}
}

func geometryFields(r *xproto.GetGeometryReply) model.Fields {
	return model.Fields{
		"depth":        r.Depth,
		"root":         uint32(r.Root),
		"x":            r.X,
		"y":            r.Y,
		"width":        r.Width,
		"height":       r.Height,
		"border_width": r.BorderWidth,
	}
}
