package render

import "metromap/internal/network"

// Offset is a compass direction from the marker centre: DX, DY in {-1, 0, 1},
// screen y growing downwards.
type Offset struct {
	DX, DY int
}

var anchorOffsets = map[network.LabelPosition]Offset{
	network.LabelTop:         {0, -1},
	network.LabelBottom:      {0, 1},
	network.LabelLeft:        {-1, 0},
	network.LabelRight:       {1, 0},
	network.LabelTopLeft:     {-1, -1},
	network.LabelTopRight:    {1, -1},
	network.LabelBottomLeft:  {-1, 1},
	network.LabelBottomRight: {1, 1},
}

// AnchorOffset returns the direction of a label anchor. Unknown or empty
// positions resolve to right.
func AnchorOffset(pos network.LabelPosition) Offset {
	if o, ok := anchorOffsets[pos]; ok {
		return o
	}
	return anchorOffsets[network.LabelRight]
}

// labelOrigin places a label of width w next to the marker rectangle m.
// Side labels keep a one cell gap; corner labels sit flush against the marker
// on the row above or below; top and bottom labels are centred.
func labelOrigin(m Rect, pos network.LabelPosition, w int) (x, y int) {
	o := AnchorOffset(pos)
	cx := (m.X0 + m.X1) / 2
	y = m.Y0 + o.DY
	gap := 0
	if o.DY == 0 {
		gap = 1
	}
	switch o.DX {
	case 0:
		x = cx - w/2
	case 1:
		x = m.X1 + 1 + gap
	case -1:
		x = m.X0 - gap - w
	}
	return x, y
}
