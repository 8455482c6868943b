package parameter

// Playing Field
// All geometry is expressed in field units; renderers scale to their surface
const (
	FieldWidth  = 800
	FieldHeight = 600

	PaddleWidth  = 15
	PaddleHeight = 100

	// PaddleMargin is the gap between a paddle and its goal edge
	PaddleMargin = 50

	BallSize = 15
)

// Derived paddle placement
const (
	PlayerPaddleX = PaddleMargin
	AIPaddleX     = FieldWidth - PaddleMargin - PaddleWidth
	PaddleStartY  = FieldHeight/2 - PaddleHeight/2
)
