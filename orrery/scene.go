package orrery

const (
	WorldWidth  = 10000
	WorldHeight = 10000
)

// Scene owns the viewport and the root of the body tree.
type Scene struct {
	View

	root   *Body
	images ImageSource
	width  float64
	height float64
	ticks  uint64
}

// NewScene centers the view on the world and takes ownership of root.
func NewScene(root *Body) *Scene {
	return &Scene{
		View: View{
			CenterX: WorldWidth / 2,
			CenterY: WorldHeight / 2,
			Scale:   DefaultScale,
		},
		root:   root,
		width:  WorldWidth,
		height: WorldHeight,
	}
}

// SetImages configures where body images are resolved. A nil source draws
// every body with its fallback color.
func (s *Scene) SetImages(src ImageSource) { s.images = src }

func (s *Scene) Root() *Body { return s.root }

// Ticks reports how many times Tick has run.
func (s *Scene) Ticks() uint64 { return s.ticks }

// Tick applies the held control and draws one frame.
func (s *Scene) Tick(surface Surface) {
	s.Advance()
	s.Draw(surface)
	s.ticks++
}

// Draw renders the body tree with the current transform. Angles advance
// unless the view is paused.
func (s *Scene) Draw(surface Surface) {
	surface.Clear()

	w, h := surface.Size()
	scale, tx, ty := s.Transform(w, h)
	surface.SetTransform(scale, tx, ty)
	defer surface.ResetTransform()

	if s.root == nil {
		return
	}
	f := Frame{Surface: surface, Images: s.images, Paused: s.Paused}
	s.root.Draw(&f, s.width/2, s.height/2)
}
