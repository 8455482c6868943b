package component

import (
	"testing"

	"github.com/lixenwraith/pong/core"
	"github.com/lixenwraith/pong/parameter"
)

func TestPaddleMoveStaysInBounds(t *testing.T) {
	field := core.DefaultField()
	p := NewPaddle(field, parameter.PlayerPaddleX, 2, 1.0)

	p.Move(DirUp)
	if p.Rect.Top() != 0 {
		t.Errorf("Top = %v, want 0", p.Rect.Top())
	}
	p.Move(DirUp)
	if p.Rect.Top() != 0 {
		t.Errorf("pinned paddle moved to %v", p.Rect.Top())
	}

	p.Rect.Y = field.Height - parameter.PaddleHeight - 2
	p.Move(DirDown)
	if p.Rect.Bottom() != field.Height {
		t.Errorf("Bottom = %v, want %v", p.Rect.Bottom(), field.Height)
	}
}

func TestPaddleMoveUsesSpeed(t *testing.T) {
	p := NewPaddle(core.DefaultField(), parameter.PlayerPaddleX, 250, 1.5)
	if p.Speed() != 7.5 {
		t.Fatalf("Speed = %v, want 7.5", p.Speed())
	}
	p.Move(DirDown)
	if p.Rect.Y != 257.5 {
		t.Errorf("Y = %v, want 257.5", p.Rect.Y)
	}
}

func TestPaddleSetPosition(t *testing.T) {
	field := core.DefaultField()
	p := NewPaddle(field, parameter.PlayerPaddleX, 250, 1.0)

	tests := []struct {
		y       float64
		wantTop float64
	}{
		{300, 250},
		{0, 0},
		{-100, 0},
		{600, 500},
		{10_000, 500},
	}
	for _, tt := range tests {
		p.SetPosition(tt.y)
		if p.Rect.Top() != tt.wantTop {
			t.Errorf("SetPosition(%v): Top = %v, want %v", tt.y, p.Rect.Top(), tt.wantTop)
		}
	}
}
