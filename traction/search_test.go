package traction

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/spatial"
	"github.com/lixenwraith/colossus/spatial/mocks"
	"github.com/lixenwraith/colossus/vmath"
)

func mockRig(t *testing.T, search spatial.Searcher, points ...host.AttachPoint) (*Controller, *host.Host) {
	t.Helper()
	h := host.New(1, quietHost(), host.WithPoints(points...))
	c := New(100, DefaultConfig(), hostMap{1: h}, search, WithPosition(actorStart))
	return c, h
}

func gripOnce(c *Controller) Report {
	c.Submit(Input{GripPressed: true})
	return c.Update(testTick(0))
}

func TestGripPrefersNearestValidPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	search := mocks.NewMockSearcher(ctrl)
	gated := frontPoint
	gated.RequiresApproach = true
	gated.ApproachDirection = vmath.Vec3F{Z: -1}
	gated.ApproachToleranceDeg = 10
	c, h := mockRig(t, search, gated, frontPoint)

	// The gated point is nearer but approached from the wrong side; Sweep must not run
	search.EXPECT().PointsWithin(actorStart, DefaultConfig().Grip.ReachDistance).Return([]spatial.PointCandidate{
		{Ref: spatial.PointRef{Host: 1, Index: 0}, Distance: 1},
		{Ref: spatial.PointRef{Host: 1, Index: 1}, Distance: 1},
	})

	rep := gripOnce(c)
	if !rep.Grip.OK() || c.PointIndex() != 1 {
		t.Fatalf("grip = %+v point = %d", rep.Grip, c.PointIndex())
	}
	if h.SubscriberCount() != 1 {
		t.Errorf("subscribers = %d", h.SubscriberCount())
	}
}

func TestGripFallsBackToSweep(t *testing.T) {
	tests := []struct {
		name       string
		hit        spatial.SurfaceHit
		found      bool
		wantCode   Code
		wantReason event.DenyReason
		wantPoint  int
	}{
		{
			name:       "miss",
			found:      false,
			wantCode:   ResultGripFailed,
			wantReason: event.DenyNoSurface,
		},
		{
			name:       "static geometry",
			hit:        spatial.SurfaceHit{Position: vmath.Vec3F{Z: -5}, Normal: vmath.Vec3F{Z: -1}},
			found:      true,
			wantCode:   ResultGripFailed,
			wantReason: event.DenySurfaceNotClimbable,
		},
		{
			name:       "unknown host",
			hit:        spatial.SurfaceHit{Position: vmath.Vec3F{Z: -5}, Normal: vmath.Vec3F{Z: -1}, Host: 9, HasHost: true},
			found:      true,
			wantCode:   ResultGripFailed,
			wantReason: event.DenySurfaceNotClimbable,
		},
		{
			name:      "host point near hit",
			hit:       spatial.SurfaceHit{Position: vmath.Vec3F{Y: 3, Z: -5}, Normal: vmath.Vec3F{Z: -1}, Host: 1, HasHost: true},
			found:     true,
			wantCode:  ResultOK,
			wantPoint: 0,
		},
		{
			name:      "raw surface",
			hit:       spatial.SurfaceHit{Position: vmath.Vec3F{Y: -9, Z: -5}, Normal: vmath.Vec3F{Y: -1, Z: -1}, Host: 1, HasHost: true},
			found:     true,
			wantCode:  ResultOK,
			wantPoint: event.NoPoint,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			search := mocks.NewMockSearcher(ctrl)
			c, _ := mockRig(t, search, frontPoint)

			gomock.InOrder(
				search.EXPECT().PointsWithin(gomock.Any(), gomock.Any()).Return(nil),
				search.EXPECT().Sweep(actorStart, vmath.V3FForward, DefaultConfig().Grip.ReachDistance).Return(tt.hit, tt.found),
			)

			rep := gripOnce(c)
			if rep.Grip.Code != tt.wantCode || rep.Grip.Reason != tt.wantReason {
				t.Fatalf("grip = %+v, want %v/%v", rep.Grip, tt.wantCode, tt.wantReason)
			}
			if tt.wantCode != ResultOK {
				if c.Attached() {
					t.Error("failed grip attached")
				}
				return
			}
			if c.PointIndex() != tt.wantPoint {
				t.Errorf("point = %d, want %d", c.PointIndex(), tt.wantPoint)
			}
			if tt.wantPoint == event.NoPoint && !vmath.V3FApproxEqual(c.SurfaceNormal(), vmath.V3FNormalize(tt.hit.Normal), 1e-12) {
				t.Errorf("raw normal = %+v", c.SurfaceNormal())
			}
		})
	}
}

func TestGripGatesSkipSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: any search call fails the test
	search := mocks.NewMockSearcher(ctrl)
	c, _ := mockRig(t, search, frontPoint)
	c.depleted = true

	rep := gripOnce(c)
	if rep.Grip.Reason != event.DenyStaminaDepleted {
		t.Errorf("grip = %+v", rep.Grip)
	}
}
