package sgl

import "testing"

func TestSphereOutsideSceneBlockIsInvalidOperation(t *testing.T) {
	mgr, _ := newTestManager(4, 4)
	mgr.Sphere(0, 0, 0, 1)
	if got := mgr.GetError(); got != InvalidOperation {
		t.Errorf("GetError() = %v, want InvalidOperation", got)
	}
}

func TestSphereNonPositiveRadiusIsInvalidValue(t *testing.T) {
	mgr, _ := newTestManager(4, 4)
	mgr.BeginScene()
	mgr.Sphere(0, 0, 0, 0)
	if got := mgr.GetError(); got != InvalidValue {
		t.Errorf("GetError() = %v, want InvalidValue", got)
	}
}

func TestPrimitiveBindsToLatestMaterial(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.BeginScene()
	mgr.Material(1, 0, 0, 1, 0, 1, 0, 1)
	mgr.Sphere(0, 0, 0, 1)
	mgr.Material(0, 1, 0, 1, 0, 1, 0, 1)
	mgr.Sphere(1, 1, 1, 1)
	mgr.EndScene()

	ctx := mgr.contexts[id]
	s0 := ctx.scene.Primitives[0].(Sphere)
	s1 := ctx.scene.Primitives[1].(Sphere)
	if s0.MaterialID != 0 {
		t.Errorf("first sphere bound to material %d, want 0", s0.MaterialID)
	}
	if s1.MaterialID != 1 {
		t.Errorf("second sphere bound to material %d, want 1", s1.MaterialID)
	}
}

func TestBeginSceneClearsPrimitivesButPreservesEnvMap(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.BeginScene()
	mgr.Material(1, 1, 1, 1, 0, 1, 0, 1)
	mgr.Sphere(0, 0, 0, 1)
	mgr.EnvironmentMap(1, 1, []float32{0.1, 0.2, 0.3})
	mgr.EndScene()

	mgr.BeginScene()
	ctx := mgr.contexts[id]
	if len(ctx.scene.Primitives) != 0 {
		t.Error("BeginScene did not clear primitives")
	}
	if len(ctx.scene.Materials) != 0 {
		t.Error("BeginScene did not clear materials")
	}
	if ctx.scene.EnvMap == nil {
		t.Error("BeginScene cleared the environment map, which should persist")
	}
}

func TestSceneTriangleFromBeginEndTruncatesToFirstThree(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.BeginScene()
	mgr.Material(1, 1, 1, 1, 0, 1, 0, 1)
	mgr.Begin(Points) // mode is irrelevant inside a scene block
	mgr.Vertex3f(0, 0, 0)
	mgr.Vertex3f(1, 0, 0)
	mgr.Vertex3f(0, 1, 0)
	mgr.Vertex3f(1, 1, 0) // ignored
	mgr.End()
	mgr.EndScene()

	ctx := mgr.contexts[id]
	if len(ctx.scene.Primitives) != 1 {
		t.Fatalf("scene has %d primitives, want 1", len(ctx.scene.Primitives))
	}
	tri := ctx.scene.Primitives[0].(Triangle)
	if tri.Points[2] != NewVertex3(0, 1, 0) {
		t.Errorf("third triangle vertex = %v, want (0,1,0)", tri.Points[2])
	}
}

func TestEndSceneOutsideSceneBlockIsInvalidOperation(t *testing.T) {
	mgr, _ := newTestManager(4, 4)
	mgr.EndScene()
	if got := mgr.GetError(); got != InvalidOperation {
		t.Errorf("GetError() = %v, want InvalidOperation", got)
	}
}

func TestMaterialLegalOutsideSceneBlock(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.Material(1, 0, 0, 1, 0, 1, 0, 1)
	if got := mgr.GetError(); got != NoError {
		t.Errorf("GetError() = %v, want NoError (Material is legal outside a scene block)", got)
	}
	ctx := mgr.contexts[id]
	if len(ctx.scene.Materials) != 1 {
		t.Fatalf("scene has %d materials, want 1", len(ctx.scene.Materials))
	}
}

func TestEmissiveMaterialLegalOutsideSceneBlock(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.EmissiveMaterial(1, 1, 1, 0, 0, 1, 0, 1)
	if got := mgr.GetError(); got != NoError {
		t.Errorf("GetError() = %v, want NoError (EmissiveMaterial is legal outside a scene block)", got)
	}
	ctx := mgr.contexts[id]
	if len(ctx.scene.EmissiveMaterials) != 1 {
		t.Fatalf("scene has %d emissive materials, want 1", len(ctx.scene.EmissiveMaterials))
	}
}

func TestEnvironmentMapLegalOutsideSceneBlock(t *testing.T) {
	mgr, id := newTestManager(4, 4)
	mgr.EnvironmentMap(1, 1, []float32{0.5, 0.5, 0.5})
	if got := mgr.GetError(); got != NoError {
		t.Errorf("GetError() = %v, want NoError (EnvironmentMap is legal outside a scene block)", got)
	}
	if mgr.contexts[id].scene.EnvMap == nil {
		t.Error("EnvironmentMap did not set the environment map")
	}
}

func TestMaterialInsideBeginEndIsInvalidOperation(t *testing.T) {
	mgr, _ := newTestManager(4, 4)
	mgr.Begin(Points)
	mgr.Material(1, 0, 0, 1, 0, 1, 0, 1)
	if got := mgr.GetError(); got != InvalidOperation {
		t.Errorf("GetError() = %v, want InvalidOperation", got)
	}
}
