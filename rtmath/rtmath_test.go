package rtmath

import (
	"math"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := Scalar(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Right x Up = Back in this right-handed, camera-looks-down--Z convention.
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Back {
		t.Errorf("Cross: expected %v, got %v", Vec3Back, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	length := normalized.Length()
	if math.Abs(float64(length-1)) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestMat4IdentityMul(t *testing.T) {
	id := Mat4Identity()
	v := NewVec3(1, 2, 3)
	result := id.MulPoint(v)
	if result != v {
		t.Errorf("Identity.MulPoint: expected %v, got %v", v, result)
	}
}

func TestMat4TranslationMulPoint(t *testing.T) {
	m := Mat4Translation(NewVec3(1, 2, 3))
	result := m.MulPoint(Vec3Zero)
	expected := NewVec3(1, 2, 3)
	if result != expected {
		t.Errorf("Translation.MulPoint: expected %v, got %v", expected, result)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Mat4Translation(NewVec3(1, -2, 3)).Mul(Mat4RotationY(0.7)).Mul(Mat4Scale(NewVec3(2, 1, 0.5)))
	inv := m.Inverse()
	roundTrip := m.Mul(inv)
	id := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math.Abs(float64(roundTrip[i][j]-id[i][j])) > 1e-3 {
				t.Fatalf("Mul(Inverse) not identity at [%d][%d]: got %v", i, j, roundTrip[i][j])
			}
		}
	}
}

func TestQuaternionToMat4MatchesRotateVector(t *testing.T) {
	q := QuaternionFromAxisAngle(Vec3Up, math.Pi/2)
	v := NewVec3(1, 0, 0)

	viaQuat := q.RotateVector(v)
	viaMat := q.ToMat4().MulDirection(v)

	if viaQuat.Distance(viaMat) > 1e-4 {
		t.Errorf("RotateVector/ToMat4 mismatch: %v vs %v", viaQuat, viaMat)
	}
}
