package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/geodetic/internal/domain"
)

func almost(a, b, eps float64) bool {
	if a > b {
		return a-b < eps
	}
	return b-a < eps
}

func TestLatLonAltToECEF_Fixtures(t *testing.T) {
	tests := []struct {
		lat, lon, alt float64
		x, y, z       float64
	}{
		{0, 0, 0, 6378137.0, 0, 0},
		{90, 90, 0, 0, 0, 6356752.3},
		{-90, math.Copysign(0, -1), 0, 0, 0, -6356752.3},
		{35.6895, 139.6917, 10, -3954850.4855, 3354942.189, 3700270.608}, // Токио
		{45.555, 100.0909, 30, -783853.6869, 4404581.265, 4530773.044},
		{45.555, 100.0909, 20, -783852.4600, 4404574.371, 4530765.904},
	}
	for _, tt := range tests {
		p := LatLonAltToECEF(tt.lat, tt.lon, tt.alt)
		if !almost(p.X, tt.x, 0.1) || !almost(p.Y, tt.y, 0.1) || !almost(p.Z, tt.z, 0.1) {
			t.Errorf("LatLonAltToECEF(%v,%v,%v) = (%f,%f,%f), want (%f,%f,%f)",
				tt.lat, tt.lon, tt.alt, p.X, p.Y, p.Z, tt.x, tt.y, tt.z)
		}
	}
}

func TestLatLonToECEF_DefaultHeight(t *testing.T) {
	got := LatLonToECEF(45, 45)
	want := LatLonAltToECEF(45, 45, 0)
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestLatLonToECEF_EquatorRadius(t *testing.T) {
	// На экваторе расстояние до центра всегда равно a, независимо от долготы.
	for _, lon := range []float64{0, 45, 90, -120, 180} {
		d := LatLonToECEF(0, lon).Vector().Norm()
		if !almost(d, EquatorialRadius, 0.1) {
			t.Errorf("lon=%v: want %.1f got %.3f", lon, EquatorialRadius, d)
		}
	}
}

func TestLatLonToECEF_SurfaceRadius(t *testing.T) {
	// Distance from origin matches the ellipse radius r(φ) = sqrt(((a²cosφ)²+(b²sinφ)²)/((a cosφ)²+(b sinφ)²)).
	for _, lat := range []float64{-75, -30, 10, 45, 60, 89} {
		phi := lat * degToRad
		c, s := math.Cos(phi), math.Sin(phi)
		a2, b2 := EquatorialRadius*EquatorialRadius, PolarRadius*PolarRadius
		want := math.Sqrt((a2*a2*c*c + b2*b2*s*s) / (a2*c*c + b2*s*s))

		got := LatLonToECEF(lat, 17).Vector().Norm()
		if !almost(got, want, 0.1) {
			t.Errorf("lat=%v: want %.3f got %.3f", lat, want, got)
		}
	}
}

func TestLatLonToECEF_Poles(t *testing.T) {
	for _, tt := range []struct{ lat, z float64 }{{90, PolarRadius}, {-90, -PolarRadius}} {
		p := LatLonToECEF(tt.lat, 33)
		if !almost(p.X, 0, 0.1) || !almost(p.Y, 0, 0.1) || !almost(p.Z, tt.z, 0.1) {
			t.Errorf("lat=%v: want (0,0,%f) got (%f,%f,%f)", tt.lat, tt.z, p.X, p.Y, p.Z)
		}
	}
}

func TestLatLonAltToECEF_OutOfRangeIsPermissive(t *testing.T) {
	p := LatLonAltToECEF(120, 0, 0)
	if math.IsNaN(p.X) || math.IsNaN(p.Z) {
		t.Fatalf("expected finite output for lat=120, got %+v", p)
	}

	nan := LatLonAltToECEF(math.NaN(), 0, 0)
	if !math.IsNaN(nan.X) {
		t.Fatalf("expected NaN to propagate, got %+v", nan)
	}
}

func TestGeodeticPoint_ToECEF(t *testing.T) {
	p, err := GeodeticPoint{Lat: 35.6895, Lon: 139.6917, Alt: 10}.ToECEF()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almost(p.X, -3954850.4855, 0.1) {
		t.Errorf("x = %f", p.X)
	}

	for _, lat := range []float64{-90.0001, 91, math.NaN()} {
		_, err := GeodeticPoint{Lat: lat}.ToECEF()
		if !errors.Is(err, domain.ErrInvalidLatitude) {
			t.Errorf("lat=%v: expected ErrInvalidLatitude, got %v", lat, err)
		}
	}
}

func TestECEFToGeodetic_Roundtrip(t *testing.T) {
	tests := []GeodeticPoint{
		{0, 0, 0},
		{55.7558, 37.6173, 150},   // Москва
		{40.7128, -74.0060, 10},   // Нью-Йорк
		{-33.8688, 151.2093, 58},  // Сидней
		{35.6895, 139.6917, 10},   // Токио
		{85.0, 179.99, 1200},      // Высокие широты
		{-90, 0, 0},               // Южный полюс
		{0, 180, 9000},            // Тихий океан
	}
	for _, tt := range tests {
		got := ECEFToGeodetic(LatLonAltToECEF(tt.Lat, tt.Lon, tt.Alt))
		if !almost(got.Lat, tt.Lat, 1e-7) {
			t.Errorf("lat roundtrip %+v: got %f", tt, got.Lat)
		}
		// Не проверяем lon на полюсах (не определён)
		if math.Abs(tt.Lat) < 89.9 && !almost(got.Lon, tt.Lon, 1e-7) {
			t.Errorf("lon roundtrip %+v: got %f", tt, got.Lon)
		}
		if !almost(got.Alt, tt.Alt, 1e-3) {
			t.Errorf("alt roundtrip %+v: got %f", tt, got.Alt)
		}
	}
}

func TestGeodeticPoint_Validate(t *testing.T) {
	tests := []struct {
		name  string
		p     GeodeticPoint
		valid bool
	}{
		{"origin", GeodeticPoint{}, true},
		{"north pole", GeodeticPoint{Lat: 90, Lon: 180}, true},
		{"south pole", GeodeticPoint{Lat: -90, Lon: -180}, true},
		{"wrapped longitude", GeodeticPoint{Lat: 10, Lon: 200}, true},
		{"negative wrapped longitude", GeodeticPoint{Lat: 10, Lon: -540}, true},
		{"above 90", GeodeticPoint{Lat: 91}, false},
		{"below -90", GeodeticPoint{Lat: -91}, false},
		{"nan", GeodeticPoint{Lat: math.NaN()}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.valid && !errors.Is(err, domain.ErrInvalidLatitude) {
				t.Fatalf("expected ErrInvalidLatitude, got %v", err)
			}
		})
	}
}

func TestGeodeticPoint_ToECEF_LongitudeNotRestricted(t *testing.T) {
	got, err := GeodeticPoint{Lat: 10, Lon: 200}.ToECEF()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := LatLonToECEF(10, -160)
	if !almost(got.X, want.X, 1e-6) || !almost(got.Y, want.Y, 1e-6) || !almost(got.Z, want.Z, 1e-6) {
		t.Fatalf("lon=200 should match lon=-160: got %+v, want %+v", got, want)
	}
}
