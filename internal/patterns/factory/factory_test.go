package factory

import (
	"bytes"
	"strings"
	"testing"
)

func TestBasicFactory_CreateShape(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{ShapeRound, "circle"},
		{ShapeBoxed, "square"},
		{ShapeLong, "rectangle"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			shape, ok := BasicFactory{}.CreateShape(tt.id)
			if !ok {
				t.Fatalf("CreateShape(%d) returned no shape", tt.id)
			}
			if shape.Name() != tt.want {
				t.Errorf("CreateShape(%d).Name() = %q, want %q", tt.id, shape.Name(), tt.want)
			}

			var buf bytes.Buffer
			shape.Draw(&buf)
			if !strings.HasPrefix(buf.String(), "Drawing "+tt.want+"\n") {
				t.Errorf("Draw() output = %q", buf.String())
			}
		})
	}
}

func TestFactories_UnknownID(t *testing.T) {
	for _, f := range []ShapeFactory{BasicFactory{}, AdvancedFactory{}} {
		for _, id := range []int{-1, 3, 42} {
			shape, ok := f.CreateShape(id)
			if ok || shape != nil {
				t.Errorf("%s.CreateShape(%d) = %v, %v; want nil, false", f.Family(), id, shape, ok)
			}
		}
	}
}

func TestAdvancedFactory_CreateShape(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{ShapeRound, "sphere"},
		{ShapeBoxed, "cube"},
		{ShapeLong, "pyramid"},
	}

	for _, tt := range tests {
		shape, ok := AdvancedFactory{}.CreateShape(tt.id)
		if !ok {
			t.Fatalf("CreateShape(%d) returned no shape", tt.id)
		}
		if shape.Name() != tt.want {
			t.Errorf("CreateShape(%d).Name() = %q, want %q", tt.id, shape.Name(), tt.want)
		}
	}
}

func TestNewFactory(t *testing.T) {
	tests := []struct {
		name   string
		family Family
		ok     bool
	}{
		{"basic", FamilyBasic, true},
		{"advanced", FamilyAdvanced, true},
		{"negative", Family(-1), false},
		{"unknown", Family(2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := NewFactory(tt.family)
			if ok != tt.ok {
				t.Fatalf("NewFactory(%d) ok = %v, want %v", tt.family, ok, tt.ok)
			}
			if ok && f.Family() != tt.family {
				t.Errorf("Family() = %v, want %v", f.Family(), tt.family)
			}
			if !ok && f != nil {
				t.Errorf("NewFactory(%d) = %v, want nil", tt.family, f)
			}
		})
	}
}

func TestFamily_String(t *testing.T) {
	tests := []struct {
		family   Family
		expected string
	}{
		{FamilyBasic, "basic"},
		{FamilyAdvanced, "advanced"},
		{Family(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.family.String(); got != tt.expected {
			t.Errorf("Family(%d).String() = %v, want %v", tt.family, got, tt.expected)
		}
	}
}
