package formula

import (
	"errors"
	"slices"
	"testing"

	"github.com/goplus/extopt/pkgs/mod/module"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	for _, info := range Variants() {
		if s.Enabled(info.Name) {
			t.Errorf("variant %s enabled by default", info.Name)
		}
	}
	if got := s.Jobs(); got != 1 {
		t.Errorf("Jobs() = %d, want 1", got)
	}
	if _, ok := s.ToolkitPrefix(); ok {
		t.Error("ToolkitPrefix() present on empty spec")
	}
	if got := s.EnabledVariants(); got != nil {
		t.Errorf("EnabledVariants() = %v, want nil", got)
	}
}

func TestEnabledVariantsCatalogOrder(t *testing.T) {
	s := New(
		WithVariants(GPUDirectStorage, XEntropy),
		WithVariant(CUDA, true),
		WithVariant(BNP, false),
	)
	want := []Variant{CUDA, XEntropy, GPUDirectStorage}
	if got := s.EnabledVariants(); !slices.Equal(got, want) {
		t.Errorf("EnabledVariants() = %v, want %v", got, want)
	}
}

func TestDependencyVersion(t *testing.T) {
	s := New(
		WithDependency(Framework, "2.0"),
		WithDependency(Interpreter, "3.10.12"),
	)
	if v, ok := s.DependencyVersion(Framework); !ok || v != "2.0" {
		t.Errorf("DependencyVersion(%q) = %q, %v", Framework, v, ok)
	}
	if got := s.Host(); got != "3.10.12" {
		t.Errorf("Host() = %q, want %q", got, "3.10.12")
	}
	if v, ok := s.DependencyVersion(Interpreter); !ok || v != "3.10.12" {
		t.Errorf("DependencyVersion(%q) = %q, %v", Interpreter, v, ok)
	}
	if _, ok := s.DependencyVersion("ninja"); ok {
		t.Error("DependencyVersion(ninja) reported a version")
	}

	want := []module.Version{
		{Path: Framework, Version: "2.0"},
		{Path: Interpreter, Version: "3.10.12"},
	}
	if got := s.Dependencies(); !slices.Equal(got, want) {
		t.Errorf("Dependencies() = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    *Spec
		wantErr bool
	}{
		{
			name: "minimal",
			spec: New(WithHost("3.10")),
		},
		{
			name: "cuda with toolkit",
			spec: New(WithHost("3.11"), WithVariants(CUDA), WithToolkit("/opt/cuda")),
		},
		{
			name: "cuda without toolkit is left to env setup",
			spec: New(WithHost("3.11"), WithVariants(CUDA)),
		},
		{
			name:    "unknown variant",
			spec:    New(WithHost("3.10"), WithVariants("warp_drive")),
			wantErr: true,
		},
		{
			name:    "missing host",
			spec:    New(),
			wantErr: true,
		},
		{
			name:    "zero jobs",
			spec:    New(WithHost("3.12"), WithJobs(0)),
			wantErr: true,
		},
		{
			name:    "toolkit without cuda",
			spec:    New(WithHost("3.12"), WithToolkit("/opt/cuda")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("Validate() error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	s := New(
		WithVariants(XEntropy, CUDA),
		WithToolkit("/opt/cuda"),
		WithDependency(Framework, "2.0"),
		WithHost("3.10"),
	)
	want := "+cuda+xentropy ^py-torch@2.0 ^python@3.10"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVariantsCatalog(t *testing.T) {
	vs := Variants()
	if len(vs) != 19 {
		t.Fatalf("catalog has %d variants, want 19", len(vs))
	}
	if vs[0].Name != CUDA {
		t.Errorf("first variant = %s, want %s", vs[0].Name, CUDA)
	}
	seen := map[Variant]bool{}
	for _, v := range vs {
		if seen[v.Name] {
			t.Errorf("duplicate variant %s", v.Name)
		}
		seen[v.Name] = true
		if v.Description == "" {
			t.Errorf("variant %s has no description", v.Name)
		}
		if !IsVariant(string(v.Name)) {
			t.Errorf("IsVariant(%q) = false", v.Name)
		}
	}
	if IsVariant("warp_drive") {
		t.Error("IsVariant(warp_drive) = true")
	}

	vs[0].Name = "mutated"
	if Variants()[0].Name != CUDA {
		t.Error("Variants() exposes the catalog")
	}
}
