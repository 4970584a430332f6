package service

import (
	"path/filepath"
	"testing"

	"github.com/xolan/rfext/internal/config"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestPathService_Normalize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Path.ReferencePath = "/ref"
	svc := NewPathService(NewConfigService(filepath.Join(t.TempDir(), "c.toml"), cfg))

	tests := []struct {
		name string
		in   string
		o    PathOverrides
		want string
	}{
		{"configured reference", "a/../b", PathOverrides{}, "/ref/b"},
		{"reference overridden", "b", PathOverrides{ReferencePath: strPtr("/other")}, "/other/b"},
		{"reference cleared", "b", PathOverrides{ReferencePath: strPtr("")}, "b"},
		{"windows with configured mask", `C:\x\..\y`, PathOverrides{Windows: boolPtr(true)}, `C:\\y`},
		{"windows without mask", `C:\x\..\y`, PathOverrides{Windows: boolPtr(true), Mask: boolPtr(false)}, `C:\y`},
		{"blanks", "/a b", PathOverrides{ConsiderBlanks: boolPtr(true)}, `"/a b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Normalize(tt.in, tt.o); got != tt.want {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPathOverrides_Apply(t *testing.T) {
	base := config.DefaultConfig().PathOptions()

	if got := (PathOverrides{}).Apply(base); got != base {
		t.Errorf("empty overrides changed options: %+v", got)
	}

	got := PathOverrides{ExpandEnvVars: boolPtr(false), Mask: boolPtr(false)}.Apply(base)
	if got.ExpandEnvVars || got.Mask {
		t.Errorf("expected env expansion and mask off, got %+v", got)
	}
}
