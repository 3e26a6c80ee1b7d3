package engine

import (
	"context"
	"io"
	"testing"
)

type stubBatch struct {
	name string
}

func (s *stubBatch) Name() string                                { return s.name }
func (s *stubBatch) CheckAvailability(ctx context.Context) error { return nil }
func (s *stubBatch) Run(ctx context.Context, sink io.Writer, files []string) (int, error) {
	return 0, nil
}

type stubFile struct {
	name string
}

func (s *stubFile) Name() string                                { return s.name }
func (s *stubFile) CheckAvailability(ctx context.Context) error { return nil }
func (s *stubFile) CheckFile(ctx context.Context, sink io.Writer, path string) (bool, error) {
	return true, nil
}

// stubInstallerBatch is a batch engine that can also install itself.
type stubInstallerBatch struct {
	stubBatch
}

func (s *stubInstallerBatch) Install(ctx context.Context, config InstallConfig) error { return nil }

func newTestRegistry() *Registry {
	return &Registry{tools: make(map[string]*Registration)}
}

func TestRegister_Empty(t *testing.T) {
	r := newTestRegistry()
	if err := r.Register(nil); err == nil {
		t.Error("Register(nil) error = nil, want error")
	}
	if err := r.Register(&Registration{}); err == nil {
		t.Error("Register(empty) error = nil, want error")
	}
}

func TestRegister_AndLookup(t *testing.T) {
	r := newTestRegistry()

	if err := r.Register(&Registration{Batch: &stubBatch{name: "pylint"}}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(&Registration{File: &stubFile{name: "isort"}}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := r.Batch("pylint"); err != nil {
		t.Errorf("Batch(pylint) error = %v", err)
	}
	if _, err := r.File("isort"); err != nil {
		t.Errorf("File(isort) error = %v", err)
	}

	// A batch-only tool has no per-file capability
	if _, err := r.File("pylint"); err == nil {
		t.Error("File(pylint) error = nil, want not-found")
	}
	if _, err := r.Batch("missing"); err == nil {
		t.Error("Batch(missing) error = nil, want not-found")
	}
}

func TestRegister_DuplicateIgnored(t *testing.T) {
	r := newTestRegistry()

	first := &stubBatch{name: "pylint"}
	_ = r.Register(&Registration{Batch: first})
	_ = r.Register(&Registration{Batch: &stubBatch{name: "pylint"}})

	got, err := r.Batch("pylint")
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}
	if got != first {
		t.Error("duplicate registration replaced the original engine")
	}
}

func TestNames_Sorted(t *testing.T) {
	r := newTestRegistry()
	_ = r.Register(&Registration{Batch: &stubBatch{name: "pylint"}})
	_ = r.Register(&Registration{File: &stubFile{name: "isort"}})
	_ = r.Register(&Registration{Batch: &stubBatch{name: "pycodestyle"}})

	names := r.Names()
	want := []string{"isort", "pycodestyle", "pylint"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestInstallers(t *testing.T) {
	r := newTestRegistry()
	_ = r.Register(&Registration{Batch: &stubInstallerBatch{stubBatch{name: "pylint"}}})
	_ = r.Register(&Registration{Batch: &stubBatch{name: "plain"}})

	installers := r.Installers()
	if len(installers) != 1 {
		t.Fatalf("Installers() = %d entries, want 1", len(installers))
	}
	if _, ok := installers["pylint"]; !ok {
		t.Error("Installers() missing the installable engine")
	}
}
