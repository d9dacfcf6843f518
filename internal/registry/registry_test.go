package registry

import (
	"errors"
	"testing"

	"github.com/krotovic/stardrift/internal/phi"
)

type nullView struct{ phi.BaseView }

func (nullView) Render(*phi.Phi, float64) phi.ViewAction { return phi.Quit() }

func TestRegisterAndCreate(t *testing.T) {
	Register("registry-test-a", "Test A", func(*phi.Phi) (phi.View, error) {
		return nullView{}, nil
	})

	if !Exists("registry-test-a") {
		t.Fatal("registered view should exist")
	}

	view, err := Create("registry-test-a", nil)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, ok := view.(nullView); !ok {
		t.Errorf("Create() returned %T, expected nullView", view)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("registry-test-nope", nil); err == nil {
		t.Error("expected error for unknown view")
	}
	if Exists("registry-test-nope") {
		t.Error("unknown view should not exist")
	}
}

func TestCreatePropagatesFactoryError(t *testing.T) {
	wantErr := errors.New("asset missing")
	Register("registry-test-b", "Test B", func(*phi.Phi) (phi.View, error) {
		return nil, wantErr
	})

	if _, err := Create("registry-test-b", nil); !errors.Is(err, wantErr) {
		t.Errorf("Create() error = %v, expected the factory's error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("registry-test-dup", "Dup", func(*phi.Phi) (phi.View, error) {
		return nullView{}, nil
	})

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("registry-test-dup", "Dup", func(*phi.Phi) (phi.View, error) {
		return nullView{}, nil
	})
}

func TestListSorted(t *testing.T) {
	Register("registry-test-z", "Z", func(*phi.Phi) (phi.View, error) { return nullView{}, nil })
	Register("registry-test-c", "C", func(*phi.Phi) (phi.View, error) { return nullView{}, nil })

	views := List()
	for i := 1; i < len(views); i++ {
		if views[i-1].ID > views[i].ID {
			t.Fatalf("List() not sorted: %q before %q", views[i-1].ID, views[i].ID)
		}
	}
}
