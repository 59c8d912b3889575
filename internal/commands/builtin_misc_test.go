package commands

import (
	"testing"

	"github.com/Bean-Pringles/Spoke/internal/value"
)

func TestCompareHandlerEqual(t *testing.T) {
	api := newTestAPI(t)
	api.Env.Set("a", value.Int64(3))
	api.Env.Set("b", value.Int64(3))

	if !compareHandler([]string{"compare", "a", "b"}, api) {
		t.Fatalf("expected compare to succeed: %s", api.FailMessage())
	}
}

func TestCompareHandlerRejectsDisjointTypes(t *testing.T) {
	api := newTestAPI(t)
	api.Env.Set("a", value.Int64(3))
	api.Env.Set("b", value.String("three"))

	if compareHandler([]string{"compare", "a", "b"}, api) {
		t.Fatal("expected compare across disjoint types to fail")
	}
}

func TestCompareHandlerMissingVariable(t *testing.T) {
	api := newTestAPI(t)
	api.Env.Set("a", value.Int64(3))

	if compareHandler([]string{"compare", "a", "missing"}, api) {
		t.Fatal("expected compare with a missing variable to fail")
	}
}

func TestTimeHandlerStoresIntoVariable(t *testing.T) {
	api := newTestAPI(t)

	if !timeHandler([]string{"time", "stamp"}, api) {
		t.Fatalf("expected time to succeed: %s", api.FailMessage())
	}
	v, ok := api.Env.Get("stamp")
	if !ok || v.Kind != value.KindString || v.Str == "" {
		t.Fatalf("expected a non-empty timestamp string, got %#v ok=%v", v, ok)
	}
}

func TestTimeHandlerRejectsExtraArguments(t *testing.T) {
	api := newTestAPI(t)
	if timeHandler([]string{"time", "a", "b"}, api) {
		t.Fatal("expected time with too many arguments to fail")
	}
}

func TestMathHandlerDefaultsToLoud(t *testing.T) {
	api := newTestAPI(t)
	if !mathHandler([]string{"math", "4", "*", "2"}, api) {
		t.Fatalf("expected math to succeed: %s", api.FailMessage())
	}
}

func TestMathHandlerDivisionByZero(t *testing.T) {
	api := newTestAPI(t)
	if mathHandler([]string{"math", "1", "/", "0", "silent", "out"}, api) {
		t.Fatal("expected division by zero to fail")
	}
}

func TestDeleteHandlerMissingVariable(t *testing.T) {
	api := newTestAPI(t)
	if deleteHandler([]string{"delete", "missing"}, api) {
		t.Fatal("expected delete of a missing variable to fail")
	}
}
