package database

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The driver does not dial until the first operation, so a client built from
// a URI is safe to use for handle-resolution tests without a live server.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("building client: %v", err)
	}
	return client.Database("lessonstore_test")
}

func TestResolveReturnsHandleForAnyName(t *testing.T) {
	resolver := NewResolver(testDatabase(t))

	for _, name := range []string{"lessons", "orders", "programs", "anything-else"} {
		col, err := resolver.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q) returned error: %v", name, err)
		}
		if col.Name() != name {
			t.Fatalf("Resolve(%q) bound collection %q", name, col.Name())
		}
	}
}

func TestResolveIsCaseSensitiveAndCachesHandles(t *testing.T) {
	resolver := NewResolver(testDatabase(t))

	first, err := resolver.Resolve("lessons")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	second, err := resolver.Resolve("lessons")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if first != second {
		t.Fatal("expected the cached handle on repeated resolution")
	}

	upper, err := resolver.Resolve("Lessons")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if upper == first || upper.Name() != "Lessons" {
		t.Fatal("expected case-sensitive resolution without aliasing")
	}
}

func TestResolveBeforeConnectFails(t *testing.T) {
	resolver := NewResolver(nil)

	if _, err := resolver.Resolve("lessons"); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
	if err := resolver.Ready(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected from Ready, got %v", err)
	}
}
