//go:build integration

package session

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("SYNSETREE_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("SYNSETREE_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := NewMongoStore(ctx, uri, "synsetree_test")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	defer store.coll.Drop(context.Background())

	testStore(t, store)
}
