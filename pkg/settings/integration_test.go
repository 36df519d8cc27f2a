//go:build integration

package settings

import (
	"context"
	"os"
	"testing"
)

func exercise(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	defer store.Close()
	if err := store.Reset(ctx); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, Settings{PresetID: "mesh-cosmic"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(ctx, Settings{PaletteID: "neon", AnimationsEnabled: Bool(true)}); err != nil {
		t.Fatal(err)
	}
	s, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.PresetID != "mesh-cosmic" || s.PaletteID != "neon" || s.AnimationsEnabled == nil || !*s.AnimationsEnabled {
		t.Errorf("Load = %+v", s)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatal(err)
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("STYLER_TEST_REDIS_URL")
	if url == "" {
		t.Skip("STYLER_TEST_REDIS_URL not set")
	}
	store, err := NewRedisStore(context.Background(), url, "integration")
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, store)
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("STYLER_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("STYLER_TEST_MONGO_URI not set")
	}
	store, err := NewMongoStore(context.Background(), uri, "screenshot_styler_test", "integration")
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, store)
}
