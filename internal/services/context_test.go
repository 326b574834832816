package services

import (
	"context"
	"testing"
)

func TestRunIDRoundTrip(t *testing.T) {
	ctx := WithRunID(context.Background(), "abc")
	got, ok := RunIDFromContext(ctx)
	if !ok || got != "abc" {
		t.Fatalf("RunIDFromContext = %q, %v", got, ok)
	}
	if _, ok := RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	if WithRunID(ctx, "") != ctx {
		t.Fatal("empty run id should return the original context")
	}
}

func TestStageRoundTrip(t *testing.T) {
	ctx := WithStage(context.Background(), "scan")
	got, ok := StageFromContext(ctx)
	if !ok || got != "scan" {
		t.Fatalf("StageFromContext = %q, %v", got, ok)
	}
	if _, ok := StageFromContext(WithStage(context.Background(), "")); ok {
		t.Fatal("expected empty stage to be ignored")
	}
}
