package repository

import (
	"testing"
)

func TestBuildLikeConditionSQLite(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"name", " ", "slug"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	want := "(LOWER(name) LIKE ? OR LOWER(slug) LIKE ?)"
	if condition != want {
		t.Fatalf("sqlite like condition mismatch, want %s got %s", want, condition)
	}
}

func TestBuildLikeConditionPostgres(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("postgres", []string{"name"})
	if argCount != 1 {
		t.Fatalf("arg count want 1 got %d", argCount)
	}
	if condition != "(name ILIKE ?)" {
		t.Fatalf("postgres like condition mismatch, got %s", condition)
	}
}

func TestBuildLikeConditionEmpty(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("mysql", nil)
	if condition != "" || argCount != 0 {
		t.Fatalf("empty columns should produce empty condition, got %q/%d", condition, argCount)
	}
}

func TestLikePatternLowercases(t *testing.T) {
	if got := likePattern(" Jamdani Saree "); got != "%jamdani saree%" {
		t.Fatalf("unexpected like pattern: %s", got)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%saree%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%saree%" {
			t.Fatalf("args[%d] want %%saree%% got %v", idx, arg)
		}
	}
}
