package db

import (
	"strings"
	"testing"
)

func TestNewIndex_Build(t *testing.T) {
	def, err := NewIndex("catalog:idx").
		Prefix("catalog:").
		Text("name").
		Text("description").
		Tag("category").
		TextAs("category", "category_text").
		SortableNumeric("price").
		SortableNumeric("rating").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if def.Name != "catalog:idx" {
		t.Errorf("Name = %q", def.Name)
	}
	if len(def.Prefixes) != 1 || def.Prefixes[0] != "catalog:" {
		t.Errorf("Prefixes = %v", def.Prefixes)
	}
	if len(def.Fields) != 6 {
		t.Fatalf("Fields len = %d", len(def.Fields))
	}

	alias := def.Fields[3]
	if alias.Name != "category" || alias.Alias != "category_text" || alias.Type != IndexFieldText {
		t.Errorf("aliased field = %+v", alias)
	}

	price := def.Fields[4]
	if price.Type != IndexFieldNumeric || !price.Sortable {
		t.Errorf("price field = %+v", price)
	}
}

func TestNewIndex_EmptyName(t *testing.T) {
	_, err := NewIndex("").Tag("f").Build()
	if err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestNewIndex_NoFields(t *testing.T) {
	_, err := NewIndex("idx").Build()
	if err == nil {
		t.Fatal("expected error for no fields")
	}
}

func TestNewIndex_DuplicateField(t *testing.T) {
	_, err := NewIndex("idx").Tag("category").Text("category").Build()
	if err == nil {
		t.Fatal("expected error for duplicate field")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error = %q", err)
	}
}

func TestNewIndex_DuplicateDisambiguatedByAlias(t *testing.T) {
	// Same hash field twice is fine when the second carries an alias.
	_, err := NewIndex("idx").Tag("category").TextAs("category", "category_text").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewIndex_InvalidName(t *testing.T) {
	_, err := NewIndex("bad name!").Tag("f").Build()
	if err == nil {
		t.Fatal("expected error for invalid identifier")
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewIndex("").MustBuild()
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"catalog:idx", true},
		{"snake_case-name", true},
		{"Ab9", true},
		{"", false},
		{"has space", false},
		{"semi;colon", false},
	}
	for _, tt := range tests {
		if got := IsValidIdentifier(tt.s); got != tt.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestIndexDefinition_String(t *testing.T) {
	def := NewIndex("idx").Prefix("p:").Tag("category").SortableNumeric("price").MustBuild()
	s := def.String()
	for _, want := range []string{"FT.CREATE", "idx", "ON HASH", "PREFIX p:", "category TAG", "price NUMERIC SORTABLE"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
