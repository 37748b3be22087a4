package tagparser

import (
	"errors"
	"testing"
)

func TestParseRecordTag(t *testing.T) {
	tests := []struct {
		tag  string
		want RecordTag
	}{
		{tag: "", want: RecordTag{}},
		{tag: "postalCode", want: RecordTag{Name: "postalCode"}},
		{tag: "state,includeNull", want: RecordTag{Name: "state", IncludeNull: true}},
		{tag: ",includeNull", want: RecordTag{IncludeNull: true}},
		{tag: "city,omitempty", want: RecordTag{Name: "city"}},
		{tag: " zip , includeNull ", want: RecordTag{Name: "zip", IncludeNull: true}},
		{tag: "-", want: RecordTag{Skip: true}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseRecordTag(tt.tag); got != tt.want {
				t.Errorf("ParseRecordTag(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseSelector_SimpleFieldName(t *testing.T) {
	parsed, err := ParseSelector("name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.FieldName != "name" {
		t.Errorf("expected FieldName 'name', got '%s'", parsed.FieldName)
	}
	if parsed.Alias != "" {
		t.Errorf("expected empty Alias, got '%s'", parsed.Alias)
	}
	if parsed.IsFragment {
		t.Error("expected IsFragment to be false")
	}
}

func TestParseSelector_Alias(t *testing.T) {
	parsed, err := ParseSelector(" newPost : post ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.FieldName != "post" {
		t.Errorf("expected FieldName 'post', got '%s'", parsed.FieldName)
	}
	if parsed.Alias != "newPost" {
		t.Errorf("expected Alias 'newPost', got '%s'", parsed.Alias)
	}
}

func TestParseSelector_InlineFragment(t *testing.T) {
	parsed, err := ParseSelector("...   on   Droid")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !parsed.IsFragment {
		t.Error("expected IsFragment to be true")
	}
	if parsed.TypeName != "Droid" {
		t.Errorf("expected TypeName 'Droid', got '%s'", parsed.TypeName)
	}
}

func TestParseSelector_FragmentSpread(t *testing.T) {
	parsed, err := ParseSelector("...authorFields")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !parsed.IsFragment || parsed.FragmentName != "authorFields" || parsed.TypeName != "" {
		t.Errorf("unexpected selector %+v", parsed)
	}
}

func TestParseSelector_ArgumentsRejected(t *testing.T) {
	_, err := ParseSelector("post(id: 1)")
	if !errors.Is(err, ErrArgumentsInSelector) {
		t.Errorf("expected ErrArgumentsInSelector, got %v", err)
	}
}
