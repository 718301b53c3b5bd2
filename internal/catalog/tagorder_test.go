package catalog

import (
	"reflect"
	"testing"
)

func TestSortTags(t *testing.T) {
	// S6
	tags := []string{"1.2.A.3", "1.2.B.1", "1.10.A.1", "2.0"}
	want := append([]string(nil), tags...)

	SortTags(tags, "")

	if !reflect.DeepEqual(tags, want) {
		t.Errorf("SortTags() = %v, want %v", tags, want)
	}
}

func TestSortTagsLastTagSortsLast(t *testing.T) {
	tags := []string{"1.2.A.3", "1.2.B.1", "1.10.A.1", "2.0"}

	SortTags(tags, "1.2.A.3")

	want := []string{"1.2.B.1", "1.10.A.1", "2.0", "1.2.A.3"}
	if !reflect.DeepEqual(tags, want) {
		t.Errorf("SortTags() = %v, want %v", tags, want)
	}
}

func TestSortTagsIdempotent(t *testing.T) {
	tags := []string{"1.2.A.3", "1.2.B.1", "1.10.A.1", "2.0"}
	SortTags(tags, "")

	once := append([]string(nil), tags...)
	SortTags(tags, "")

	if !reflect.DeepEqual(tags, once) {
		t.Errorf("sorting an already-sorted list changed it: %v -> %v", once, tags)
	}
}

func TestParseVersion(t *testing.T) {
	cases := []struct {
		in        string
		wantValue int
		wantRest  string
	}{
		{"2.0", 200, ""},
		{"1.2.A.3", 102, "A.3"},
		{"1.10.A.1", 110, "A.1"},
		{"", 0, ""},
		{".3", 3, ""},
	}

	for _, c := range cases {
		value, rest := parseVersion(c.in)
		if value != c.wantValue || rest != c.wantRest {
			t.Errorf("parseVersion(%q) = (%d, %q), want (%d, %q)", c.in, value, rest, c.wantValue, c.wantRest)
		}
	}
}
