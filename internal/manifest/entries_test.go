package manifest

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestEntriesSetKeepsFirstPosition(t *testing.T) {
	var e Entries[Skill]
	e.Set("b", Skill{Description: "first b"})
	e.Set("a", Skill{Description: "a"})

	prev, replaced := e.Set("b", Skill{Description: "second b"})
	if !replaced || prev.Description != "first b" {
		t.Errorf("Set(b) = %+v, %v; want previous value and true", prev, replaced)
	}

	if got, want := e.IDs(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
	if got := e.Get("b").Description; got != "second b" {
		t.Errorf("Get(b).Description = %q, want %q", got, "second b")
	}
	if e.Len() != 2 {
		t.Errorf("Len() = %d, want 2", e.Len())
	}
}

func TestEntriesZeroValue(t *testing.T) {
	var e Entries[Command]
	if _, ok := e.Lookup("missing"); ok {
		t.Error("Lookup on empty entries reported a value")
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Marshal = %s, want {}", data)
	}
}

func TestEntriesAllFollowsInsertionOrder(t *testing.T) {
	var e Entries[Command]
	for _, id := range []string{"deploy", "build", "ci:run"} {
		e.Set(id, Command{File: "./commands/" + id + ".md"})
	}

	var got []string
	for id, c := range e.All() {
		got = append(got, id+"="+c.File)
	}
	want := []string{"deploy=./commands/deploy.md", "build=./commands/build.md", "ci:run=./commands/ci:run.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestEntriesUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIDs []string
		wantErr bool
	}{
		{"ordered object", `{"z": {"description": "z", "file": "./z.md"}, "a": {"description": "a", "file": "./a.md"}}`, []string{"z", "a"}, false},
		{"empty object", `{}`, nil, false},
		{"null", `null`, nil, false},
		{"array", `[]`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entries[Command]
			err := json.Unmarshal([]byte(tt.input), &e)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := e.IDs(); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("IDs() = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}
