package theme

import (
	"encoding/json"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Name
	}{
		{"single keyword", "Plan christmas party", Christmas},
		{"case insensitive", "HIT THE GYM", Fitness},
		{"substring match", "ghostbusters marathon", Halloween},
		{"alternate spelling", "Ramadhan dinner", Ramadan},
		{"no keyword", "buy milk", None},
		{"empty", "", None},
		// valentine is listed before gym even though gym comes first in the text.
		{"table order wins", "gym then valentine dinner", Valentine},
		{"christmas before summer", "summer christmas in the southern hemisphere", Christmas},
		{"brazil maps to carnival", "Trip to Brazil", Carnival},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.in); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyEveryKeyword(t *testing.T) {
	for _, k := range Keywords() {
		if got := Classify("do " + k.Word + " stuff"); got != k.Theme {
			t.Errorf("keyword %q: got %q, want %q", k.Word, got, k.Theme)
		}
	}
}

func TestKeywordsIsCopy(t *testing.T) {
	kw := Keywords()
	kw[0].Theme = Fitness
	if Classify("valentine") != Valentine {
		t.Fatal("mutating Keywords() result changed the table")
	}
}

func TestEveryKeywordThemeHasStyle(t *testing.T) {
	for _, k := range Keywords() {
		if _, ok := Lookup(k.Theme); !ok {
			t.Errorf("theme %q has no style", k.Theme)
		}
	}
	if _, ok := Lookup(Autumn); !ok {
		t.Error("autumn should have a style")
	}
	if _, ok := Lookup(None); ok {
		t.Error("None should have no style")
	}
}

func TestNameJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Theme Name `json:"theme"`
	}{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"theme":null}` {
		t.Errorf("got %s", data)
	}

	var v struct {
		Theme Name `json:"theme"`
	}
	v.Theme = Summer
	if err := json.Unmarshal([]byte(`{"theme":null}`), &v); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if v.Theme != None {
		t.Errorf("null decoded to %q", v.Theme)
	}
	if err := json.Unmarshal([]byte(`{"theme":"easter"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Theme != Easter {
		t.Errorf("got %q", v.Theme)
	}
}
