package slug

import "testing"

func TestMakeTransliterates(t *testing.T) {
	cases := map[string]string{
		"Арматура А500С":          "armatura-a500s",
		"Труба профильная 40x40":  "truba-profilnaya-40x40",
		"Лист горячекатаный 3мм":  "list-goryachekatanyy-3mm",
		"Швеллер 10П":             "shveller-10p",
		"Щебень":                  "shcheben",
		"catalog_item":            "catalog-item",
		"Produkt (новый), цена!":  "produkt-novyy-cena",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMakeIdempotentOnASCII(t *testing.T) {
	inputs := []string{"armatura-a500s", "truba 40x40", "a_b_c", "x--y"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestMakeCollapsesHyphens(t *testing.T) {
	got := Make("  труба   профильная ")
	if got != "truba-profilnaya" {
		t.Fatalf("got %q", got)
	}
	for i := 0; i+1 < len(got); i++ {
		if got[i] == '-' && got[i+1] == '-' {
			t.Fatalf("double hyphen in %q", got)
		}
	}
	if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
		t.Fatalf("leading/trailing hyphen in %q", got)
	}
}

func TestMakeEmptyAndDropped(t *testing.T) {
	if got := Make(""); got != "" {
		t.Fatalf("empty input: got %q", got)
	}
	// Nothing in the table and nothing URL-safe: everything drops.
	if got := Make("!!!"); got != "" {
		t.Fatalf("punctuation only: got %q", got)
	}
	// Soft/hard signs are absent from the table and fall away.
	if got := Make("область"); got != "oblast" {
		t.Fatalf("got %q", got)
	}
}
