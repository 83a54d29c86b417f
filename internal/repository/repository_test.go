package repository

import "testing"

func TestIsSQLite(t *testing.T) {
	cases := map[string]bool{
		"sqlite:/var/lib/swiftmove.db":                      true,
		"sqlite::memory:":                                   true,
		":memory:":                                          true,
		"./data/swiftmove.db":                               true,
		"swiftmove.sqlite":                                  true,
		"./data/swiftmove.db?_pragma=foreign_keys(1)":       true,
		"./data/swiftmove.dbx":                              false,
		"postgres://u:p@localhost:5432/swiftmove":           false,
		"postgres://u:p@localhost:5432/swiftmove?x=file.db": false,
		"": false,
	}
	for dsn, want := range cases {
		if got := IsSQLite(dsn); got != want {
			t.Errorf("IsSQLite(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestWhereBuilder_NumbersPlaceholders(t *testing.T) {
	var w whereBuilder
	w.add("status = ?", "new")
	w.add("source = ?", "chatbot")

	if got, want := w.clause(), "WHERE status = $1 AND source = $2"; got != want {
		t.Errorf("clause = %q, want %q", got, want)
	}
	if got, want := w.page(20, 40), " LIMIT $3 OFFSET $4"; got != want {
		t.Errorf("page = %q, want %q", got, want)
	}
	if len(w.args) != 4 || w.args[2] != 20 || w.args[3] != 40 {
		t.Errorf("unexpected args: %v", w.args)
	}
}

func TestWhereBuilder_EmptyAndDefaults(t *testing.T) {
	var w whereBuilder
	if w.clause() != "" {
		t.Errorf("expected empty clause, got %q", w.clause())
	}
	_ = w.page(0, -3)
	if w.args[0] != 50 || w.args[1] != 0 {
		t.Errorf("expected default limit 50 and offset 0, got %v", w.args)
	}
}
