package stroke

import "testing"

func TestParseAndVimString(t *testing.T) {
	cases := []struct {
		spec string
		want string
	}{
		{"a", "a"},
		{"A", "A"},
		{"Ctrl+S", "<C-s>"},
		{"<C-s>", "<C-s>"},
		{"Escape", "<Esc>"},
		{"<Esc>", "<Esc>"},
		{"Enter", "<CR>"},
		{"Space", "<Space>"},
		{"Ctrl+Shift+P", "<C-p>"},
	}

	for _, c := range cases {
		ev, err := Parse(c.spec)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.spec, err)
		}
		if got := ev.VimString(); got != c.want {
			t.Errorf("Parse(%q).VimString() = %q, want %q", c.spec, got, c.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{"", "Ctrl+Nonsense", "<C->"}
	for _, spec := range cases {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q): expected error, got nil", spec)
		}
	}
}

func TestParseRoundTripsNormalize(t *testing.T) {
	c := Canonicalizer{}
	s, err := c.Normalize("Ctrl+S", USEnglish)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if string(s) != "<C-s>" {
		t.Errorf("Normalize(%q) = %q, want %q", "Ctrl+S", s, "<C-s>")
	}
}
