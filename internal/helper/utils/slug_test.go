package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Study in Australia", "study-in-australia"},
		{"  MSc  Computer Science! ", "msc-computer-science"},
		{"IELTS 7.0+ Guide", "ielts-7-0-guide"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
