package classify

import "testing"

func TestIsTextFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "script.py", want: true},
		{name: "data.json", want: true},
		{name: "SCRIPT.PY", want: true},
		{name: "notes.TXT", want: true},
		{name: "main.go", want: true},
		{name: "photo.png", want: false},
		{name: "doc.pdf", want: false},
		{name: "archive.zip", want: false},
		{name: "Makefile", want: true},
		{name: "makefile", want: true},
		{name: "LICENSE", want: true},
		{name: "Dockerfile", want: true},
		{name: "randomfile", want: false},
		{name: ".gitignore", want: true},
		{name: ".env", want: true},
		{name: ".somethingelse", want: true},
	}
	for _, tt := range tests {
		if got := IsTextFile(tt.name); got != tt.want {
			t.Fatalf("IsTextFile(%q)=%v want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsTextFileExcludesMarkdown(t *testing.T) {
	for _, name := range []string{"readme.md", "README.MD", "notes.markdown", "NOTES.MARKDOWN"} {
		if IsTextFile(name) {
			t.Fatalf("IsTextFile(%q)=true, markdown must take the rendering path", name)
		}
	}
}
