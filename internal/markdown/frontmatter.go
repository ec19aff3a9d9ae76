package markdown

import "strings"

const delimiter = "---"

// Fields holds front-matter key/value pairs in first-seen key order.
// Setting an existing key overwrites its value but keeps the original
// position.
type Fields struct {
	keys   []string
	values map[string]string
}

func NewFields() *Fields {
	return &Fields{values: make(map[string]string)}
}

func (f *Fields) Set(key, value string) {
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

func (f *Fields) Get(key string) (string, bool) {
	value, ok := f.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (f *Fields) Keys() []string {
	return f.keys
}

func (f *Fields) Len() int {
	return len(f.keys)
}

// ParseFrontmatter splits content into an optional front-matter field set
// and the remaining body. The body is always returned, unchanged past the
// closing delimiter; a nil field set means no front-matter was found, while
// a non-nil empty set means the delimiters were present with nothing
// parseable between them.
//
// The split is literal: the content must start with "---", and the closing
// delimiter is the next occurrence of that 3-character token anywhere in
// the text. Later "---" sequences stay in the body. Lines in the block
// without a colon are skipped; lines with a colon split on the first one,
// with key and value trimmed.
func ParseFrontmatter(content string) (*Fields, string) {
	if !strings.HasPrefix(content, delimiter) {
		return nil, content
	}
	parts := strings.SplitN(content, delimiter, 3)
	if len(parts) < 3 {
		return nil, content
	}
	fields := NewFields()
	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return fields, parts[2]
}
