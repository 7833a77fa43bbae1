package shareproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkPayload(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{"data:application/octet-stream;base64,aGVsbG8=", "aGVsbG8="},
		{",aGVsbG8=", "aGVsbG8="},
		// Всё после первой запятой — нагрузка, дальнейшие запятые не трогаем.
		{"prefix,a,b", "a,b"},
		{"no-comma-at-all", ""},
		{"", ""},
		{"data:;base64,", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ChunkPayload(tc.body), "body %q", tc.body)
	}
}

func TestValidID(t *testing.T) {
	valid := []string{"abc", "ABC-123", "a.b_c", "0", "upload-6f2d"}
	for _, id := range valid {
		assert.True(t, ValidID(id), "id %q", id)
	}

	invalid := []string{"", ".", "..", "a/b", "a\\b", "a b", "тест", "a\x00b", "../x"}
	for _, id := range invalid {
		assert.False(t, ValidID(id), "id %q", id)
	}
}
