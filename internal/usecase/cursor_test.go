package usecase

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	token := encodeCursor("0195f7a2-3c41-7def-8000-abcdef123456")

	decoded, err := decodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, "0195f7a2-3c41-7def-8000-abcdef123456", decoded.LastKey)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"not base64":      "!!!not-base64!!!",
		"not json":        base64.URLEncoding.EncodeToString([]byte("plain text")),
		"empty last key":  base64.URLEncoding.EncodeToString([]byte(`{"last_key":""}`)),
		"unrelated json":  base64.URLEncoding.EncodeToString([]byte(`{"page":3}`)),
		"truncated token": encodeCursor("id-0001")[:8],
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeCursor(token)
			var ve ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "cursor", ve.Field)
		})
	}
}
