package devicekey

import (
	"encoding/base64"
	"fmt"

	qerrors "github.com/quillchat/quill/internal/errors"
)

// EncodeText converts a binary envelope to its printable form using the
// standard padded base64 alphabet, suitable for embedding in a JSON field.
func EncodeText(envelope []byte) string {
	return base64.StdEncoding.EncodeToString(envelope)
}

// DecodeText reverses EncodeText. Returns ErrInvalidDecoding on characters
// outside the alphabet or bad padding.
func DecodeText(text string) ([]byte, error) {
	envelope, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", qerrors.ErrInvalidDecoding, err)
	}
	return envelope, nil
}
