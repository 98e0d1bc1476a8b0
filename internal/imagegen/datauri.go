package imagegen

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// EncodeDataURI embeds data as a base64 data URI.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI is the inverse of EncodeDataURI. Only base64 payloads are accepted.
func DecodeDataURI(uri string) (mimeType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	mimeType, ok = strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrInvalidDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.Join(ErrInvalidDataURI, err)
	}
	return mimeType, data, nil
}
