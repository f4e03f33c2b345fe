package badger

import (
	"bytes"
	"fmt"

	xdr "github.com/rasky/go-xdr/xdr2"

	"github.com/marmos91/posixshim/pkg/backend/volume"
)

// Entries are stored with XDR: fixed-width integers and length-prefixed
// strings. Fields may only be appended to volume.Entry, never reordered.

func encodeEntry(e *volume.Entry) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, e); err != nil {
		return nil, fmt.Errorf("failed to encode entry: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeEntry(data []byte) (*volume.Entry, error) {
	var e volume.Entry
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &e); err != nil {
		return nil, fmt.Errorf("failed to decode entry: %w", err)
	}
	return &e, nil
}
