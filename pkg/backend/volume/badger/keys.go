package badger

// Key Schema
// ==========
//
// BadgerDB is a flat key-value store. Two namespaces are used:
//
//	e:<key>   volume entry, XDR encoded (see serialization.go)
//	          <key> is the lower-case absolute native path, e.g. "e:c:\users\ann"
//	v:id      volume identifier, 16 raw UUID bytes; the serial number is
//	          derived from it
//
// Prefixes keep the two types apart and let a prefix scan enumerate entries.

const (
	prefixEntry = "e:"
	keyVolumeID = "v:id"
)

func entryKey(key string) []byte {
	return []byte(prefixEntry + key)
}
