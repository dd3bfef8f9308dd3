package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a namespaced key "prefix:sha256(parts)". Parts are
// serialized as JSON so structs with the same field values hash alike.
func hashKey(prefix string, parts ...any) string {
	raw, _ := json.Marshal(parts)
	return prefix + ":" + Hash(raw)
}

// Hash returns the full 64-character hex SHA-256 of data. Solution and
// request hashes exposed by the pipeline go through here, so the length is
// part of the API surface.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
