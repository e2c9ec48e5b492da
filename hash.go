package uuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Name space UUIDs from RFC 4122 appendix C, for use with NewV3 and NewV5.
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewV3 generates a Version 3 UUID from the MD5 digest of the name space
// UUID concatenated with the name. The same inputs always produce the same
// UUID. MD5 is what RFC 4122 prescribes for version 3, not a security choice;
// prefer NewV5 unless compatibility demands otherwise.
func NewV3(space UUID, name []byte) UUID {
	return hashUUID(md5.New(), space, name, 3)
}

// NewV5 generates a Version 5 UUID from the SHA-1 digest of the name space
// UUID concatenated with the name. The same inputs always produce the same
// UUID.
func NewV5(space UUID, name []byte) UUID {
	return hashUUID(sha1.New(), space, name, 5)
}

// hashUUID truncates the digest to 16 bytes and stamps the version and
// variant bits over it.
func hashUUID(h hash.Hash, space UUID, name []byte, version byte) UUID {
	h.Write(space[:])
	h.Write(name)
	var uuid UUID
	copy(uuid[:], h.Sum(nil))
	uuid[6] = (uuid[6] & 0x0f) | (version << 4)
	uuid[8] = (uuid[8] & 0x3f) | 0x80
	return uuid
}
