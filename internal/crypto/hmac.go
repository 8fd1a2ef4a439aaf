package crypto

// HMACSHA256 computes the HMAC-SHA256 of data under key per RFC 2104. Keys
// longer than the hash block size are replaced by their digest; shorter keys
// are zero-padded to the block size.
func HMACSHA256(key, data []byte) []byte {
	if len(key) > sha256BlockSize {
		key = SHA256(key)
	}

	ipad := make([]byte, sha256BlockSize, sha256BlockSize+len(data))
	opad := make([]byte, sha256BlockSize, sha256BlockSize+sha256Size)
	copy(ipad, key)
	copy(opad, key)
	for i := 0; i < sha256BlockSize; i++ {
		ipad[i] ^= 0x36
		opad[i] ^= 0x5c
	}

	inner := SHA256(append(ipad, data...))
	return SHA256(append(opad, inner...))
}
