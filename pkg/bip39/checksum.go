package bip39

import (
	"crypto"
	"crypto/sha256"
)

// hashAvailable 报告某个哈希实现是否链接进了当前二进制。
// 测试中可替换以模拟部署缺陷。
var hashAvailable = func(h crypto.Hash) bool {
	return h.Available()
}

// checksumBits 取 SHA-256(entropy) 的高 n 位 (n <= 8)
func checksumBits(entropy []byte, n int) (uint8, error) {
	if !hashAvailable(crypto.SHA256) {
		return 0, ErrEnvironmentUnavailable
	}
	sum := sha256.Sum256(entropy)
	return sum[0] >> uint(8-n), nil
}

// VerifyChecksum 重新计算校验位并与助记词中携带的校验位逐位比较
func VerifyChecksum(d Decoded) error {
	expected, err := checksumBits(d.Entropy, d.ChecksumBits)
	if err != nil {
		return err
	}
	if expected != d.Checksum {
		return ErrChecksumMismatch
	}
	return nil
}
