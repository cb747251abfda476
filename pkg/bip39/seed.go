package bip39

import (
	"crypto"
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize BIP-39 种子长度 (字节)
	SeedSize = 64

	seedIterations = 2048
	saltPrefix     = "mnemonic"
)

// DeriveSeed 由助记词和可选密码 (passphrase) 派生 64 字节种子。
// PBKDF2-HMAC-SHA512, 2048 轮; password 与 salt 均按 NFKD 规范化。
// 本函数不校验助记词，调用方应先 Validate。
// 注意: 不要记录 passphrase 与种子。
func DeriveSeed(mnemonic, passphrase string) ([]byte, error) {
	if !hashAvailable(crypto.SHA512) {
		return nil, ErrEnvironmentUnavailable
	}

	password := strings.Join(Normalize(mnemonic), " ")
	salt := norm.NFKD.String(saltPrefix + passphrase)
	return pbkdf2.Key([]byte(password), []byte(salt), seedIterations, SeedSize, sha512.New), nil
}
