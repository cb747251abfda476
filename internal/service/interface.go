package service

import "seed-validator/pkg/bip39"

type SeedService interface {
	// Validate 校验助记词，失败原因以数据形式返回
	Validate(phrase string) bip39.Result
	// DeriveSeed 校验通过后派生 64 字节种子
	// 返回的错误为 bip39 包中的校验错误之一
	DeriveSeed(phrase, passphrase string) ([]byte, error)
	// Generate 生成 bitSize 位熵的新助记词
	Generate(bitSize int) (string, error)
}
