package bip39

import (
	"errors"
	"fmt"
)

// Kind 校验失败的类别
type Kind int

const (
	KindNone Kind = iota
	KindInvalidWordCount
	KindDuplicateWord
	KindUnknownWord
	KindChecksumMismatch
	KindEnvironmentUnavailable
	KindInvalidEntropyLength
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInvalidWordCount:
		return "invalid_word_count"
	case KindDuplicateWord:
		return "duplicate_word"
	case KindUnknownWord:
		return "unknown_word"
	case KindChecksumMismatch:
		return "checksum_mismatch"
	case KindEnvironmentUnavailable:
		return "environment_unavailable"
	case KindInvalidEntropyLength:
		return "invalid_entropy_length"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// 错误分类。对外一律以数据形式 (Result) 返回，不会 panic。
var (
	ErrInvalidWordCount       = errors.New("Seed phrase must be 12, 15, 18, 21, or 24 words")
	ErrDuplicateWord          = errors.New("Duplicate words found in seed phrase")
	ErrUnknownWord            = errors.New("word is not in BIP39 wordlist")
	ErrChecksumMismatch       = errors.New("Invalid checksum or phrase structure")
	ErrEnvironmentUnavailable = errors.New("Required cryptographic primitive is unavailable; cannot validate seed phrase")
	ErrInvalidEntropyLength   = errors.New("entropy length must be 128, 160, 192, 224 or 256 bits")
)

// WordError 携带出错的具体单词
type WordError struct {
	Word string
	Err  error
}

func (e *WordError) Error() string {
	switch e.Err {
	case ErrUnknownWord:
		return fmt.Sprintf("Invalid word found: '%s' is not in BIP39 wordlist", e.Word)
	case ErrDuplicateWord:
		return fmt.Sprintf("%s: '%s' appears more than once", e.Err.Error(), e.Word)
	default:
		return fmt.Sprintf("%s: '%s'", e.Err.Error(), e.Word)
	}
}

func (e *WordError) Unwrap() error {
	return e.Err
}

// KindOf 将 error 归类，nil 返回 KindNone
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidWordCount):
		return KindInvalidWordCount
	case errors.Is(err, ErrDuplicateWord):
		return KindDuplicateWord
	case errors.Is(err, ErrUnknownWord):
		return KindUnknownWord
	case errors.Is(err, ErrChecksumMismatch):
		return KindChecksumMismatch
	case errors.Is(err, ErrEnvironmentUnavailable):
		return KindEnvironmentUnavailable
	case errors.Is(err, ErrInvalidEntropyLength):
		return KindInvalidEntropyLength
	default:
		return KindEnvironmentUnavailable
	}
}
