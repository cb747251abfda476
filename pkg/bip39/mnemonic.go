package bip39

import (
	"fmt"
	"io"
	"strings"

	"seed-validator/pkg/safe_random"
)

// 生成助记词时因重复单词被策略拒绝后的最大重试次数
const maxGenerateAttempts = 64

// MnemonicService 提供助记词相关的功能
type MnemonicService struct {
	wordlist  *Wordlist
	validator *Validator
	policy    Policy
	entropy   io.Reader
}

type Option func(*MnemonicService)

// WithPolicy 设置校验策略 (默认拒绝重复单词)
func WithPolicy(p Policy) Option {
	return func(s *MnemonicService) { s.policy = p }
}

// WithEntropySource 替换随机源，测试时使用
func WithEntropySource(r io.Reader) Option {
	return func(s *MnemonicService) { s.entropy = r }
}

// NewMnemonicService 创建一个新的助记词服务实例
func NewMnemonicService(opts ...Option) *MnemonicService {
	s := &MnemonicService{
		wordlist: English(),
		policy:   DefaultPolicy(),
		entropy:  safe_random.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validator = NewValidator(s.wordlist, s.policy)
	return s
}

func (s *MnemonicService) Policy() Policy {
	return s.policy
}

// GenerateMnemonic 生成一个新的随机助记词 (BIP-39)。
// bitSize: 熵的位数，128 (12个单词) ~ 256 (24个单词)，必须是 32 的倍数。
// 生成结果一定能通过本服务自身的校验 (包括重复单词策略)。
func (s *MnemonicService) GenerateMnemonic(bitSize int) (string, error) {
	if bitSize < 128 || bitSize > 256 || bitSize%32 != 0 {
		return "", ErrInvalidEntropyLength
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		// 生成熵
		entropy, err := safe_random.ReadFrom(s.entropy, bitSize/8)
		if err != nil {
			return "", fmt.Errorf("生成熵失败: %w", err)
		}

		// 从熵生成助记词
		words, err := s.wordlist.Encode(entropy)
		if err != nil {
			return "", fmt.Errorf("生成助记词失败: %w", err)
		}

		if s.policy.RejectDuplicates && checkDuplicates(words) != nil {
			continue
		}
		return strings.Join(words, " "), nil
	}
	return "", fmt.Errorf("生成助记词失败: %d 次尝试均包含重复单词", maxGenerateAttempts)
}

// ValidateMnemonic 验证助记词是否有效。
func (s *MnemonicService) ValidateMnemonic(mnemonic string) Result {
	return s.validator.Validate(mnemonic)
}

// MnemonicToSeed 将助记词转换为种子 (BIP-39 Seed)。
// password: 可选的密码 (Passphrase)，也就是所谓的 "第25个单词"。
// 如果不需要密码，传空字符串 ""。助记词无效时返回对应的校验错误。
func (s *MnemonicService) MnemonicToSeed(mnemonic string, password string) ([]byte, error) {
	if res := s.validator.Validate(mnemonic); !res.Valid {
		return nil, res.Err
	}
	return DeriveSeed(mnemonic, password)
}

// EntropyFromMnemonic 返回助记词编码的原始熵 (会先完整校验)
func (s *MnemonicService) EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	if res := s.validator.Validate(mnemonic); !res.Valid {
		return nil, res.Err
	}
	d, err := s.validator.Decode(mnemonic)
	if err != nil {
		return nil, err
	}
	return d.Entropy, nil
}
