package bip39

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Policy 在标准 BIP-39 算法之上叠加的可用性策略
type Policy struct {
	// RejectDuplicates 拒绝包含重复单词的助记词。
	// 标准允许重复，这里默认拒绝以防止用户误抄。
	RejectDuplicates bool
}

// DefaultPolicy 默认策略: 拒绝重复单词
func DefaultPolicy() Policy {
	return Policy{RejectDuplicates: true}
}

// StandardPolicy 与 BIP-39 标准一致，不额外检查重复
func StandardPolicy() Policy {
	return Policy{}
}

// Result 一次校验的结果，创建后不可变
type Result struct {
	Valid bool
	Err   error
}

// Kind 返回失败类别，成功时为 KindNone
func (r Result) Kind() Kind {
	return KindOf(r.Err)
}

// Message 返回面向用户的错误信息，成功时为空串
func (r Result) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

func failed(err error) Result {
	return Result{Valid: false, Err: err}
}

// Validator 按固定顺序校验助记词:
// 规范化 -> 单词数 -> 重复 -> 单词表 -> 校验位。
// 第一个失败即返回，保证同一输入的错误信息可复现。
type Validator struct {
	wordlist *Wordlist
	policy   Policy
}

func NewValidator(wl *Wordlist, policy Policy) *Validator {
	if wl == nil {
		wl = English()
	}
	return &Validator{wordlist: wl, policy: policy}
}

// Normalize NFKD 规范化、转小写，并按任意空白切分为单词
func Normalize(phrase string) []string {
	return strings.Fields(strings.ToLower(norm.NFKD.String(phrase)))
}

// Validate 校验助记词
func (v *Validator) Validate(phrase string) Result {
	words := Normalize(phrase)

	if !ValidWordCount(len(words)) {
		return failed(ErrInvalidWordCount)
	}

	if v.policy.RejectDuplicates {
		if err := checkDuplicates(words); err != nil {
			return failed(err)
		}
	}

	decoded, err := v.wordlist.Decode(words)
	if err != nil {
		return failed(err)
	}

	if err := VerifyChecksum(decoded); err != nil {
		return failed(err)
	}

	return Result{Valid: true}
}

// Decode 规范化后直接解码，不做重复与校验位检查
func (v *Validator) Decode(phrase string) (Decoded, error) {
	return v.wordlist.Decode(Normalize(phrase))
}

func checkDuplicates(words []string) error {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			return &WordError{Word: w, Err: ErrDuplicateWord}
		}
		seen[w] = struct{}{}
	}
	return nil
}

var defaultValidator = NewValidator(English(), DefaultPolicy())

// Validate 使用英文单词表与默认策略校验
func Validate(phrase string) Result {
	return defaultValidator.Validate(phrase)
}

// IsValid 是 Validate 的布尔简写
func IsValid(phrase string) bool {
	return Validate(phrase).Valid
}
