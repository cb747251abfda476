package bip39

import (
	"crypto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		policy  Policy
		phrase  string
		valid   bool
		kind    Kind
		message string
	}{
		{
			name:   "canonical vector",
			policy: DefaultPolicy(),
			phrase: schemeSpot,
			valid:  true,
			kind:   KindNone,
		},
		{
			name:   "all-abandon vector under standard policy",
			policy: StandardPolicy(),
			phrase: abandonAbout,
			valid:  true,
			kind:   KindNone,
		},
		{
			name:    "last word swapped",
			policy:  StandardPolicy(),
			phrase:  strings.Repeat("abandon ", 11) + "able",
			kind:    KindChecksumMismatch,
			message: "Invalid checksum or phrase structure",
		},
		{
			name:    "thirteen words",
			policy:  DefaultPolicy(),
			phrase:  schemeSpot + " zoo",
			kind:    KindInvalidWordCount,
			message: "Seed phrase must be 12, 15, 18, 21, or 24 words",
		},
		{
			name:    "misspelled word",
			policy:  DefaultPolicy(),
			phrase:  "scheme spot photo card baby mountian device kick cradle pact join borrow",
			kind:    KindUnknownWord,
			message: "Invalid word found: 'mountian' is not in BIP39 wordlist",
		},
		{
			name:   "repeated words",
			policy: DefaultPolicy(),
			phrase: abandonAbout,
			kind:   KindDuplicateWord,
		},
		{
			name:   "empty",
			policy: DefaultPolicy(),
			phrase: "   ",
			kind:   KindInvalidWordCount,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := NewValidator(English(), c.policy).Validate(c.phrase)
			assert.Equal(t, c.valid, res.Valid)
			assert.Equal(t, c.kind, res.Kind())
			if c.message != "" {
				assert.Equal(t, c.message, res.Message())
			}
			if c.valid {
				assert.NoError(t, res.Err)
				assert.Empty(t, res.Message())
			}
		})
	}
}

// 替换最后一个单词 (不引入重复) 只会得到有效或校验位错误两种结果
func TestValidate_LastWordSwapped(t *testing.T) {
	words := strings.Fields(schemeSpot)
	mismatches := 0
	for i := 0; i < WordlistSize; i++ {
		w, _ := English().WordAt(uint16(i))
		if strings.Contains(" "+schemeSpot+" ", " "+w+" ") {
			continue
		}
		words[11] = w
		res := Validate(strings.Join(words, " "))
		if !res.Valid {
			require.Equal(t, KindChecksumMismatch, res.Kind(), w)
			mismatches++
		}
	}
	assert.Greater(t, mismatches, 1800)
}

func TestValidate_InvalidWordCounts(t *testing.T) {
	words := strings.Fields(abandonArt + " " + schemeSpot)
	for n := 0; n <= 30; n++ {
		if ValidWordCount(n) {
			continue
		}
		res := Validate(strings.Join(words[:n], " "))
		assert.Equal(t, KindInvalidWordCount, res.Kind(), "%d words", n)
	}
}

func TestValidate_Normalization(t *testing.T) {
	phrase := "  SCHEME spot\tPhoto card baby mountain\ndevice kick   cradle pact join Borrow  "
	assert.True(t, IsValid(phrase))
	assert.Equal(t, strings.Fields(schemeSpot), Normalize(phrase))
}

// 错误顺序: 单词数 -> 重复 -> 未知单词 -> 校验位
func TestValidate_ErrorOrder(t *testing.T) {
	// 重复单词且包含未知单词: 先报告重复
	res := Validate("abandon abandon xyzzy abandon abandon abandon abandon abandon abandon abandon abandon about")
	assert.Equal(t, KindDuplicateWord, res.Kind())

	// 13 个单词且包含未知单词: 先报告单词数
	res = Validate(schemeSpot + " xyzzy")
	assert.Equal(t, KindInvalidWordCount, res.Kind())

	// 只报告第一个未知单词
	res = Validate("scheme spott photo card baby mountian device kick cradle pact join borrow")
	var we *WordError
	require.ErrorAs(t, res.Err, &we)
	assert.Equal(t, "spott", we.Word)
}

func TestValidate_DuplicatePolicy(t *testing.T) {
	strict := NewValidator(English(), DefaultPolicy())
	res := strict.Validate(legalYellow)
	require.False(t, res.Valid)
	var we *WordError
	require.ErrorAs(t, res.Err, &we)
	assert.Equal(t, "legal", we.Word)
	assert.ErrorIs(t, res.Err, ErrDuplicateWord)

	standard := NewValidator(English(), StandardPolicy())
	for _, phrase := range []string{legalYellow, zooWrong, abandonAbout, abandonArt} {
		assert.True(t, standard.Validate(phrase).Valid, phrase)
	}
	assert.False(t, strict.Validate(abandonAbout).Valid)
}

// 最后一个单词的所有替换中，12 词恰好 128 个、24 词恰好 8 个能通过校验位
func TestValidate_LastWordChecksumDensity(t *testing.T) {
	v := NewValidator(English(), StandardPolicy())
	cases := []struct {
		prefix string
		want   int
	}{
		{strings.Repeat("abandon ", 11), 128},
		{strings.Repeat("abandon ", 23), 8},
	}
	for _, c := range cases {
		passed := 0
		for i := 0; i < WordlistSize; i++ {
			w, _ := English().WordAt(uint16(i))
			if v.Validate(c.prefix + w).Valid {
				passed++
			}
		}
		assert.Equal(t, c.want, passed)
	}
}

// 替换任意一个非末尾单词后，绝大多数情况下校验位失效
func TestValidate_ChecksumSoundness(t *testing.T) {
	v := NewValidator(English(), StandardPolicy())
	words := strings.Fields(schemeSpot)
	for pos := 0; pos < len(words)-1; pos += 3 {
		rejected := 0
		for i := 0; i < WordlistSize; i++ {
			w, _ := English().WordAt(uint16(i))
			if w == words[pos] {
				continue
			}
			mutated := append([]string(nil), words...)
			mutated[pos] = w
			res := v.Validate(strings.Join(mutated, " "))
			if !res.Valid {
				require.Equal(t, KindChecksumMismatch, res.Kind())
				rejected++
			}
		}
		assert.Greater(t, rejected, 1700, "position %d", pos)
	}
}

func TestValidate_EnvironmentUnavailable(t *testing.T) {
	orig := hashAvailable
	hashAvailable = func(crypto.Hash) bool { return false }
	defer func() { hashAvailable = orig }()

	res := Validate(schemeSpot)
	assert.False(t, res.Valid)
	assert.Equal(t, KindEnvironmentUnavailable, res.Kind())

	// 结构性错误仍然先于环境检查被报告
	res = Validate("abandon")
	assert.Equal(t, KindInvalidWordCount, res.Kind())

	_, err := DeriveSeed(schemeSpot, "")
	assert.ErrorIs(t, err, ErrEnvironmentUnavailable)
}
