package bip39

import (
	"fmt"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordlistSize BIP-39 单词表固定为 2048 个单词 (11 bit 索引)
const WordlistSize = 2048

// Wordlist 是只读的 BIP-39 单词表。
// 构造完成后不再修改，可被任意多个 goroutine 并发读取，无需加锁。
type Wordlist struct {
	words []string
	index map[string]uint16
}

var english = mustWordlist(wordlists.English)

// English 返回进程内共享的英文单词表
func English() *Wordlist {
	return english
}

// NewWordlist 根据给定单词构造单词表。
// 要求恰好 2048 个互不相同的小写单词。
func NewWordlist(words []string) (*Wordlist, error) {
	if len(words) != WordlistSize {
		return nil, fmt.Errorf("wordlist must contain %d words, got %d", WordlistSize, len(words))
	}

	wl := &Wordlist{
		words: make([]string, len(words)),
		index: make(map[string]uint16, len(words)),
	}
	for i, w := range words {
		if w == "" || w != strings.ToLower(w) {
			return nil, fmt.Errorf("wordlist entry %d (%q) is not a lowercase word", i, w)
		}
		if _, dup := wl.index[w]; dup {
			return nil, fmt.Errorf("wordlist entry %d (%q) is duplicated", i, w)
		}
		wl.words[i] = w
		wl.index[w] = uint16(i)
	}
	return wl, nil
}

func mustWordlist(words []string) *Wordlist {
	wl, err := NewWordlist(words)
	if err != nil {
		panic(err)
	}
	return wl
}

// IndexOf 查找单词对应的 11 bit 索引，找不到时返回 false
func (wl *Wordlist) IndexOf(word string) (uint16, bool) {
	idx, ok := wl.index[word]
	return idx, ok
}

// WordAt 返回索引对应的单词，越界时返回 false
func (wl *Wordlist) WordAt(index uint16) (string, bool) {
	if int(index) >= len(wl.words) {
		return "", false
	}
	return wl.words[index], true
}

func (wl *Wordlist) Len() int {
	return len(wl.words)
}
