package bip39

const bitsPerWord = 11

// Decoded 是助记词拆分出的熵与校验位
type Decoded struct {
	Entropy      []byte // ENT/8 字节
	Checksum     uint8  // 低 ChecksumBits 位有效
	ChecksumBits int
}

// ValidWordCount 判断单词数是否为 12/15/18/21/24
func ValidWordCount(n int) bool {
	switch n {
	case 12, 15, 18, 21, 24:
		return true
	}
	return false
}

// sizesForWordCount 由单词数推出 ENT 与 CS 的位数
// total = n*11, ENT = total*32/33, CS = total/33
func sizesForWordCount(n int) (entBits, csBits int) {
	total := n * bitsPerWord
	return total * 32 / 33, total / 33
}

// Decode 将单词序列解码为熵 + 校验位。
// 输入应已规范化 (小写、NFKD)。这里不做重复单词检查，标准 BIP-39 允许重复。
func (wl *Wordlist) Decode(words []string) (Decoded, error) {
	if !ValidWordCount(len(words)) {
		return Decoded{}, ErrInvalidWordCount
	}

	entBits, csBits := sizesForWordCount(len(words))
	buf := newBitBuffer(len(words) * bitsPerWord)
	for _, w := range words {
		idx, ok := wl.IndexOf(w)
		if !ok {
			return Decoded{}, &WordError{Word: w, Err: ErrUnknownWord}
		}
		buf.appendBits(uint32(idx), bitsPerWord)
	}

	return Decoded{
		Entropy:      buf.bytes(entBits),
		Checksum:     uint8(buf.readBits(entBits, csBits)),
		ChecksumBits: csBits,
	}, nil
}

// Encode 将熵编码为助记词 (附加 SHA-256 校验位)。
// 熵长度必须为 16/20/24/28/32 字节。
func (wl *Wordlist) Encode(entropy []byte) ([]string, error) {
	entBits := len(entropy) * 8
	if entBits < 128 || entBits > 256 || entBits%32 != 0 {
		return nil, ErrInvalidEntropyLength
	}

	csBits := entBits / 32
	cs, err := checksumBits(entropy, csBits)
	if err != nil {
		return nil, err
	}

	buf := newBitBuffer(entBits + csBits)
	buf.appendBytes(entropy)
	buf.appendBits(uint32(cs), csBits)

	n := buf.len() / bitsPerWord
	words := make([]string, n)
	for i := 0; i < n; i++ {
		idx := uint16(buf.readBits(i*bitsPerWord, bitsPerWord))
		words[i], _ = wl.WordAt(idx)
	}
	return words, nil
}
