package bip39

// bitBuffer 按大端序 (MSB first) 追加 / 读取任意宽度的位。
// 11 bit 的单词索引与 4~8 bit 的校验位都不按字节对齐，统一走这里。
type bitBuffer struct {
	buf []byte
	n   int // 已写入的位数
}

func newBitBuffer(capBits int) *bitBuffer {
	return &bitBuffer{buf: make([]byte, 0, (capBits+7)/8)}
}

// appendBits 追加 v 的低 width 位 (width <= 32)
func (b *bitBuffer) appendBits(v uint32, width int) {
	for i := width - 1; i >= 0; i-- {
		if b.n%8 == 0 {
			b.buf = append(b.buf, 0)
		}
		if (v>>uint(i))&1 == 1 {
			b.buf[b.n/8] |= 1 << uint(7-b.n%8)
		}
		b.n++
	}
}

// appendBytes 追加整字节
func (b *bitBuffer) appendBytes(p []byte) {
	for _, c := range p {
		b.appendBits(uint32(c), 8)
	}
}

// readBits 从 offset 处读取 width 位 (width <= 32)。
// 调用方保证 offset+width <= b.len()。
func (b *bitBuffer) readBits(offset, width int) uint32 {
	var v uint32
	for i := 0; i < width; i++ {
		pos := offset + i
		bit := (b.buf[pos/8] >> uint(7-pos%8)) & 1
		v = v<<1 | uint32(bit)
	}
	return v
}

// bytes 返回前 nBits 位组成的字节切片 (nBits 必须是 8 的倍数)
func (b *bitBuffer) bytes(nBits int) []byte {
	out := make([]byte, nBits/8)
	copy(out, b.buf[:nBits/8])
	return out
}

func (b *bitBuffer) len() int {
	return b.n
}
