package parallel

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"sync"
)

// Digest hashes a stream of uint16 values that arrive out of order from many
// goroutines. Values are packed 30 to a 64 byte block, the block is fed to
// SHA-256 as soon as it and every block before it are complete, so the sum
// only depends on the values and their positions.
type Digest struct {
	mut  sync.Mutex
	sha  hash.Hash
	ate  int
	data [][64]byte
}

// NewDigest makes a Digest for positions 0 to n-1.
func NewDigest(n int) *Digest {
	return &Digest{
		sha:  sha256.New(),
		data: make([][64]byte, (29+n)/30),
	}
}

// complete reports whether the next block to hash has all 30 marks set.
// Marks live in bytes 0-1 (positions 0-14) and 62-63 (positions 15-29).
func (d *Digest) complete() bool {
	if d.ate >= len(d.data) {
		return false
	}
	var b = &d.data[d.ate]
	return binary.BigEndian.Uint16(b[0:2]) == 0x7fff &&
		binary.BigEndian.Uint16(b[62:64]) == 0x7fff
}

func (d *Digest) eat() {
	d.sha.Write(d.data[d.ate][:])
	d.ate++
}

// MustPut stores value at position n. Writing a position twice panics.
func (d *Digest) MustPut(n int, value uint16) {
	block := n / 30
	position := n % 30

	d.mut.Lock()
	defer d.mut.Unlock()

	if block < d.ate {
		panic("already consumed block")
	}

	var marks []byte
	var bit uint
	if position < 15 {
		marks = d.data[block][0:2]
		bit = uint(position)
	} else {
		marks = d.data[block][62:64]
		bit = uint(position - 15)
	}
	mark := binary.BigEndian.Uint16(marks)
	if mark&(1<<bit) != 0 {
		panic("duplicate write")
	}
	binary.BigEndian.PutUint16(marks, mark|1<<bit)
	binary.LittleEndian.PutUint16(d.data[block][2+2*position:], value)

	for d.complete() {
		d.eat()
	}
}

// Sum hashes whatever blocks remain, missing positions count as zero.
// The Digest must not be used afterwards.
func (d *Digest) Sum() (ret [32]byte) {
	d.mut.Lock()
	defer d.mut.Unlock()
	for d.ate < len(d.data) {
		d.eat()
	}
	copy(ret[:], d.sha.Sum(nil))
	d.data = nil
	return
}
