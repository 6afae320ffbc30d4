package mino

import (
	"math/rand/v2"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Bag hands out kinds in shuffled runs of seven. It is refilled only once it
// is empty, so every aligned run of seven Next calls holds each kind once.
type Bag struct {
	remaining []Kind
	shuffler  Shuffler
}

// NewBag returns an empty bag drawing permutations from shuffler. A nil
// shuffler is replaced by a randomly seeded source.
func NewBag(shuffler Shuffler) *Bag {
	if shuffler == nil {
		shuffler = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Bag{shuffler: shuffler, remaining: make([]Kind, 0, len(allKinds))}
}

func NewSeededBag(seed uint64) *Bag {
	return NewBag(rand.New(rand.NewPCG(seed, seed)))
}

func (b *Bag) Next() Kind {
	if len(b.remaining) == 0 {
		b.refill()
	}

	k := b.remaining[0]
	b.remaining = b.remaining[1:]

	return k
}

// Remaining returns the kinds left in the current run without refilling.
func (b *Bag) Remaining() []Kind {
	r := make([]Kind, len(b.remaining))
	copy(r, b.remaining)

	return r
}

func (b *Bag) Len() int {
	return len(b.remaining)
}

func (b *Bag) refill() {
	b.remaining = append(b.remaining[:0], allKinds[:]...)
	b.shuffler.Shuffle(len(b.remaining), func(i, j int) {
		b.remaining[i], b.remaining[j] = b.remaining[j], b.remaining[i]
	})
}
