package gingerbread

import "math/rand"

// Jokes hands out each joke once in random order, then the completion
// message forever.
type Jokes struct {
	rng        *rand.Rand
	jokes      []string
	unused     []int
	completion string
}

// NewJokes creates a joke source over a copy of jokes.
func NewJokes(rng *rand.Rand, jokes []string, completion string) *Jokes {
	j := &Jokes{
		rng:        rng,
		jokes:      append([]string(nil), jokes...),
		completion: completion,
	}
	j.unused = make([]int, len(j.jokes))
	for i := range j.unused {
		j.unused[i] = i
	}
	return j
}

// Next returns a joke that has not been returned before, or the
// completion message once all jokes are used.
func (j *Jokes) Next() string {
	if len(j.unused) == 0 {
		return j.completion
	}
	k := j.rng.Intn(len(j.unused))
	idx := j.unused[k]
	j.unused[k] = j.unused[len(j.unused)-1]
	j.unused = j.unused[:len(j.unused)-1]
	return j.jokes[idx]
}

// Remaining returns how many jokes have not been told yet.
func (j *Jokes) Remaining() int {
	return len(j.unused)
}

// Completion returns the message shown once the house is done.
func (j *Jokes) Completion() string {
	return j.completion
}
