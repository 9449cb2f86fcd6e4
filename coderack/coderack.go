package coderack

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/copycat/randutil"
)

// Coderack holds pending codelets in 11 fixed urgency buckets (width
// 10 over urgency 0-100), per spec.md §4.2 and this package's doc.go.
// Not safe for concurrent use — a single run drives it from one
// goroutine (spec.md §5).
type Coderack struct {
	buckets    [numBuckets][]*Codelet
	count      int
	stepsRun   int
}

// New returns an empty Coderack.
func New() *Coderack {
	return &Coderack{}
}

// Len reports how many codelets are currently queued.
func (r *Coderack) Len() int { return r.count }

// StepsRun reports how many codelets ChooseAndRun has successfully run
// (fizzled codelets still count, since running — not succeeding — is
// what a "codelet step" means in spec.md §4.5's loop).
func (r *Coderack) StepsRun() int { return r.stepsRun }

// Post enqueues a single codelet, assigning it to the bucket matching
// its Urgency.
func (r *Coderack) Post(c *Codelet) {
	b := bucketOf(c.Urgency)
	r.buckets[b] = append(r.buckets[b], c)
	r.count++
}

// PostBatch enqueues several codelets at once (e.g. a description
// codelet posting one per viable descriptor), per spec.md §4.2's
// "post_batch."
func (r *Coderack) PostBatch(cs []*Codelet) {
	for _, c := range cs {
		r.Post(c)
	}
}

// effectiveUrgency applies spec.md §4.2's temperature-sharpened
// weighting: effective(u) = u^((110-T)/15). Low temperature sharpens
// the distribution toward high-urgency codelets; high temperature
// flattens it toward uniform selection.
func effectiveUrgency(urgency int, temperatureValue float64) float64 {
	if urgency <= 0 {
		return 0
	}
	exponent := (110 - temperatureValue) / 15.0
	return math.Pow(float64(urgency), exponent)
}

// ChooseAndRun draws one codelet via the two-stage bucket-then-within-
// bucket weighted draw (this package's doc.go), removes it from the
// rack, and runs it. Returns ErrEmpty if the rack holds nothing.
func (r *Coderack) ChooseAndRun(rng *rand.Rand, temperatureValue float64) error {
	c, err := r.choose(rng, temperatureValue)
	if err != nil {
		return err
	}
	r.stepsRun++
	return c.Run()
}

func (r *Coderack) choose(rng *rand.Rand, temperatureValue float64) (*Codelet, error) {
	if r.count == 0 {
		return nil, ErrEmpty
	}
	bucketWeights := make([]float64, numBuckets)
	for i, bucket := range r.buckets {
		sum := 0.0
		for _, c := range bucket {
			sum += effectiveUrgency(c.Urgency, temperatureValue)
		}
		bucketWeights[i] = sum
	}
	bi := randutil.WeightedSelect(rng, bucketWeights)
	if bi < 0 || len(r.buckets[bi]) == 0 {
		// all-zero weights fell back to a uniform draw over an empty
		// bucket; take the first non-empty bucket instead.
		bi = r.firstNonEmptyBucket()
		if bi < 0 {
			return nil, ErrEmpty
		}
	}
	bucket := r.buckets[bi]
	withinWeights := make([]float64, len(bucket))
	for i, c := range bucket {
		withinWeights[i] = effectiveUrgency(c.Urgency, temperatureValue)
	}
	ci := randutil.WeightedSelect(rng, withinWeights)
	if ci < 0 {
		ci = 0
	}
	chosen := bucket[ci]
	r.buckets[bi] = append(bucket[:ci], bucket[ci+1:]...)
	r.count--
	return chosen, nil
}

func (r *Coderack) firstNonEmptyBucket() int {
	for i, bucket := range r.buckets {
		if len(bucket) > 0 {
			return i
		}
	}
	return -1
}

// ClearCategory removes every queued codelet whose Category matches,
// per spec.md §4.2's "clear_category", so stale scouts/testers of that
// category are dropped at once rather than fizzling one by one. The
// run loop and the codelets do not call it.
func (r *Coderack) ClearCategory(category string) {
	for i, bucket := range r.buckets {
		kept := bucket[:0]
		for _, c := range bucket {
			if c.Category == category {
				r.count--
				continue
			}
			kept = append(kept, c)
		}
		r.buckets[i] = kept
	}
}

// AgeTick raises every queued codelet's urgency by delta (capped at
// 100) and re-buckets it, per spec.md §4.2's "age_tick" — without
// this, long-queued low-urgency codelets could starve forever once
// high-urgency ones keep being posted ahead of them.
func (r *Coderack) AgeTick(delta int) {
	if delta <= 0 {
		return
	}
	var all []*Codelet
	for i := range r.buckets {
		all = append(all, r.buckets[i]...)
		r.buckets[i] = nil
	}
	for _, c := range all {
		c.Urgency += delta
		if c.Urgency > 100 {
			c.Urgency = 100
		}
		b := bucketOf(c.Urgency)
		r.buckets[b] = append(r.buckets[b], c)
	}
}
