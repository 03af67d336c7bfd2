package particle

// Pool owns a set of particle records for a single effect instance.
//
// Update order per frame is spawn → Advance (age, cull, step) → draw; a
// record that expires during Advance is gone before anything can render it.
type Pool struct {
	records  []Record
	capacity int // 0 = unbounded
	spawned  int
	culled   int
}

// NewPool creates a pool. capacity <= 0 means no upper bound.
func NewPool(capacity int) *Pool {
	initial := capacity
	if initial <= 0 {
		initial = 16
	}
	return &Pool{
		records:  make([]Record, 0, initial),
		capacity: capacity,
	}
}

// Spawn appends a record. Returns false (and drops the record) when the pool is full.
func (p *Pool) Spawn(r Record) bool {
	if p.capacity > 0 && len(p.records) >= p.capacity {
		return false
	}
	p.records = append(p.records, r)
	p.spawned++
	return true
}

// Len returns the number of live records.
func (p *Pool) Len() int {
	return len(p.records)
}

// Records exposes the live records. The slice is only valid until the next
// Spawn/Advance/Clear call.
func (p *Pool) Records() []Record {
	return p.records
}

// Each calls fn for every live record without aging it.
func (p *Pool) Each(fn func(r *Record)) {
	for i := range p.records {
		fn(&p.records[i])
	}
}

// Advance ages every record by dt, removes the ones that reached MaxAge and
// calls step for each survivor. Order of survivors is preserved.
// Returns the number of records removed.
func (p *Pool) Advance(dt float64, step func(r *Record)) int {
	w := 0
	removed := 0
	for i := range p.records {
		r := &p.records[i]
		r.Age += dt
		if r.Expired() {
			removed++
			continue
		}
		if step != nil {
			step(r)
		}
		if w != i {
			p.records[w] = *r
		}
		w++
	}
	// 清空尾部，释放 Path 等引用
	for i := w; i < len(p.records); i++ {
		p.records[i] = Record{}
	}
	p.records = p.records[:w]
	p.culled += removed
	return removed
}

// Clear drops every record.
func (p *Pool) Clear() {
	for i := range p.records {
		p.records[i] = Record{}
	}
	p.records = p.records[:0]
}

// Spawned returns how many records were ever accepted by the pool.
func (p *Pool) Spawned() int {
	return p.spawned
}

// Culled returns how many records were removed by Advance because they expired.
func (p *Pool) Culled() int {
	return p.culled
}
