package goals

// TimerRef identifies one running countdown. The UI turns it into a
// repeating tick and hands it back to Manager.Advance.
type TimerRef struct {
	Index int
	Seq   uint64
}

// scheduler tracks the live countdown per slot. Starting a slot replaces
// whatever ran there before, so a ref from an older start is stale and its
// ticks are dropped.
type scheduler struct {
	seq    uint64
	active map[int]uint64
}

func newScheduler() *scheduler {
	return &scheduler{active: map[int]uint64{}}
}

func (s *scheduler) start(index int) TimerRef {
	s.stop(index)
	s.seq++
	s.active[index] = s.seq
	return TimerRef{Index: index, Seq: s.seq}
}

func (s *scheduler) stop(index int) {
	delete(s.active, index)
}

func (s *scheduler) stopAll() {
	clear(s.active)
}

func (s *scheduler) live(ref TimerRef) bool {
	seq, ok := s.active[ref.Index]
	return ok && seq == ref.Seq
}

func (s *scheduler) running(index int) bool {
	_, ok := s.active[index]
	return ok
}

func (s *scheduler) count() int {
	return len(s.active)
}
