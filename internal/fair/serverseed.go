package fair

// ServerSeed tracks one server seed across its lifecycle: the hash
// commitment shown to players before the round, the per-round nonce,
// and whether the plain seed has been revealed.
//
// A ServerSeed belongs to a single round owner and is not safe for
// concurrent use.
type ServerSeed struct {
	seed     string
	hashed   string
	nonce    int64
	revealed bool
}

// NewServerSeed wraps preset, or a freshly generated seed when preset
// is empty.
func NewServerSeed(preset string) *ServerSeed {
	if preset == "" {
		preset = NewSeed()
	}
	s := &ServerSeed{}
	s.Rotate(preset)
	return s
}

// Seed returns the plain seed. Callers decide when it is safe to show.
func (s *ServerSeed) Seed() string { return s.seed }

// Hashed returns the full hex commitment for the current seed.
func (s *ServerSeed) Hashed() string { return s.hashed }

// HashedVisual returns a shortened commitment for display, keeping the
// first and last five hex characters.
func (s *ServerSeed) HashedVisual() string {
	if len(s.hashed) <= 10 {
		return s.hashed
	}
	return s.hashed[:5] + "..." + s.hashed[len(s.hashed)-5:]
}

// Nonce returns the current nonce without consuming it.
func (s *ServerSeed) Nonce() int64 { return s.nonce }

// SetNonce overrides the nonce, e.g. when restoring a round.
func (s *ServerSeed) SetNonce(n int64) { s.nonce = n }

// NextNonce returns the current nonce and advances it by one. The
// caller must call it exactly once per logical draw.
func (s *ServerSeed) NextNonce() int64 {
	n := s.nonce
	s.nonce++
	return n
}

// Revealed reports whether the plain seed has been disclosed.
func (s *ServerSeed) Revealed() bool { return s.revealed }

// Reveal marks the seed as disclosed and returns it.
func (s *ServerSeed) Reveal() string {
	s.revealed = true
	return s.seed
}

// Rotate replaces the seed and recomputes its commitment. The nonce and
// revealed flag are reset; a rotated seed starts a fresh round history.
func (s *ServerSeed) Rotate(newSeed string) {
	s.seed = newSeed
	s.hashed = HashSeed(newSeed)
	s.nonce = 0
	s.revealed = false
}
