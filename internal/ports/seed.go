package ports

// SeedSource produces fresh server seeds for commitment.
type SeedSource interface {
	NewSeed() string
}
