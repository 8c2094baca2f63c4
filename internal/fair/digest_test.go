package fair_test

import (
	"crypto/sha256"
	"testing"

	"github.com/randomtoy/pfaas-go/internal/fair"
)

func TestDigest_JoinsWithColon(t *testing.T) {
	got := fair.Digest("alice", "bob", "0")
	want := sha256.Sum256([]byte("alice:bob:0"))
	if got != want {
		t.Errorf("Digest joined parts incorrectly: %x", got)
	}
}

func TestDigest_PartOrderMatters(t *testing.T) {
	ab := fair.Digest("alice", "bob")
	ba := fair.Digest("bob", "alice")
	if ab == ba {
		t.Error("swapping part order produced the same digest")
	}
}

func TestDigest_SinglePart(t *testing.T) {
	got := fair.Digest("alice")
	want := sha256.Sum256([]byte("alice"))
	if got != want {
		t.Errorf("single-part digest mismatch: %x", got)
	}
}
