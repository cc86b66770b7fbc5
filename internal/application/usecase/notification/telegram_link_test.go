package notification

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLinkCodeStoreIssueAndConsume(t *testing.T) {
	store := NewLinkCodeStore()
	userID := uuid.New()

	code, err := store.Issue(userID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(code) != linkCodeLength*2 {
		t.Errorf("expected %d hex chars, got %d", linkCodeLength*2, len(code))
	}

	got, ok := store.Consume(code)
	if !ok {
		t.Fatal("expected code to be consumable")
	}
	if got != userID {
		t.Errorf("Consume returned %s, want %s", got, userID)
	}

	// One-time use.
	if _, ok := store.Consume(code); ok {
		t.Error("expected consumed code to be gone")
	}
}

func TestLinkCodeStoreUnknownCode(t *testing.T) {
	store := NewLinkCodeStore()
	if _, ok := store.Consume("deadbeef"); ok {
		t.Error("expected unknown code to fail")
	}
}

func TestLinkCodeStoreReissueInvalidatesPrevious(t *testing.T) {
	store := NewLinkCodeStore()
	userID := uuid.New()

	first, err := store.Issue(userID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	second, err := store.Issue(userID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct codes")
	}

	if _, ok := store.Consume(first); ok {
		t.Error("expected first code to be invalidated by reissue")
	}
	if _, ok := store.Consume(second); !ok {
		t.Error("expected second code to work")
	}
}

func TestLinkCodeStoreExpiry(t *testing.T) {
	store := NewLinkCodeStore()
	userID := uuid.New()

	code, err := store.Issue(userID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	store.mu.Lock()
	entry := store.codes[code]
	entry.expiresAt = time.Now().Add(-time.Second)
	store.codes[code] = entry
	store.mu.Unlock()

	if _, ok := store.Consume(code); ok {
		t.Error("expected expired code to fail")
	}
}

func TestLinkCodeStoreDistinctUsers(t *testing.T) {
	store := NewLinkCodeStore()
	alice := uuid.New()
	bob := uuid.New()

	aliceCode, _ := store.Issue(alice)
	bobCode, _ := store.Issue(bob)

	if got, ok := store.Consume(aliceCode); !ok || got != alice {
		t.Error("expected alice's code to resolve to alice")
	}
	if got, ok := store.Consume(bobCode); !ok || got != bob {
		t.Error("expected bob's code to resolve to bob")
	}
}
