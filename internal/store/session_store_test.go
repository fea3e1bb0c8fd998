package store

import (
	"testing"
	"time"

	"github.com/voxprep/voxprep/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	if _, ok := s.Get("missing"); ok {
		t.Fatal("Get on an unknown id must miss")
	}

	sess := &models.Session{ID: "s-1", UserID: "u-1", Status: models.StatusActive}
	s.Put(sess)

	got, ok := s.Get("s-1")
	if !ok {
		t.Fatal("Get after Put must hit")
	}
	if got != sess {
		t.Error("store must return the same session pointer, not a copy")
	}

	// mutating and re-putting keeps the latest state visible
	sess.AnswerCount = 3
	s.Put(sess)
	got, _ = s.Get("s-1")
	if got.AnswerCount != 3 {
		t.Errorf("AnswerCount = %d, want 3", got.AnswerCount)
	}

	s.Delete("s-1")
	if _, ok := s.Get("s-1"); ok {
		t.Error("Get after Delete must miss")
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(10 * time.Millisecond)
	s.Put(&models.Session{ID: "s-2"})

	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get("s-2"); ok {
		t.Error("session must expire after the ttl")
	}
}
