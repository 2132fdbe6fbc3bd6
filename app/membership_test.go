package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
)

func TestResolveTier(t *testing.T) {
	ctx := context.Background()

	t.Run("active is member", func(t *testing.T) {
		store := newStubStore()
		store.status = models.StatusActive
		s := &Server{members: store, now: time.Now}
		if got := s.resolveTier(ctx, "user-123"); got != models.TierMember {
			t.Fatalf("tier = %s, want member", got)
		}
	})

	t.Run("trialing is member", func(t *testing.T) {
		store := newStubStore()
		store.status = models.StatusTrialing
		s := &Server{members: store, now: time.Now}
		if got := s.resolveTier(ctx, "user-123"); got != models.TierMember {
			t.Fatalf("tier = %s, want member", got)
		}
	})

	t.Run("canceled is free", func(t *testing.T) {
		store := newStubStore()
		store.status = models.StatusCanceled
		s := &Server{members: store, now: time.Now}
		if got := s.resolveTier(ctx, "user-123"); got != models.TierFree {
			t.Fatalf("tier = %s, want free", got)
		}
	})

	t.Run("no record is free", func(t *testing.T) {
		s := &Server{members: newStubStore(), now: time.Now}
		if got := s.resolveTier(ctx, "user-123"); got != models.TierFree {
			t.Fatalf("tier = %s, want free", got)
		}
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		store := newStubStore()
		store.status = models.StatusActive
		store.statusErr = errors.New("connection refused")
		s := &Server{members: store, now: time.Now}
		if got := s.resolveTier(ctx, "user-123"); got != models.TierFree {
			t.Fatalf("tier = %s, want free on lookup failure", got)
		}
	})

	t.Run("no store is free", func(t *testing.T) {
		s := &Server{now: time.Now}
		if got := s.resolveTier(ctx, "user-123"); got != models.TierFree {
			t.Fatalf("tier = %s, want free without a store", got)
		}
	})
}
