package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rafabene/folio-backend/internal/domain/errors"
)

func TestFollowServiceFollow(t *testing.T) {
	t.Run("cria aresta de follow", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")
		bob := env.seedUser(t, "bob")

		if err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		following, err := svc.IsFollowing(context.Background(), alice.ID, bob.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !following {
			t.Error("esperava alice seguindo bob")
		}
	})

	t.Run("auto-follow é rejeitado", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")

		err := svc.Follow(context.Background(), alice.ID, alice.ID)
		if !stderrors.Is(err, errors.ErrCannotFollowSelf) {
			t.Errorf("esperava ErrCannotFollowSelf, obteve %v", err)
		}
	})

	t.Run("alvo inexistente retorna ErrUserNotFound", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")

		err := svc.Follow(context.Background(), alice.ID, uuid.New())
		if !stderrors.Is(err, errors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})

	t.Run("follow repetido é idempotente", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")
		bob := env.seedUser(t, "bob")

		if err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
			t.Fatalf("falha no primeiro follow: %v", err)
		}
		if err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
			t.Errorf("esperava no-op no follow repetido, obteve erro: %v", err)
		}

		users, err := svc.ListFollowing(context.Background(), alice.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(users) != 1 {
			t.Errorf("esperava uma única aresta, obteve %d", len(users))
		}
	})
}

func TestFollowServiceUnfollow(t *testing.T) {
	t.Run("remove aresta existente", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")
		bob := env.seedUser(t, "bob")

		if err := svc.Follow(context.Background(), alice.ID, bob.ID); err != nil {
			t.Fatalf("falha no follow: %v", err)
		}
		if err := svc.Unfollow(context.Background(), alice.ID, bob.ID); err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		following, err := svc.IsFollowing(context.Background(), alice.ID, bob.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if following {
			t.Error("esperava aresta removida")
		}
	})

	t.Run("unfollow sem aresta é idempotente", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")
		bob := env.seedUser(t, "bob")

		if err := svc.Unfollow(context.Background(), alice.ID, bob.ID); err != nil {
			t.Errorf("esperava no-op silencioso, obteve erro: %v", err)
		}
	})
}

func TestFollowServiceListFollowing(t *testing.T) {
	t.Run("lista usuários seguidos", func(t *testing.T) {
		env := setupTestEnv(t)
		svc := env.followService()
		alice := env.seedUser(t, "alice")
		bob := env.seedUser(t, "bob")
		carol := env.seedUser(t, "carol")

		for _, target := range []uuid.UUID{bob.ID, carol.ID} {
			if err := svc.Follow(context.Background(), alice.ID, target); err != nil {
				t.Fatalf("falha no follow: %v", err)
			}
		}

		users, err := svc.ListFollowing(context.Background(), alice.ID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(users) != 2 {
			t.Errorf("esperava 2 usuários, obteve %d", len(users))
		}
	})
}
