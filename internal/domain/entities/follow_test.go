package entities

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewFollow(t *testing.T) {
	t.Run("cria aresta entre usuários distintos", func(t *testing.T) {
		followerID := uuid.New()
		followingID := uuid.New()

		follow, err := NewFollow(followerID, followingID)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if follow.FollowerID != followerID || follow.FollowingID != followingID {
			t.Error("esperava aresta com os ids informados")
		}
	})

	t.Run("rejeita auto-follow", func(t *testing.T) {
		id := uuid.New()

		_, err := NewFollow(id, id)
		if !errors.Is(err, ErrSelfFollow) {
			t.Errorf("esperava ErrSelfFollow, obteve %v", err)
		}
	})
}
