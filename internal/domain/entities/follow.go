package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSelfFollow = errors.New("cannot follow self")
)

// Follow representa uma aresta direcionada do grafo de seguidores.
// A existência do par (follower, following) é o único estado.
type Follow struct {
	FollowerID  uuid.UUID
	FollowingID uuid.UUID
	CreatedAt   time.Time
}

// NewFollow cria uma aresta de follow validada (auto-follow é proibido)
func NewFollow(followerID, followingID uuid.UUID) (*Follow, error) {
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	return &Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}, nil
}
