package postgres

import "time"

// unixOrZero converte para unix deixando o zero de time.Time como 0,
// para que autoCreateTime/autoUpdateTime preencham o valor no insert
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:varchar(36);primaryKey"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username     string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	DisplayName  *string `gorm:"type:varchar(200)"`
	Bio          *string `gorm:"type:varchar(500)"`
	AvatarURL    *string `gorm:"type:varchar(500)"`
	CreatedAt    int64   `gorm:"autoCreateTime;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// PostModel é o model GORM para posts
type PostModel struct {
	ID            string  `gorm:"type:varchar(36);primaryKey"`
	AuthorID      string  `gorm:"type:varchar(36);not null;index"`
	Title         string  `gorm:"type:varchar(300);not null"`
	Slug          string  `gorm:"type:varchar(350);uniqueIndex;not null"`
	Body          string  `gorm:"type:text;not null"`
	BodyFormat    string  `gorm:"type:varchar(20);not null;default:markdown"`
	CoverImageURL *string `gorm:"type:varchar(500)"`
	PublishedAt   *int64  `gorm:"index"` // Nulo = rascunho
	CreatedAt     int64   `gorm:"autoCreateTime"`
	UpdatedAt     int64   `gorm:"autoUpdateTime"`
}

func (PostModel) TableName() string {
	return "posts"
}

// FollowModel é o model GORM para arestas do grafo de seguidores.
// A chave primária composta garante unicidade do par.
type FollowModel struct {
	FollowerID  string `gorm:"type:varchar(36);primaryKey"`
	FollowingID string `gorm:"type:varchar(36);primaryKey;index"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
}

func (FollowModel) TableName() string {
	return "follows"
}
