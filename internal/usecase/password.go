package usecase

import "golang.org/x/crypto/bcrypt"

// パスワードは平文で保存しない
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type bcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptPasswordHasher{cost: cost}
}

func (h *bcryptPasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
