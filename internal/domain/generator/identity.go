package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Users generates n users with ids U000000000 onwards.
func Users(p service.Provider, n int) ([]entity.User, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("users", n)
	}

	users := make([]entity.User, 0, n)
	for i := range n {
		users = append(users, entity.User{
			ID:       entity.FormatID(entity.UserIDPrefix, i),
			Password: p.Password(passwordLength),
			Name:     p.Name(),
			Phone:    p.PhoneNumber(),
			Birth:    dateOfBirth(p),
			Email:    p.Email(),
		})
	}

	return users, nil
}
