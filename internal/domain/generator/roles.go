package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
	"rentgen/internal/errors"
)

// SplitRoles assigns every user to guests with probability pGuest and to hosts
// otherwise. Input order is kept within each list. Either list may end up empty;
// the generators that reference it report that.
func SplitRoles(p service.Provider, users []entity.User, pGuest float64) ([]entity.Guest, []entity.Host, error) {
	if pGuest < 0 || pGuest > 1 {
		return nil, nil, errors.Wrapf(domainerrors.ErrInvalidProbability, "guest probability %v", pGuest)
	}

	var (
		guests []entity.Guest
		hosts  []entity.Host
	)
	for _, u := range users {
		if p.Float64() < pGuest {
			guests = append(guests, entity.Guest{UserID: u.ID})
		} else {
			hosts = append(hosts, entity.Host{UserID: u.ID})
		}
	}

	return guests, hosts, nil
}
