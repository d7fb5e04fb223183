package generator

import (
	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/service"
)

// Messages generates n messages between independently drawn guests and hosts.
func Messages(p service.Provider, n int, guests []entity.Guest, hosts []entity.Host) ([]entity.Message, error) {
	if n < 0 {
		return nil, domainerrors.NegativeCount("messages", n)
	}
	if n > 0 && len(guests) == 0 {
		return nil, domainerrors.EmptyReference("guests")
	}
	if n > 0 && len(hosts) == 0 {
		return nil, domainerrors.EmptyReference("hosts")
	}

	messages := make([]entity.Message, 0, n)
	for i := range n {
		guest := pick(p, guests).UserID
		host := pick(p, hosts).UserID

		messages = append(messages, entity.Message{
			ID:          entity.FormatID(entity.MessageIDPrefix, i),
			GuestUserID: guest,
			HostUserID:  host,
			Content:     p.Text(maxTextChars),
			SentAt:      dateTimeThisYear(p),
		})
	}

	return messages, nil
}
