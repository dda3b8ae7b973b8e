package service

import "retreats/internal/apperr"

// requireOwner разрешает операцию только владельцу ресурса. Сравнение идет
// по первичному ключу, а не по указателям: владелец и принципал могут быть
// загружены разными запросами к базе.
func requireOwner(ownerID, principalID int) error {
	if ownerID != principalID {
		return apperr.ErrAuthorization
	}
	return nil
}
