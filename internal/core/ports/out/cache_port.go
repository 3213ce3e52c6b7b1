package out

import "context"

// RosterCachePort - кэш результатов проверки ФИО по спискам приемной
// комиссии. Списки меняются редко, кэш снимает повторные походы в базу
// при опечатках и повторных вводах.
type RosterCachePort interface {
	GetRosterCheck(ctx context.Context, key string) (valid bool, exists bool)
	StoreRosterCheck(ctx context.Context, key string, valid bool)
	InvalidateRosterCache(ctx context.Context)
}
