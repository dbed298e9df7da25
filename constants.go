package teenpattitable

const (
	// General
	UnsetValue = -1

	// Persisted store keys
	StoreKey_GameHistory = "teenPattiGameHistory"
	StoreKey_GameStats   = "teenPattiGameStats"
)
