package teenpattitable

type GameSetting struct {
	GameID      string       `json:"game_id"`
	Name        string       `json:"name"`
	Rules       Rules        `json:"rules"`
	JoinPlayers []JoinPlayer `json:"join_players"`
}

type JoinPlayer struct {
	PlayerID       string `json:"player_id"`
	Name           string `json:"name"`
	InitialBalance int64  `json:"initial_balance"`
}

func NewDefaultGameSetting(joinPlayers ...JoinPlayer) GameSetting {
	return GameSetting{
		Name:        "teen patti table",
		Rules:       NewDefaultRules(),
		JoinPlayers: joinPlayers,
	}
}
