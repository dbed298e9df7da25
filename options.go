package teenpattitable

type GameEngineCallbacks struct {
	OnGameUpdated         func(g *Game)
	OnGameErrorUpdated    func(g *Game, err error)
	OnGamePhaseUpdated    func(phase GamePhase, g *Game)
	OnBettingRoundSettled func(g *Game)
	OnGameSettled         func(g *Game, result *GameResult)
}

func NewGameEngineCallbacks() *GameEngineCallbacks {
	return &GameEngineCallbacks{
		OnGameUpdated:         func(*Game) {},
		OnGameErrorUpdated:    func(*Game, error) {},
		OnGamePhaseUpdated:    func(GamePhase, *Game) {},
		OnBettingRoundSettled: func(*Game) {},
		OnGameSettled:         func(*Game, *GameResult) {},
	}
}

type GameEngineOptions struct {
	// Seconds to keep the settled result on display before the phase
	// moves to finished on its own. 0 leaves the transition to
	// FinalizeGame.
	ShowdownDisplaySeconds int

	// Seconds to wait for every player's boot before posting it for
	// them. 0 boots stragglers immediately.
	BootTimeoutSeconds int
}

func NewGameEngineOptions() *GameEngineOptions {
	return &GameEngineOptions{
		ShowdownDisplaySeconds: 0,
		BootTimeoutSeconds:     0,
	}
}
