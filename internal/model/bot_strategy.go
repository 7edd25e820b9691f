package model

// Bot strategy constants
const (
	BotStrategySolver = "solver"
	BotStrategyRandom = "random"
)

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategySolver:
		return "Solver"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategySolver, BotStrategyRandom}
}
