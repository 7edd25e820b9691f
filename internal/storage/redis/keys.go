package redis

import (
	"fmt"

	"github.com/mcoot/hangbot/internal/model"
)

// Key prefix for all hangbot data
const keyPrefix = "hangbot"

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// dictionaryKey returns the Redis key for the dictionary word LIST.
// A list rather than a set, since corpus order decides tie-breaks.
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
