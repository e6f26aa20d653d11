package game

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNoWordsAvailable = errors.New("no words available for the selected categories")
)

// WordPool resolves a category identifier to its candidate words.
// Unknown categories resolve to an empty slice.
type WordPool interface {
	Words(category string) []string
}

// SelectImpostors picks count distinct player ids uniformly at random.
// It runs a partial Fisher-Yates shuffle driven by crypto/rand; a
// sort-by-random-comparator shuffle is not uniform and must not be
// reintroduced here.
func SelectImpostors(playerIDs []string, count int) ([]string, error) {
	if count < 1 || count > len(playerIDs) {
		return nil, ErrInvalidArgument
	}
	shuffled := make([]string, len(playerIDs))
	copy(shuffled, playerIDs)
	for i := 0; i < count; i++ {
		j, err := randomIndex(len(shuffled) - i)
		if err != nil {
			return nil, err
		}
		shuffled[i], shuffled[i+j] = shuffled[i+j], shuffled[i]
	}
	return shuffled[:count], nil
}

// SelectSecretWord flattens the pools for the given categories and
// picks one word uniformly. Categories without words are skipped.
// The word's category is returned alongside it.
func SelectSecretWord(pool WordPool, categories []string) (string, string, error) {
	type entry struct {
		word     string
		category string
	}
	var combined []entry
	for _, category := range categories {
		for _, word := range pool.Words(category) {
			combined = append(combined, entry{word: word, category: category})
		}
	}
	if len(combined) == 0 {
		return "", "", ErrNoWordsAvailable
	}
	i, err := randomIndex(len(combined))
	if err != nil {
		return "", "", err
	}
	return combined[i].word, combined[i].category, nil
}

func randomIndex(n int) (int, error) {
	if n <= 1 {
		return 0, nil
	}
	value, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(value.Int64()), nil
}
