package rows

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"valuematch/internal/common"
	"valuematch/tokenize"
)

var (
	// ErrElementNotFound is returned when a word does not hold the
	// requested element.
	ErrElementNotFound = errors.New("rows: element not found")
	// ErrIndexOutOfRange is returned for an element position past the
	// last word.
	ErrIndexOutOfRange = errors.New("rows: index out of range")
)

// ReturnElement returns the position of element among the words of word.
// When element occurs more than once the first position is returned and a
// warning is logged to the global logger.
//
//	ReturnElement("short text", "short") // 0
func ReturnElement(word, element string) (int, error) {
	words := tokenize.Words(word)

	i := slices.Index(words, element)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q not in %q", ErrElementNotFound, element, words)
	}

	if n := common.CountFunc(words, func(w string) bool { return w == element }); n > 1 {
		zap.L().Warn("element occurs more than once",
			zap.String("element", element),
			zap.String("word", word),
			zap.Int("count", n))
	}

	return i, nil
}

// MoveElementToFront moves the word at index to the front. The words of the
// result are joined by single spaces.
//
//	MoveElementToFront("A B C", 2) // "C A B"
func MoveElementToFront(word string, index int) (string, error) {
	return moveElement(word, index, true)
}

// MoveElementToBack moves the word at index to the back. The words of the
// result are joined by single spaces.
//
//	MoveElementToBack("A B C", 0) // "B C A"
func MoveElementToBack(word string, index int) (string, error) {
	return moveElement(word, index, false)
}

// MoveWordToFront moves the first occurrence of element to the front.
func MoveWordToFront(word, element string) (string, error) {
	i, err := ReturnElement(word, element)
	if err != nil {
		return "", err
	}

	return moveElement(word, i, true)
}

// MoveWordToBack moves the first occurrence of element to the back.
func MoveWordToBack(word, element string) (string, error) {
	i, err := ReturnElement(word, element)
	if err != nil {
		return "", err
	}

	return moveElement(word, i, false)
}

func moveElement(word string, index int, front bool) (string, error) {
	words := tokenize.Words(word)
	if index < 0 || index >= len(words) {
		return "", fmt.Errorf("%w: %d with %d words", ErrIndexOutOfRange, index, len(words))
	}

	moved := words[index]
	rest := slices.Delete(slices.Clone(words), index, index+1)

	if front {
		return strings.Join(append([]string{moved}, rest...), " "), nil
	}

	return strings.Join(append(rest, moved), " "), nil
}
