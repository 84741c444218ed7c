package domain

import "errors"

// ErrUnknownEmoji is returned for animals without an emoji.
var ErrUnknownEmoji = errors.New("unknown emoji")

// Emoji responses of the emoji command group.
var animalEmoji = map[string]string{
	"bird": "🐦",
	"cat":  "🐱",
	"dog":  "🐕",
}

// EmojiFor returns the emoji for the named animal.
func EmojiFor(animal string) (string, error) {
	e, ok := animalEmoji[animal]
	if !ok {
		return "", ErrUnknownEmoji
	}
	return e, nil
}
