package ui

// gallowsStages holds one drawing per wrong-guess count, from the empty
// gallows at 0 to the complete figure at 6.
var gallowsStages = [...]string{
	`
  +---+
  |   |
      |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
      |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
  |   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|   |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
      |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 /    |
      |
=========`,
	`
  +---+
  |   |
  O   |
 /|\  |
 / \  |
      |
=========`,
}

// Gallows returns the drawing for the given wrong-guess count. Counts
// past the final stage clamp to the complete figure.
func Gallows(wrong int) string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong >= len(gallowsStages) {
		wrong = len(gallowsStages) - 1
	}
	return gallowsStages[wrong]
}

// StageCount returns the number of gallows drawings.
func StageCount() int {
	return len(gallowsStages)
}
