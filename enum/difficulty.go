package enum

import (
	"encoding/json"
	"fmt"
)

// Difficulty names one difficulty slot of a beatmap set. It is written to
// info.dat as a string, unlike the integer-coded enumerations.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "Easy"
	DifficultyNormal     Difficulty = "Normal"
	DifficultyHard       Difficulty = "Hard"
	DifficultyExpert     Difficulty = "Expert"
	DifficultyExpertPlus Difficulty = "ExpertPlus"
)

var difficultyRanks = map[Difficulty]int{
	DifficultyEasy:       1,
	DifficultyNormal:     3,
	DifficultyHard:       5,
	DifficultyExpert:     7,
	DifficultyExpertPlus: 9,
}

// Difficulties returns every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert, DifficultyExpertPlus}
}

// IsValid reports whether d is one of the known difficulties.
func (d Difficulty) IsValid() bool {
	_, ok := difficultyRanks[d]
	return ok
}

// Rank returns the rank the game stores alongside the difficulty, or 0 if d is unknown.
func (d Difficulty) Rank() int {
	return difficultyRanks[d]
}

func (d Difficulty) String() string { return string(d) }

func (d *Difficulty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Difficulty: expected string, got %s", data)
	}

	if !Difficulty(s).IsValid() {
		return fmt.Errorf("%w: Difficulty %q", ErrUnknownSymbol, s)
	}

	*d = Difficulty(s)

	return nil
}
