package gamedata

import "errors"

// ErrNoLevels is returned when a levels file defines no levels.
var ErrNoLevels = errors.New("no levels defined")

// LevelDef is an authored map: a rectangular table of cell tags.
type LevelDef struct {
	ID   string     `json:"id"`   // Level id used to choose the map (e.g., "1")
	Name string     `json:"name"` // Display name
	Rows [][]string `json:"rows"` // Tags: empty, wall, meal, enemy, player
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads the embedded levels.json.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return nonEmpty(file)
}

// LoadLevelsFile loads levels from a JSON file on disk in the levels.json format.
func LoadLevelsFile(path string) ([]LevelDef, error) {
	file, err := LoadFile[LevelsFile](path)
	if err != nil {
		return nil, err
	}
	return nonEmpty(file)
}

func nonEmpty(file LevelsFile) ([]LevelDef, error) {
	if len(file.Levels) == 0 {
		return nil, ErrNoLevels
	}
	return file.Levels, nil
}
