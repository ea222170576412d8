package ledger

import (
	_ "embed"

	"gopkg.in/yaml.v3"

	"kharj/internal/core"
)

//go:embed categories.yaml
var seedCategories []byte

// defaultCategories returns the built-in category set used when the store has
// none. The seed file is embedded, so a broken build of it is a programmer
// error; panic instead of limping along without categories.
func defaultCategories() []core.Category {
	var categories []core.Category
	if err := yaml.Unmarshal(seedCategories, &categories); err != nil {
		panic("ledger: invalid embedded category seed: " + err.Error())
	}
	return categories
}
