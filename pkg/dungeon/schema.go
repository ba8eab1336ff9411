package dungeon

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema возвращает JSON Schema описания уровня (для редакторов уровней).
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	s := r.Reflect(&LevelDescriptor{})
	s.Title = "Level descriptor"
	s.Description = "Layout of a single level: spawn point, hiding spots, the exit door, terminals and the monster pool."
	return s
}

// SchemaJSON - схема в виде отформатированного JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
