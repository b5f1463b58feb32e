package manifest

// Author identifies who publishes the plugin.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Repository points at the plugin's source repository.
type Repository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Identity contains the static, configuration-driven fields of a manifest.
type Identity struct {
	Name        string
	DisplayName string
	Version     string
	Description string
	Author      Author
	Homepage    string
	Repository  Repository
	License     string
	Keywords    []string
	Main        string
}

// Command is one invocable command discovered under commands/.
type Command struct {
	Description string `json:"description"`
	File        string `json:"file"`
}

// Skill is one leaf skill directory discovered under skills/.
type Skill struct {
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Plugin is the aggregated manifest document. Field order matches the
// serialized key order; commands and skills keep discovery order.
type Plugin struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"displayName"`
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Author      Author           `json:"author"`
	Homepage    string           `json:"homepage"`
	Repository  Repository       `json:"repository"`
	License     string           `json:"license"`
	Keywords    []string         `json:"keywords"`
	Main        string           `json:"main"`
	Commands    Entries[Command] `json:"commands"`
	Skills      Entries[Skill]   `json:"skills"`
}

// New returns a manifest carrying id and no commands or skills.
func New(id Identity) *Plugin {
	keywords := make([]string, len(id.Keywords))
	copy(keywords, id.Keywords)

	return &Plugin{
		Name:        id.Name,
		DisplayName: id.DisplayName,
		Version:     id.Version,
		Description: id.Description,
		Author:      id.Author,
		Homepage:    id.Homepage,
		Repository:  id.Repository,
		License:     id.License,
		Keywords:    keywords,
		Main:        id.Main,
	}
}
