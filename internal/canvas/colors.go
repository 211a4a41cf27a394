package canvas

// Project identifies an annotation project; each has its own category palette
type Project string

const (
	ProjectAI4M     Project = "AI4M"
	ProjectP4       Project = "P4"
	ProjectPH       Project = "PH"
	ProjectNGTS     Project = "NGTS"
	ProjectCoM      Project = "CoM"
	ProjectCAC      Project = "CAC"
	ProjectJVH      Project = "JVH"
	ProjectAA       Project = "AA"
	ProjectCoMS     Project = "CoMS"
	ProjectSunspots Project = "Sunspots"
	ProjectCustom   Project = "Custom"
)

// CategoryCustom exists in every palette and is the fallback for unknown categories
const CategoryCustom = "Custom"

// CategoryConfig describes one selectable annotation category
type CategoryConfig struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var customCategory = CategoryConfig{Name: "Custom", Color: "#FF4B39", Description: "Anything else worth pointing out"}

var palettes = map[Project]map[string]CategoryConfig{
	ProjectAI4M: {
		"sand":              {Name: "Sand", Color: "#FFD700", Description: "Loose, fine-grained terrain"},
		"consolidated-soil": {Name: "Consolidated Soil", Color: "#8B4513", Description: "Compacted soil with visible texture"},
		"bedrock":           {Name: "Bedrock", Color: "#708090", Description: "Exposed solid rock surface"},
		"big-rocks":         {Name: "Big Rocks", Color: "#A52A2A", Description: "Individual boulders larger than the rover wheel"},
		CategoryCustom:      customCategory,
	},
	ProjectP4: {
		"fan":          {Name: "Fan", Color: "#1E90FF", Description: "Directional dark deposit spreading from a source"},
		"blotch":       {Name: "Blotch", Color: "#9932CC", Description: "Roughly round dark deposit"},
		"spider":       {Name: "Spider", Color: "#FF8C00", Description: "Radially branching channels"},
		CategoryCustom: customCategory,
	},
	ProjectPH: {
		"transit-dip":  {Name: "Transit Dip", Color: "#00CED1", Description: "Periodic drop in brightness"},
		"noise":        {Name: "Noise", Color: "#B0B0B0", Description: "Instrument noise or artefact"},
		CategoryCustom: customCategory,
	},
	ProjectNGTS: {
		"transit":          {Name: "Transit", Color: "#32CD32", Description: "Planet-shaped dip"},
		"eclipsing-binary": {Name: "Eclipsing Binary", Color: "#FF1493", Description: "V-shaped or alternating dips"},
		"noise":            {Name: "Noise", Color: "#B0B0B0", Description: "Instrument noise or artefact"},
		CategoryCustom:     customCategory,
	},
	ProjectCoM: {
		"arc":          {Name: "Cloud Arc", Color: "#87CEEB", Description: "Curved high-altitude cloud"},
		"cloud-streak": {Name: "Cloud Streak", Color: "#4682B4", Description: "Long thin cloud band"},
		"hazy-band":    {Name: "Hazy Band", Color: "#D8BFD8", Description: "Diffuse haze layer"},
		CategoryCustom: customCategory,
	},
	ProjectCAC: {
		"asteroid":     {Name: "Asteroid", Color: "#FFA07A", Description: "Moving point source"},
		"artifact":     {Name: "Artifact", Color: "#808000", Description: "Detector or processing artefact"},
		CategoryCustom: customCategory,
	},
	ProjectJVH: {
		"vortex":           {Name: "Vortex", Color: "#FF6347", Description: "Closed circulation in the cloud deck"},
		"turbulent-region": {Name: "Turbulent Region", Color: "#DAA520", Description: "Chaotic mixing area"},
		"cloud-band":       {Name: "Cloud Band", Color: "#F5DEB3", Description: "Zonal band boundary"},
		CategoryCustom:     customCategory,
	},
	ProjectAA: {
		"tail":         {Name: "Tail", Color: "#7FFFD4", Description: "Dust tail trailing the body"},
		"coma":         {Name: "Coma", Color: "#ADFF2F", Description: "Diffuse glow around the body"},
		"asteroid":     {Name: "Asteroid", Color: "#FFA07A", Description: "The moving body itself"},
		CategoryCustom: customCategory,
	},
	ProjectCoMS: {
		"convective":   {Name: "Convective", Color: "#E9967A", Description: "Puffy, cellular cloud shapes"},
		"stratiform":   {Name: "Stratiform", Color: "#6495ED", Description: "Flat layered cloud"},
		"wave":         {Name: "Wave", Color: "#20B2AA", Description: "Regularly spaced ripples"},
		CategoryCustom: customCategory,
	},
	ProjectSunspots: {
		"sunspot":      {Name: "Sunspot", Color: "#FF4500", Description: "Dark umbra"},
		"penumbra":     {Name: "Penumbra", Color: "#FFB347", Description: "Lighter ring surrounding the umbra"},
		CategoryCustom: customCategory,
	},
	ProjectCustom: {
		CategoryCustom: customCategory,
	},
}

// Palette returns the category table for a project. Unknown projects get the Custom palette.
func Palette(project Project) map[string]CategoryConfig {
	if p, ok := palettes[project]; ok {
		out := make(map[string]CategoryConfig, len(p))
		for k, v := range p {
			out[k] = v
		}
		return out
	}
	return map[string]CategoryConfig{CategoryCustom: customCategory}
}

// ColorFor returns the stroke colour for a category, falling back to the project's Custom colour
func ColorFor(project Project, category string) string {
	p, ok := palettes[project]
	if !ok {
		return customCategory.Color
	}
	if c, ok := p[category]; ok {
		return c.Color
	}
	return p[CategoryCustom].Color
}
