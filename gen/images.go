package gen

import (
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// imageRow maps a short spoken subject to the full generation prompt.
type imageRow struct {
	subject, prompt string
}

var imageRows = []imageRow{
	{"sunset over mountains", "Beautiful sunset over mountain peaks"},
	{"cute cat", "Adorable fluffy cat with big eyes"},
	{"futuristic city", "Cyberpunk city at night with neon lights"},
	{"robot", "Friendly humanoid robot"},
	{"space scene", "Deep space with colorful nebulas"},
	{"abstract art", "Abstract modern art"},
	{"forest", "Mystical forest with sunlight"},
	{"dragon", "Majestic dragon breathing fire"},
	{"beach", "Tropical beach with palm trees"},
	{"castle", "Medieval castle at sunset"},
	{"winter scene", "Snowy mountain cabin"},
	{"aurora borealis", "Northern lights over frozen lake"},
	{"steampunk", "Steampunk airship"},
	{"garden", "Japanese zen garden"},
	{"coffee shop", "Cozy coffee shop interior"},
	{"spaceship", "Futuristic spaceship"},
	{"waterfall", "Majestic waterfall in jungle"},
	{"underwater", "Colorful coral reef"},
	{"city skyline", "City skyline at night"},
	{"landscape", "Rolling hills at golden hour"},
}

var imagePatterns = []string{
	"Generate image of {s}", "Create picture of {s}", "Make {s}",
	"Draw {s}", "generate {s}", "picture of {s}", "image of {s}",
}

func genImages(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "generate_image")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, row := range imageRows {
		args := map[string]any{"prompt": row.prompt}
		for _, pattern := range imagePatterns {
			msg, err := fill(pattern, "s", row.subject)
			if err != nil {
				return nil, err
			}
			out = append(out, corpus.New(msg, "generate_image", args, tools, "Generate image."))
		}
	}
	return out, nil
}
