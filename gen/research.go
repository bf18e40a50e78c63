package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

var researchTopics = []string{
	"quantum computing", "SpaceX Starship", "climate change", "Python async", "machine learning",
	"AI regulation", "James Webb telescope", "mRNA vaccines", "Internet history", "dark matter",
	"blockchain", "React best practices", "cryptocurrency", "healthy eating", "space exploration",
	"renewable energy", "neural networks", "web3", "rust programming", "kubernetes",
	"CRISPR", "electric vehicles", "5G networks", "cybersecurity", "quantum cryptography",
	"AGI", "fusion energy", "Mars colonization", "brain computer interface", "NVIDIA AI",
	"transformers architecture", "GPT models", "diffusion models", "reinforcement learning",
	"LLM fine-tuning", "RAG systems", "vector databases", "prompt engineering", "AI safety",
	"autonomous vehicles", "drone technology", "robotics", "IoT security", "edge computing",
	"microservices", "serverless", "GraphQL", "WebAssembly", "progressive web apps",
}

var researchPatterns = []string{
	"Research {t}", "Look up {t}", "Research {t} for me", "Tell me about {t}",
	"What do we know about {t}?", "Find out about {t}", "Investigate {t}",
	"I'm curious about {t}", "Deep dive into {t}", "What's the latest on {t}?",
	"research {t}", "look into {t}", "whats going on with {t}", "info on {t}",
}

func genResearch(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "research", "search_knowledge")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, topic := range researchTopics {
		for _, pattern := range sample(rng, researchPatterns, 4) {
			msg, err := fill(pattern, "t", topic)
			if err != nil {
				return nil, err
			}
			args := map[string]any{"query": topic + " latest developments"}
			if pick(rng, []string{"quick", "thorough"}) == "thorough" {
				args["depth"] = "thorough"
			}
			trace := fmt.Sprintf("User wants research on %s. Using research tool.", topic)
			out = withVariants(rng, out, corpus.New(msg, "research", args, tools, trace), 2)
		}
	}
	return out, nil
}
