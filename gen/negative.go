package gen

import (
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// distractorCount is how many unrelated specs get attached to a negative
// example, simulating an inference turn where tools are listed but none applies.
const distractorCount = 5

// negativeBank pairs utterances that need no tool with their plain answers:
// general knowledge, chit-chat, acknowledgments.
var negativeBank = []struct {
	msg, answer string
}{
	{"What is the capital of France?", "Paris is the capital of France."},
	{"How many planets in solar system?", "There are 8 planets in our solar system."},
	{"Who wrote Romeo and Juliet?", "William Shakespeare wrote Romeo and Juliet."},
	{"What is 2 + 2?", "2 + 2 equals 4."},
	{"Tell me a joke", "Why don't scientists trust atoms? They make up everything!"},
	{"Hello!", "Hello! How can I help you?"},
	{"Thanks", "You're welcome!"},
	{"Good morning", "Good morning! How are you?"},
	{"What does Python mean?", "Python is a programming language named after Monty Python."},
	{"Explain machine learning", "Machine learning is AI that learns from data."},
	{"How do I cook pasta?", "Boil water, add pasta, cook 8-12 minutes, drain."},
	{"What is love?", "Love is deep affection and care for someone."},
	{"Bye", "Goodbye! Have a great day!"},
	{"What's your name?", "I'm Luna, your AI assistant."},
	{"How are you?", "I'm doing well, thank you!"},
	{"What can you do?", "I can help with tasks, research, music, and more."},
	{"Hi there", "Hi! What can I help you with?"},
	{"Thank you", "You're welcome!"},
	{"That's interesting", "Glad you find it interesting!"},
	{"I see", "Let me know if you have questions."},
	{"Okay", "What would you like to do next?"},
	{"Sure", "Great, how can I assist you?"},
	{"Never mind", "No problem! Let me know if you need anything."},
	{"Just checking", "I'm here if you need me."},
	{"What's 15% of 80?", "15% of 80 is 12."},
	{"Spell necessary", "necessary: N-E-C-E-S-S-A-R-Y"},
	{"Square root of 144?", "The square root of 144 is 12."},
	{"Define ephemeral", "Ephemeral means lasting a very short time."},
	{"What year is it?", "It's 2024."},
	{"How old is the Earth?", "Earth is about 4.5 billion years old."},
}

// genNegative emits plain-text examples with randomly sampled distractor
// specs. Variants of an utterance reuse the same distractor set so the
// whole variant group teaches the same restraint decision.
func genNegative(rng *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	all := cat.All()
	var out []corpus.Example
	for _, row := range negativeBank {
		distractors := sample(rng, all, distractorCount)
		ex := corpus.NewPlain(row.msg, row.answer, distractors)
		out = append(out, ex)
		for _, v := range vary(rng, row.msg, 2) {
			out = append(out, ex.WithUser(v))
		}
	}
	return out, nil
}
