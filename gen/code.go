package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/Bitwarelabscom/luna-routegen/catalog"
	"github.com/Bitwarelabscom/luna-routegen/corpus"
)

// snippet pairs a spoken description with the code the router should pass through.
type snippet struct {
	desc, code string
}

var pythonSnippets = []snippet{
	{"Calculate 2+2", "print(2 + 2)"},
	{"print hello", "print('hello')"},
	{"Fibonacci sequence", "def fib(n):\n    a, b = 0, 1\n    for _ in range(n):\n        print(a)\n        a, b = b, a + b\nfib(10)"},
	{"Factorial of 5", "import math\nprint(math.factorial(5))"},
	{"Sort a list", "nums = [3, 1, 4, 1, 5]\nprint(sorted(nums))"},
	{"100 divided by 7", "print(100 / 7)"},
	{"Random number", "import random\nprint(random.randint(1, 100))"},
	{"Current date", "from datetime import datetime\nprint(datetime.now())"},
	{"List comprehension", "print([x**2 for x in range(10)])"},
	{"String reverse", "print('hello'[::-1])"},
	{"Is 17 prime", "print(all(17 % i != 0 for i in range(2, int(17**0.5)+1)))"},
	{"Sum of 1-5", "print(sum([1,2,3,4,5]))"},
	{"Max in list", "print(max([3, 7, 2, 9]))"},
	{"Celsius to Fahrenheit 25C", "print(25 * 9/5 + 32)"},
}

var jsSnippets = []snippet{
	{"console.log hi", "console.log('hi')"},
	{"Reverse string", "console.log('hello'.split('').reverse().join(''))"},
	{"Array sum", "console.log([1,2,3,4,5].reduce((a,b)=>a+b,0))"},
	{"Current timestamp", "console.log(Date.now())"},
}

func genCode(_ *rand.Rand, cat *catalog.Catalog) ([]corpus.Example, error) {
	tools, err := toolset(cat, "execute_python", "execute_javascript")
	if err != nil {
		return nil, err
	}
	var out []corpus.Example
	for _, s := range pythonSnippets {
		phrasings := []string{
			fmt.Sprintf("Python: %s", s.desc),
			fmt.Sprintf("Calculate %s in Python", s.desc),
			fmt.Sprintf("run python %s", s.desc),
			fmt.Sprintf("execute python: %s", s.desc),
			fmt.Sprintf("python code: %s", s.desc),
		}
		args := map[string]any{"code": s.code}
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "execute_python", args, tools, "Execute Python."))
		}
	}
	for _, s := range jsSnippets {
		phrasings := []string{
			fmt.Sprintf("JavaScript: %s", s.desc),
			fmt.Sprintf("Run JS: %s", s.desc),
			fmt.Sprintf("execute javascript %s", s.desc),
		}
		args := map[string]any{"code": s.code}
		for _, msg := range phrasings {
			out = append(out, corpus.New(msg, "execute_javascript", args, tools, "Execute JavaScript."))
		}
	}
	return out, nil
}
