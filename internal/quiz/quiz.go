// Package quiz serves single-question skill checks.
package quiz

import (
	"fmt"
	"strings"

	"github.com/AlenSaijo/career-roadmap-generator/internal/types"
)

// bankOrder fixes lookup order so overlapping skill names resolve the
// same way on every call.
var bankOrder = []string{"python", "docker", "sql"}

var quizBank = map[string]types.QuizItem{
	"python": {
		Question: "What is the output of print(2 ** 3)?",
		Options:  []string{"6", "8", "9"},
		Correct:  "8",
	},
	"docker": {
		Question: "Which command builds an image?",
		Options:  []string{"docker build", "docker create", "docker run"},
		Correct:  "docker build",
	},
	"sql": {
		Question: "Which keyword is used to retrieve data?",
		Options:  []string{"GET", "SELECT", "FETCH"},
		Correct:  "SELECT",
	},
}

// Lookup returns the quiz item for the first bank key contained in the
// lowercased skill name, or a generic confidence-rating question for
// skills outside the bank.
func Lookup(skill string) types.QuizItem {
	skillLower := strings.ToLower(skill)
	for _, key := range bankOrder {
		if strings.Contains(skillLower, key) {
			return quizBank[key]
		}
	}
	return types.QuizItem{
		Question: fmt.Sprintf("Rate your confidence in %s (1-5)", skillLower),
		Options:  []string{"1", "3", "5"},
		Correct:  "5",
	}
}
