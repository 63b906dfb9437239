// Package interview serves role-matched interview questions.
package interview

import (
	"math/rand"
	"strings"
	"time"
)

// maxQuestions caps a sampled question set.
const maxQuestions = 5

// generalKey is always included and never matched against the role.
const generalKey = "general"

// bankOrder fixes pool assembly order; Go map iteration is randomized
// and the question order feeding the sampler must be stable.
var bankOrder = []string{"python", "java", "react", "docker", generalKey}

var questionBank = map[string][]string{
	"python": {
		"What is the difference between list and tuple?",
		"Explain decorators.",
		"How does memory management work in Python?",
	},
	"java": {
		"Explain the concept of OOP.",
		"What is the difference between JDK, JRE, and JVM?",
		"Explain Multi-threading.",
	},
	"react": {
		"What is the Virtual DOM?",
		"Explain hooks in React.",
		"What is Redux used for?",
	},
	"docker": {
		"What is the difference between an image and a container?",
		"Explain Docker Compose.",
		"How do you optimize a Dockerfile?",
	},
	generalKey: {
		"Tell me about a challenging project.",
		"Where do you see yourself in 5 years?",
		"How do you handle tight deadlines?",
	},
}

// Source yields random integers in [0, n). It is the injectable
// randomness hook: production uses a time-seeded math/rand source,
// tests supply a fixed seed for reproducible samples.
type Source interface {
	Intn(n int) int
}

// NewSource returns a time-seeded Source for production use.
func NewSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Questions returns up to 5 interview questions for a role, sampled
// without replacement from the general pool plus every topic pool whose
// key occurs in the lowercased role. A nil src falls back to a
// time-seeded source. This is the one intentionally non-deterministic
// step of report assembly; assert on membership, not order.
func Questions(role string, src Source) []string {
	if src == nil {
		src = NewSource()
	}

	pool := Pool(role)
	n := min(len(pool), maxQuestions)

	// Partial Fisher-Yates: the first n positions end up holding a
	// uniform sample without replacement.
	sampled := make([]string, len(pool))
	copy(sampled, pool)
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(sampled)-i)
		sampled[i], sampled[j] = sampled[j], sampled[i]
	}
	return sampled[:n]
}

// Pool returns the deterministic candidate pool for a role: the general
// questions plus each topic bank whose key is a substring of the role.
func Pool(role string) []string {
	pool := make([]string, 0, 2*maxQuestions)
	pool = append(pool, questionBank[generalKey]...)

	roleLower := strings.ToLower(role)
	for _, key := range bankOrder {
		if key == generalKey {
			continue
		}
		if strings.Contains(roleLower, key) {
			pool = append(pool, questionBank[key]...)
		}
	}
	return pool
}
