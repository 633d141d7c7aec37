// Package suggest holds the static problem-suggestion catalog for the
// two A/B variants. The lists are curated, not computed.
package suggest

import (
	"math/rand/v2"

	"dsatrack/internal/models"
)

type Suggestion struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Difficulty    string   `json:"difficulty"`
	Topic         string   `json:"topic"`
	Reason        string   `json:"reason"`
	URL           string   `json:"url"`
	EstimatedTime string   `json:"estimatedTime"`
	Concepts      []string `json:"concepts"`
}

var difficultyBased = []Suggestion{
	{
		ID:            1,
		Name:          "Container With Most Water",
		Difficulty:    "Medium",
		Topic:         "Arrays",
		Reason:        "You've mastered easy array problems. Time for medium!",
		URL:           "https://leetcode.com/problems/container-with-most-water/",
		EstimatedTime: "25 min",
		Concepts:      []string{"Two Pointers", "Greedy"},
	},
	{
		ID:            2,
		Name:          "Valid Parentheses",
		Difficulty:    "Easy",
		Topic:         "Stacks",
		Reason:        "Strengthen your stack fundamentals",
		URL:           "https://leetcode.com/problems/valid-parentheses/",
		EstimatedTime: "15 min",
		Concepts:      []string{"Stack", "String"},
	},
	{
		ID:            3,
		Name:          "Binary Tree Level Order Traversal",
		Difficulty:    "Medium",
		Topic:         "Trees",
		Reason:        "Build on your tree knowledge",
		URL:           "https://leetcode.com/problems/binary-tree-level-order-traversal/",
		EstimatedTime: "30 min",
		Concepts:      []string{"BFS", "Queue", "Binary Tree"},
	},
}

var topicBased = []Suggestion{
	{
		ID:            1,
		Name:          "Merge Two Sorted Lists",
		Difficulty:    "Easy",
		Topic:         "Linked Lists",
		Reason:        "You haven't practiced linked lists recently",
		URL:           "https://leetcode.com/problems/merge-two-sorted-lists/",
		EstimatedTime: "20 min",
		Concepts:      []string{"Linked List", "Recursion"},
	},
	{
		ID:            2,
		Name:          "House Robber",
		Difficulty:    "Medium",
		Topic:         "Dynamic Programming",
		Reason:        "Perfect intro to DP patterns",
		URL:           "https://leetcode.com/problems/house-robber/",
		EstimatedTime: "25 min",
		Concepts:      []string{"Dynamic Programming", "Array"},
	},
	{
		ID:            3,
		Name:          "Find All Anagrams in a String",
		Difficulty:    "Medium",
		Topic:         "Strings",
		Reason:        "Improve your string manipulation skills",
		URL:           "https://leetcode.com/problems/find-all-anagrams-in-a-string/",
		EstimatedTime: "35 min",
		Concepts:      []string{"Sliding Window", "Hash Table"},
	},
}

// ForVariant returns a copy of the suggestion list for a variant.
func ForVariant(v models.Variant) []Suggestion {
	var src []Suggestion
	switch v {
	case models.VariantTopic:
		src = topicBased
	default:
		src = difficultyBased
	}
	out := make([]Suggestion, len(src))
	copy(out, src)
	return out
}

// AssignVariant picks a variant with a fair coin, mirroring the
// client-side assignment the experiment launched with.
func AssignVariant() models.Variant {
	if rand.IntN(2) == 0 {
		return models.VariantDifficulty
	}
	return models.VariantTopic
}
