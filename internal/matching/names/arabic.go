/*
 * Copyright (c) 2026, HLP Registry Project.
 *
 * HLP Registry Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package names scores similarity between free-text personal names that
// may contain Arabic diacritics, orthographic variants or common name
// prefixes. All normalization steps are no-ops on Latin text, so mixed
// Arabic/Latin input degrades gracefully.
package names

import (
	"math"
	"strings"
)

// Orthographic equivalents in casual writing.
var arabicNormalizations = map[rune]rune{
	'أ': 'ا', 'إ': 'ا', 'آ': 'ا', // Alef variants
	'ة': 'ه', // Taa marbuta
	'ى': 'ي', // Alef maksura
	'ؤ': 'و', // Waw with hamza
	'ئ': 'ي', // Yaa with hamza
}

// Common Arabic name prefixes and articles.
var arabicPrefixes = []string{"ال", "ابن", "أبو", "عبد"}

// NormalizeArabic strips diacritics (harakat), canonicalizes letter
// variants and collapses whitespace. Empty input yields an empty string.
func NormalizeArabic(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		// Harakat range plus the superscript alef.
		if (r >= 0x064B && r <= 0x065F) || r == 0x0670 {
			continue
		}
		if repl, ok := arabicNormalizations[r]; ok {
			r = repl
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}

// RemovePrefixes normalizes the name and strips common leading name
// components (definite article, "son of" and similar honorifics).
func RemovePrefixes(name string) string {
	name = NormalizeArabic(name)
	for _, prefix := range arabicPrefixes {
		if strings.HasPrefix(name, prefix+" ") {
			name = name[len(prefix)+1:]
		} else if strings.HasPrefix(name, prefix) {
			name = name[len(prefix):]
		}
	}
	return strings.TrimSpace(name)
}

// CalculateSimilarity returns a similarity score in [0,1] between two
// names. Exact match after normalization scores 1.0; prefix-insensitive
// or token-order-insensitive equality scores 0.95; otherwise the score is
// a blend of token Jaccard similarity and normalized edit distance that
// never drops below the pure edit-distance similarity.
func CalculateSimilarity(name1, name2 string) float64 {
	if name1 == "" || name2 == "" {
		return 0.0
	}

	norm1 := NormalizeArabic(name1)
	norm2 := NormalizeArabic(name2)

	if norm1 == norm2 {
		return 1.0
	}

	if RemovePrefixes(name1) == RemovePrefixes(name2) {
		return 0.95
	}

	tokens1 := tokenSet(norm1)
	tokens2 := tokenSet(norm2)

	if tokenSetsEqual(tokens1, tokens2) {
		return 0.95
	}

	tokenSim := jaccard(tokens1, tokens2)
	editSim := editDistanceSimilarity(norm1, norm2)

	// The blend guards against token-splitting artifacts on short or
	// garbled names.
	return math.Max(tokenSim*0.7+editSim*0.3, editSim)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func tokenSetsEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for tok := range a {
		if _, ok := b[tok]; !ok {
			return false
		}
	}
	return true
}

func jaccard(a, b map[string]struct{}) float64 {
	intersection := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// editDistanceSimilarity is 1 minus the Levenshtein distance normalized
// by the longer length. Names are short, so the full DP matrix is fine.
func editDistanceSimilarity(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0.0
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	len1, len2 := len(r1), len(r2)
	maxLen := len1
	if len2 > maxLen {
		maxLen = len2
	}

	dp := make([][]int, len1+1)
	for i := range dp {
		dp[i] = make([]int, len2+1)
		dp[i][0] = i
	}
	for j := 0; j <= len2; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			deletion := dp[i-1][j] + 1
			insertion := dp[i][j-1] + 1
			substitution := dp[i-1][j-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			dp[i][j] = min
		}
	}

	return 1.0 - float64(dp[len1][len2])/float64(maxLen)
}
