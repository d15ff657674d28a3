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

package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// NormalizeArabic
// ---------------------------------------------------------------------------

func TestNormalizeArabic_StripsHarakat(t *testing.T) {
	assert.Equal(t, "محمد", NormalizeArabic("مُحَمَّد"))
}

func TestNormalizeArabic_AlefVariants(t *testing.T) {
	assert.Equal(t, "احمد", NormalizeArabic("أحمد"))
	assert.Equal(t, "ابراهيم", NormalizeArabic("إبراهيم"))
	assert.Equal(t, "امنه", NormalizeArabic("آمنة"))
}

func TestNormalizeArabic_TaaMarbutaAndMaksura(t *testing.T) {
	assert.Equal(t, "فاطمه", NormalizeArabic("فاطمة"))
	assert.Equal(t, "ليلي", NormalizeArabic("ليلى"))
}

func TestNormalizeArabic_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "محمد احمد", NormalizeArabic("  محمد   أحمد  "))
}

func TestNormalizeArabic_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeArabic(""))
}

func TestNormalizeArabic_LatinPassThrough(t *testing.T) {
	assert.Equal(t, "John Smith", NormalizeArabic("John Smith"))
}

// ---------------------------------------------------------------------------
// RemovePrefixes
// ---------------------------------------------------------------------------

func TestRemovePrefixes_DefiniteArticle(t *testing.T) {
	assert.Equal(t, "احمد", RemovePrefixes("الأحمد"))
}

func TestRemovePrefixes_NoPrefix(t *testing.T) {
	assert.Equal(t, "محمد", RemovePrefixes("محمد"))
}

// ---------------------------------------------------------------------------
// CalculateSimilarity
// ---------------------------------------------------------------------------

func TestCalculateSimilarity_IdenticalNames(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("محمد أحمد", "محمد أحمد"))
}

func TestCalculateSimilarity_DiacriticsIgnored(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("مُحَمَّد", "محمد"))
}

func TestCalculateSimilarity_TaaMarbutaVariants(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("فاطمة", "فاطمه"))
}

func TestCalculateSimilarity_PrefixInsensitive(t *testing.T) {
	assert.Equal(t, 0.95, CalculateSimilarity("الأحمد", "أحمد"))
}

func TestCalculateSimilarity_TokenOrderInsensitive(t *testing.T) {
	assert.Equal(t, 0.95, CalculateSimilarity("محمد خالد أحمد", "أحمد محمد خالد"))
}

func TestCalculateSimilarity_EmptyNames(t *testing.T) {
	assert.Equal(t, 0.0, CalculateSimilarity("", "محمد"))
	assert.Equal(t, 0.0, CalculateSimilarity("محمد", ""))
	assert.Equal(t, 0.0, CalculateSimilarity("", ""))
}

func TestCalculateSimilarity_Symmetric(t *testing.T) {
	a := CalculateSimilarity("محمد أحمد", "محمود أحمد")
	b := CalculateSimilarity("محمود أحمد", "محمد أحمد")
	assert.Equal(t, a, b)
}

func TestCalculateSimilarity_CloseSpelling(t *testing.T) {
	// One-letter difference on a short name should still score well above
	// the unrelated-name range.
	score := CalculateSimilarity("محمد", "محمود")
	assert.Greater(t, score, 0.5)
	assert.Less(t, score, 1.0)
}

func TestCalculateSimilarity_UnrelatedNames(t *testing.T) {
	score := CalculateSimilarity("محمد أحمد", "خالد يوسف")
	assert.Less(t, score, 0.5)
}

func TestCalculateSimilarity_NeverBelowEditSimilarity(t *testing.T) {
	// Token Jaccard is 0 here but the strings differ by one letter; the
	// blend must not fall below pure edit-distance similarity.
	score := CalculateSimilarity("كريم", "كريمة")
	edit := editDistanceSimilarity(NormalizeArabic("كريم"), NormalizeArabic("كريمة"))
	assert.GreaterOrEqual(t, score, edit)
}

// ---------------------------------------------------------------------------
// editDistanceSimilarity
// ---------------------------------------------------------------------------

func TestEditDistanceSimilarity_Identical(t *testing.T) {
	assert.Equal(t, 1.0, editDistanceSimilarity("محمد", "محمد"))
}

func TestEditDistanceSimilarity_CountsRunesNotBytes(t *testing.T) {
	// Arabic letters are multi-byte; a single-letter edit on a 4-letter
	// name must score 0.75, not a byte-based ratio.
	assert.InDelta(t, 0.75, editDistanceSimilarity("محمد", "محمو"), 1e-9)
}

func TestEditDistanceSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, editDistanceSimilarity("", "محمد"))
}
