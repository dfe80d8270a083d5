package matching

import (
	"math"

	"jobpulse/internal/domain/job"
)

// Vector is a sparse TF-IDF vector keyed by vocabulary index.
type Vector map[int]float64

// Vectorizer holds a fitted TF-IDF model over skill token lists.
// Idf uses smoothing (ln((1+n)/(1+df))+1) and Transform l2-normalizes,
// so two identical token sets always have cosine similarity 1.0.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
	docs  int
}

// Fit builds the vocabulary and document frequencies from the corpus of
// job skill lists. Tokens are normalized before counting.
func Fit(corpus [][]string) *Vectorizer {
	vocab := make(map[string]int)
	df := make([]int, 0)

	for _, doc := range corpus {
		seen := make(map[int]struct{}, len(doc))
		for _, tok := range job.NormalizeSkills(doc) {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(vocab)
				vocab[tok] = idx
				df = append(df, 0)
			}
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			df[idx]++
		}
	}

	n := len(corpus)
	idf := make([]float64, len(df))
	for i, d := range df {
		idf[i] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	return &Vectorizer{vocab: vocab, idf: idf, docs: n}
}

// VocabSize reports how many distinct skills the corpus produced.
func (v *Vectorizer) VocabSize() int {
	if v == nil {
		return 0
	}
	return len(v.vocab)
}

// Transform maps a skill list to its l2-normalized TF-IDF vector.
// Tokens outside the fitted vocabulary are ignored; an empty or fully
// out-of-vocabulary list yields an empty vector.
func (v *Vectorizer) Transform(tokens []string) Vector {
	if v == nil || len(v.vocab) == 0 {
		return Vector{}
	}

	tf := make(map[int]float64)
	for _, tok := range tokens {
		n := job.NormalizeSkill(tok)
		if n == "" {
			continue
		}
		if idx, ok := v.vocab[n]; ok {
			tf[idx]++
		}
	}
	if len(tf) == 0 {
		return Vector{}
	}

	vec := make(Vector, len(tf))
	var norm float64
	for idx, count := range tf {
		w := count * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return Vector{}
	}
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors already produced
// by Transform. Since both are unit length this is just the dot product.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	if dot > 1 {
		return 1
	}
	if dot < 0 {
		return 0
	}
	return dot
}
