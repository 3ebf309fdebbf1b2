// Package clustering groups unmatched traces by prompt similarity and infers
// a {{var}} template from each cluster's first messages.
package clustering

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	// MinClusterSize is the minimum number of similar traces before a
	// template is inferred.
	MinClusterSize = 3
	// SimilarityThreshold is the pairwise token-set Jaccard floor.
	SimilarityThreshold = 0.6
	// MinMessageLength excludes trivially short first messages.
	MinMessageLength = 10
)

// Sample is one candidate trace: its id and the first input message text.
type Sample struct {
	TraceID string
	Text    string
}

var wordRe = regexp.MustCompile(`\S+`)

// Jaccard returns the token-set Jaccard similarity of two texts,
// case-insensitive.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	inter := 0
	for tok := range setA {
		if setB[tok] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range wordRe.FindAllString(strings.ToLower(s), -1) {
		set[tok] = true
	}
	return set
}

// FindClusters partitions samples into groups whose members are pairwise
// similar above the threshold and at least MinClusterSize strong. Samples
// shorter than MinMessageLength are skipped. Greedy and deterministic:
// samples are seeded in TraceID order and each joins the first cluster it is
// similar to every member of.
func FindClusters(samples []Sample) [][]Sample {
	eligible := make([]Sample, 0, len(samples))
	for _, s := range samples {
		if len(s.Text) >= MinMessageLength {
			eligible = append(eligible, s)
		}
	}
	sort.Slice(eligible, func(i, j int) bool { return eligible[i].TraceID < eligible[j].TraceID })

	var clusters [][]Sample
	for _, s := range eligible {
		placed := false
		for i, cluster := range clusters {
			if similarToAll(s, cluster) {
				clusters[i] = append(cluster, s)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, []Sample{s})
		}
	}

	var out [][]Sample
	for _, cluster := range clusters {
		if len(cluster) >= MinClusterSize {
			out = append(out, cluster)
		}
	}
	return out
}

func similarToAll(s Sample, cluster []Sample) bool {
	for _, member := range cluster {
		if Jaccard(s.Text, member.Text) < SimilarityThreshold {
			return false
		}
	}
	return true
}

// InferTemplate aligns the texts by longest-common-subsequence of word
// tokens. Runs of differing tokens collapse into {{var_k}} placeholders
// numbered in encounter order; literal tokens keep the first text's original
// whitespace. Byte-identical inputs yield a template with no placeholders.
//
// The second return value holds, per input text, the variable binding that
// renders the template back into that text's word content.
func InferTemplate(texts []string) (string, []map[string]string, error) {
	if len(texts) == 0 {
		return "", nil, fmt.Errorf("no texts to infer from")
	}

	wordLists := make([][]string, len(texts))
	for i, t := range texts {
		wordLists[i] = wordRe.FindAllString(t, -1)
	}

	common := wordLists[0]
	for _, words := range wordLists[1:] {
		common = lcs(common, words)
	}
	if len(common) == 0 {
		return "", nil, fmt.Errorf("texts share no common tokens")
	}

	// gaps[i][g] is text i's content between common token g-1 and g
	// (g = len(common) is the trailing gap).
	gaps := make([][]string, len(texts))
	for i, t := range texts {
		gaps[i] = gapContents(t, common)
	}

	// A gap becomes a placeholder when any member has content there.
	placeholderGap := make([]bool, len(common)+1)
	for g := range placeholderGap {
		for i := range texts {
			if gaps[i][g] != "" {
				placeholderGap[g] = true
				break
			}
		}
	}

	varNames := make(map[int]string)
	k := 0
	for g, isVar := range placeholderGap {
		if isVar {
			varNames[g] = fmt.Sprintf("var_%d", k)
			k++
		}
	}

	tmpl := buildTemplate(texts[0], common, placeholderGap, varNames)

	bindings := make([]map[string]string, len(texts))
	for i := range texts {
		b := make(map[string]string)
		for g, name := range varNames {
			b[name] = gaps[i][g]
		}
		bindings[i] = b
	}
	return tmpl, bindings, nil
}

// lcs returns the longest common subsequence of two token lists.
func lcs(a, b []string) []string {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}
	out := make([]string, 0, dp[0][0])
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case dp[i+1][j] >= dp[i][j+1]:
			i++
		default:
			j++
		}
	}
	return out
}

// token is one word of a text with its byte offsets.
type token struct {
	text       string
	start, end int
}

func tokenize(s string) []token {
	var toks []token
	for _, loc := range wordRe.FindAllStringIndex(s, -1) {
		toks = append(toks, token{text: s[loc[0]:loc[1]], start: loc[0], end: loc[1]})
	}
	return toks
}

// matchCommon maps each common token to a word index in toks via greedy
// left-to-right matching. common is a subsequence of the words by
// construction.
func matchCommon(toks []token, common []string) []int {
	matches := make([]int, 0, len(common))
	j := 0
	for _, c := range common {
		for j < len(toks) && toks[j].text != c {
			j++
		}
		if j == len(toks) {
			break
		}
		matches = append(matches, j)
		j++
	}
	return matches
}

// gapContents returns, for each of the len(common)+1 gaps, the original
// substring of s covering that gap's words (interior whitespace preserved,
// exterior trimmed).
func gapContents(s string, common []string) []string {
	toks := tokenize(s)
	matches := matchCommon(toks, common)

	out := make([]string, len(common)+1)
	prevEnd := 0 // word index one past the previous match
	for g := 0; g <= len(common); g++ {
		var until int
		if g < len(matches) {
			until = matches[g]
		} else {
			until = len(toks)
		}
		if until > prevEnd {
			out[g] = s[toks[prevEnd].start:toks[until-1].end]
		}
		if g < len(matches) {
			prevEnd = matches[g] + 1
		}
	}
	return out
}

// buildTemplate rewrites the reference text, replacing each placeholder
// gap's words with its {{var_k}} and keeping everything else verbatim.
func buildTemplate(ref string, common []string, placeholderGap []bool, varNames map[int]string) string {
	toks := tokenize(ref)
	matches := matchCommon(toks, common)

	var b strings.Builder
	pos := 0     // byte offset into ref
	prevEnd := 0 // word index one past the previous match
	for g := 0; g <= len(common); g++ {
		var until int
		if g < len(matches) {
			until = matches[g]
		} else {
			until = len(toks)
		}
		if placeholderGap[g] {
			if until > prevEnd {
				// Replace this text's gap words in place.
				b.WriteString(ref[pos:toks[prevEnd].start])
				b.WriteString("{{" + varNames[g] + "}}")
				pos = toks[until-1].end
			} else {
				// This text has nothing here; insert before the next word.
				var at int
				if g < len(matches) {
					at = toks[matches[g]].start
				} else {
					at = len(ref)
				}
				b.WriteString(ref[pos:at])
				b.WriteString("{{" + varNames[g] + "}}")
				pos = at
			}
		}
		if g < len(matches) {
			b.WriteString(ref[pos:toks[matches[g]].end])
			pos = toks[matches[g]].end
			prevEnd = matches[g] + 1
		}
	}
	b.WriteString(ref[pos:])
	return b.String()
}
