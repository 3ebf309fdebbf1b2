// Package pricing maps (model, token counts) to USD cost and provides the
// statistics primitives used for task percentiles and target metrics.
package pricing

import (
	"regexp"
	"sort"
	"strings"
)

// ModelRates holds per-million-token USD rates for one model.
type ModelRates struct {
	InputPerM  float64
	OutputPerM float64
	CachedPerM float64

	// Long-context tier (Gemini). When LongContextThreshold > 0 and
	// prompt_tokens exceeds it, the Long* rates apply.
	LongContextThreshold int
	LongInputPerM        float64
	LongOutputPerM       float64
}

// rates is the pricing table, keyed by normalized model name.
// Per-million-token USD, input/output/cached.
var rates = map[string]ModelRates{
	// OpenAI
	"gpt-4o":        {InputPerM: 2.50, OutputPerM: 10.00, CachedPerM: 1.25},
	"gpt-4o-mini":   {InputPerM: 0.15, OutputPerM: 0.60, CachedPerM: 0.075},
	"gpt-4.1":       {InputPerM: 2.00, OutputPerM: 8.00, CachedPerM: 0.50},
	"gpt-4.1-mini":  {InputPerM: 0.40, OutputPerM: 1.60, CachedPerM: 0.10},
	"gpt-4.1-nano":  {InputPerM: 0.10, OutputPerM: 0.40, CachedPerM: 0.025},
	"gpt-4":         {InputPerM: 30.00, OutputPerM: 60.00},
	"gpt-4-turbo":   {InputPerM: 10.00, OutputPerM: 30.00},
	"gpt-3.5-turbo": {InputPerM: 0.50, OutputPerM: 1.50},
	"o3":            {InputPerM: 2.00, OutputPerM: 8.00, CachedPerM: 0.50},
	"o4-mini":       {InputPerM: 1.10, OutputPerM: 4.40, CachedPerM: 0.275},

	// Anthropic
	"claude-opus-4":     {InputPerM: 15.00, OutputPerM: 75.00, CachedPerM: 1.50},
	"claude-sonnet-4":   {InputPerM: 3.00, OutputPerM: 15.00, CachedPerM: 0.30},
	"claude-3-7-sonnet": {InputPerM: 3.00, OutputPerM: 15.00, CachedPerM: 0.30},
	"claude-3-5-sonnet": {InputPerM: 3.00, OutputPerM: 15.00, CachedPerM: 0.30},
	"claude-3-5-haiku":  {InputPerM: 0.80, OutputPerM: 4.00, CachedPerM: 0.08},

	// Gemini: two tiers switched by a long-context threshold on prompt tokens.
	"gemini-2.5-pro": {
		InputPerM: 1.25, OutputPerM: 10.00, CachedPerM: 0.31,
		LongContextThreshold: 200_000, LongInputPerM: 2.50, LongOutputPerM: 15.00,
	},
	"gemini-2.5-flash": {InputPerM: 0.30, OutputPerM: 2.50, CachedPerM: 0.075},
	"gemini-2.0-flash": {InputPerM: 0.10, OutputPerM: 0.40, CachedPerM: 0.025},
	"gemini-1.5-pro": {
		InputPerM: 1.25, OutputPerM: 5.00, CachedPerM: 0.3125,
		LongContextThreshold: 128_000, LongInputPerM: 2.50, LongOutputPerM: 10.00,
	},
}

// providerPrefixes are stripped before table lookup.
var providerPrefixes = []string{"openai/", "anthropic/", "google/", "gemini/", "vertex/"}

// dateSuffixRe strips trailing release dates, e.g. "-2024-08-06", "-20250514",
// "@20240229" and "-0125" snapshot tags.
var dateSuffixRe = regexp.MustCompile(`[-@](\d{4}-\d{2}-\d{2}|\d{8}|\d{4})$`)

// NormalizeModel strips the provider prefix and date suffix from a model name.
func NormalizeModel(model string) string {
	m := strings.ToLower(strings.TrimSpace(model))
	for _, p := range providerPrefixes {
		if strings.HasPrefix(m, p) {
			m = strings.TrimPrefix(m, p)
			break
		}
	}
	for {
		stripped := dateSuffixRe.ReplaceAllString(m, "")
		if stripped == m {
			break
		}
		m = stripped
	}
	return m
}

// CalculateCost returns the USD cost for a call, or nil for unknown models.
// Cached tokens are billed at the cached rate and subtracted from the
// full-rate prompt tokens.
func CalculateCost(model string, promptTokens, completionTokens, cachedTokens int) *float64 {
	r, ok := rates[NormalizeModel(model)]
	if !ok {
		return nil
	}

	inputRate, outputRate := r.InputPerM, r.OutputPerM
	if r.LongContextThreshold > 0 && promptTokens > r.LongContextThreshold {
		inputRate, outputRate = r.LongInputPerM, r.LongOutputPerM
	}

	if cachedTokens > promptTokens {
		cachedTokens = promptTokens
	}
	uncached := promptTokens - cachedTokens

	cost := float64(uncached)*inputRate/1e6 +
		float64(cachedTokens)*r.CachedPerM/1e6 +
		float64(completionTokens)*outputRate/1e6
	return &cost
}

// AvailableModels returns the normalized model names in the pricing table,
// sorted. The optimizer constrains its model enum to this list.
func AvailableModels() []string {
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
