// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// APIKeyEntry is one configurable credential shown in the settings panel.
//
// Name is the stable identifier of the entry and is unique within a list.
// Value holds the secret itself and is transmitted under the "key" JSON field,
// matching the key store wire format.
type APIKeyEntry struct {
	// Name identifies the credential, e.g. "OPENAI_API_KEY".
	Name string `json:"name"`

	// Value is the current secret string. It may be empty.
	Value string `json:"key"`

	// Description is human-readable help text for the credential.
	Description string `json:"description"`

	// Required only drives UI emphasis; nothing validates against it.
	Required bool `json:"required"`
}

var defaultAPIKeys = [...]APIKeyEntry{
	{Name: "OPENAI_API_KEY", Description: "OpenAI API key for GPT models and embeddings"},
	{Name: "ANTHROPIC_API_KEY", Description: "Anthropic API key for Claude models"},
	{Name: "COHERE_API_KEY", Description: "Cohere API key for embeddings and generation"},
	{Name: "FIRECRAWL_API_KEY", Description: "Firecrawl API key for web scraping"},
	{Name: "GROQ_API_KEY", Description: "Groq API key for fast inference"},
	{Name: "VOYAGE_API_KEY", Description: "VoyageAI API key for embeddings"},
	{Name: "UPSTAGE_API_KEY", Description: "Upstage API key for document parsing and embeddings"},
}

// DefaultAPIKeys returns the built-in list of known provider keys, each with an
// empty value and Required set to false. A new slice is returned on every call.
func DefaultAPIKeys() []APIKeyEntry {
	out := make([]APIKeyEntry, len(defaultAPIKeys))
	copy(out, defaultAPIKeys[:])
	return out
}
