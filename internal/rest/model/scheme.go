package model

import (
	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
)

type Scheme struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func NewSchemeFromDomain(s scheme.Scheme) Scheme {
	return Scheme{
		Name: s.String(),
		Slug: s.Slug(),
	}
}

type CipherText struct {
	Key  string `binding:"required" json:"key"`
	Text string `binding:"required" json:"text"`
}

type PrepareText struct {
	Text string `binding:"required" json:"text"`
}

type CipherResult struct {
	Scheme string `json:"scheme"`
	Text   string `json:"text"`
}

func NewCipherResult(s scheme.Scheme, text string) CipherResult {
	return CipherResult{
		Scheme: s.Slug(),
		Text:   text,
	}
}
