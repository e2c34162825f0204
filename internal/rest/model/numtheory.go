package model

import (
	"github.com/sergeii/cryptotools/internal/core/entities/factorization"
)

type GCDQuery struct {
	A *int64 `binding:"required" form:"a"`
	B *int64 `binding:"required" form:"b"`
}

type GCD struct {
	A   int64 `json:"a"`
	B   int64 `json:"b"`
	GCD int64 `json:"gcd"`
}

type ModPowQuery struct {
	Base     *int64 `binding:"required" form:"base"`
	Exponent *int64 `binding:"required" form:"exponent"`
	Modulus  *int64 `binding:"required" form:"modulus"`
}

type ModPow struct {
	Base     int64 `json:"base"`
	Exponent int64 `json:"exponent"`
	Modulus  int64 `json:"modulus"`
	Result   int64 `json:"result"`
}

type FactorQuery struct {
	N *int64 `binding:"required" form:"n"`
}

type Factorization struct {
	N       int64 `json:"n"`
	X       int64 `json:"x"`
	Y       int64 `json:"y"`
	Trivial bool  `json:"trivial"`
}

func NewFactorizationFromDomain(f factorization.Factorization) Factorization {
	return Factorization{
		N:       f.N,
		X:       f.X,
		Y:       f.Y,
		Trivial: f.Trivial(),
	}
}
