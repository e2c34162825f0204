package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/internal/core/usecases/computegcd"
	"github.com/sergeii/cryptotools/internal/core/usecases/computemodpow"
	"github.com/sergeii/cryptotools/internal/core/usecases/decrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/encrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/factorize"
	"github.com/sergeii/cryptotools/internal/core/usecases/gettable"
	"github.com/sergeii/cryptotools/internal/core/usecases/preparetext"
	"github.com/sergeii/cryptotools/internal/settings"
)

type Container struct {
	EncryptText   encrypttext.UseCase
	DecryptText   decrypttext.UseCase
	PrepareText   preparetext.UseCase
	GetTable      gettable.UseCase
	Factorize     factorize.UseCase
	ComputeGCD    computegcd.UseCase
	ComputeModPow computemodpow.UseCase
}

func New(
	encryptTextUseCase encrypttext.UseCase,
	decryptTextUseCase decrypttext.UseCase,
	prepareTextUseCase preparetext.UseCase,
	getTableUseCase gettable.UseCase,
	factorizeUseCase factorize.UseCase,
	computeGCDUseCase computegcd.UseCase,
	computeModPowUseCase computemodpow.UseCase,
) Container {
	return Container{
		EncryptText:   encryptTextUseCase,
		DecryptText:   decryptTextUseCase,
		PrepareText:   prepareTextUseCase,
		GetTable:      getTableUseCase,
		Factorize:     factorizeUseCase,
		ComputeGCD:    computeGCDUseCase,
		ComputeModPow: computeModPowUseCase,
	}
}

func provideFactorizeOptions(s settings.Settings) factorize.UseCaseOptions {
	return factorize.UseCaseOptions{
		SearchLimit: s.FermatSearchLimit,
		CacheTTL:    s.FactorizationCacheTTL,
	}
}

var Module = fx.Module("container",
	fx.Provide(provideFactorizeOptions),
	fx.Provide(encrypttext.New),
	fx.Provide(decrypttext.New),
	fx.Provide(preparetext.New),
	fx.Provide(gettable.New),
	fx.Provide(factorize.New),
	fx.Provide(computegcd.New),
	fx.Provide(computemodpow.New),
	fx.Provide(New),
)
