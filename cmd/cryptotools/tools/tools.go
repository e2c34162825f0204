package tools

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/fx"

	"github.com/sergeii/cryptotools/cmd/cryptotools/application"
	"github.com/sergeii/cryptotools/cmd/cryptotools/container"
	"github.com/sergeii/cryptotools/internal/core/entities/scheme"
	"github.com/sergeii/cryptotools/internal/core/usecases/computegcd"
	"github.com/sergeii/cryptotools/internal/core/usecases/computemodpow"
	"github.com/sergeii/cryptotools/internal/core/usecases/decrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/encrypttext"
	"github.com/sergeii/cryptotools/internal/core/usecases/factorize"
	"github.com/sergeii/cryptotools/internal/core/usecases/gettable"
	"github.com/sergeii/cryptotools/internal/core/usecases/preparetext"
)

// execute starts the application just long enough to run fn against the use cases.
func execute(
	builder *application.Builder,
	fn func(context.Context, container.Container) error,
	opts ...fx.Option,
) error {
	var ctr container.Container

	app := builder.Add(opts...).Add(fx.Populate(&ctr)).Build()
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(context.Background(), ctr)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()

	return errors.Join(runErr, app.Stop(stopCtx))
}

type encryptCmd struct {
	Scheme  string `arg:""  help:"Cipher scheme (playfair, shift)"`
	Text    string `arg:""  help:"Plaintext made of lowercase letters"`
	Key     string `help:"Cipher key: a keyword for playfair, a number within [0,25] for shift" required:""` // nolint:lll
	Prepare bool   `help:"Normalize free-form text into plaintext before encrypting"`
}

func (c *encryptCmd) Run(builder *application.Builder, out io.Writer) error {
	s, err := scheme.FromSlug(c.Scheme)
	if err != nil {
		return err
	}
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		plaintext := c.Text
		if c.Prepare {
			prepared, prepErr := ctr.PrepareText.Execute(ctx, preparetext.NewRequest(s, plaintext))
			if prepErr != nil {
				return prepErr
			}
			plaintext = prepared
		}
		ciphertext, encErr := ctr.EncryptText.Execute(ctx, encrypttext.NewRequest(s, c.Key, plaintext))
		if encErr != nil {
			return encErr
		}
		_, encErr = fmt.Fprintln(out, ciphertext)
		return encErr
	})
}

type decryptCmd struct {
	Scheme string `arg:""      help:"Cipher scheme (playfair, shift)"`
	Text   string `arg:""      help:"Ciphertext made of uppercase letters"`
	Key    string `required:"" help:"Cipher key the text was encrypted with"`
}

func (c *decryptCmd) Run(builder *application.Builder, out io.Writer) error {
	s, err := scheme.FromSlug(c.Scheme)
	if err != nil {
		return err
	}
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		plaintext, decErr := ctr.DecryptText.Execute(ctx, decrypttext.NewRequest(s, c.Key, c.Text))
		if decErr != nil {
			return decErr
		}
		_, decErr = fmt.Fprintln(out, plaintext)
		return decErr
	})
}

type prepareCmd struct {
	Scheme string `arg:"" help:"Cipher scheme (playfair, shift)"`
	Text   string `arg:"" help:"Free-form text"`
}

func (c *prepareCmd) Run(builder *application.Builder, out io.Writer) error {
	s, err := scheme.FromSlug(c.Scheme)
	if err != nil {
		return err
	}
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		prepared, prepErr := ctr.PrepareText.Execute(ctx, preparetext.NewRequest(s, c.Text))
		if prepErr != nil {
			return prepErr
		}
		_, prepErr = fmt.Fprintln(out, prepared)
		return prepErr
	})
}

type tableCmd struct {
	Keyword string `arg:"" help:"Playfair keyword"`
}

func (c *tableCmd) Run(builder *application.Builder, out io.Writer) error {
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		table, err := ctr.GetTable.Execute(ctx, gettable.NewRequest(c.Keyword))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, table.String())
		return err
	})
}

type gcdCmd struct {
	A int64 `arg:""`
	B int64 `arg:""`
}

func (c *gcdCmd) Run(builder *application.Builder, out io.Writer) error {
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		gcd, err := ctr.ComputeGCD.Execute(ctx, computegcd.NewRequest(c.A, c.B))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, gcd)
		return err
	})
}

type modPowCmd struct {
	Base     int64 `arg:""`
	Exponent int64 `arg:""`
	Modulus  int64 `arg:""`
}

func (c *modPowCmd) Run(builder *application.Builder, out io.Writer) error {
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		result, err := ctr.ComputeModPow.Execute(ctx, computemodpow.NewRequest(c.Base, c.Exponent, c.Modulus))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, result)
		return err
	})
}

type factorCmd struct {
	N           int64  `arg:""`
	SearchLimit uint64 `help:"Overrides the global Fermat search limit"`
}

func (c *factorCmd) Run(builder *application.Builder, out io.Writer) error {
	var opts []fx.Option
	if c.SearchLimit > 0 {
		opts = append(opts, fx.Decorate(func(o factorize.UseCaseOptions) factorize.UseCaseOptions {
			o.SearchLimit = c.SearchLimit
			return o
		}))
	}
	return execute(builder, func(ctx context.Context, ctr container.Container) error {
		result, err := ctr.Factorize.Execute(ctx, factorize.NewRequest(c.N))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, result.String())
		return err
	}, opts...)
}

type CLI struct {
	Encrypt encryptCmd `cmd:"" help:"Encrypt plaintext"`
	Decrypt decryptCmd `cmd:"" help:"Decrypt ciphertext"`
	Prepare prepareCmd `cmd:"" help:"Turn free-form text into plaintext accepted by a scheme"`
	Table   tableCmd   `cmd:"" help:"Display the playfair table built from a keyword"`
	GCD     gcdCmd     `cmd:"" help:"Compute the greatest common divisor of two numbers" name:"gcd"`
	ModPow  modPowCmd  `cmd:"" help:"Compute base^exponent mod modulus"                  name:"modpow"`
	Factor  factorCmd  `cmd:"" help:"Split an odd number into two factors with Fermat's method"`
}
